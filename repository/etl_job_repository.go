package repository

import (
	"context"
	"fmt"

	"debtwatch/database"
	"debtwatch/models"
	"github.com/jackc/pgx/v5"
)

// ETLJobRepository implements the append-only ingestion job log
type ETLJobRepository struct {
	q queryable
}

// NewETLJobRepository creates a new ETL job repository
func NewETLJobRepository(db *database.DB) *ETLJobRepository {
	return &ETLJobRepository{q: db.Pool}
}

// NewETLJobRepositoryWithTx creates a new ETL job repository bound to a transaction
func NewETLJobRepositoryWithTx(tx queryable) *ETLJobRepository {
	return &ETLJobRepository{q: tx}
}

// Start writes the started row for a run and returns it.
func (r *ETLJobRepository) Start(ctx context.Context, jobName string) (*models.ETLJob, error) {
	query := `
		INSERT INTO etl_jobs (job_name, status)
		VALUES ($1, $2)
		RETURNING id, job_name, status, started_at
	`

	var job models.ETLJob
	err := r.q.QueryRow(ctx, query, jobName, models.JobStatusStarted).Scan(
		&job.ID,
		&job.JobName,
		&job.Status,
		&job.StartedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start job log for %s: %w", jobName, err)
	}

	return &job, nil
}

// Complete writes the terminal completed row for a run. The log is
// append-only: the terminal state is a new row, the started row is never
// mutated.
func (r *ETLJobRepository) Complete(ctx context.Context, jobName string, recordsProcessed int) error {
	query := `
		INSERT INTO etl_jobs (job_name, status, records_processed, completed_at)
		VALUES ($1, $2, $3, NOW())
	`

	_, err := r.q.Exec(ctx, query, jobName, models.JobStatusCompleted, recordsProcessed)
	if err != nil {
		return fmt.Errorf("failed to complete job log for %s: %w", jobName, err)
	}
	return nil
}

// Fail writes the terminal failed row for a run with the first fatal error.
func (r *ETLJobRepository) Fail(ctx context.Context, jobName string, errorMessage string) error {
	query := `
		INSERT INTO etl_jobs (job_name, status, error_message, completed_at)
		VALUES ($1, $2, $3, NOW())
	`

	_, err := r.q.Exec(ctx, query, jobName, models.JobStatusFailed, errorMessage)
	if err != nil {
		return fmt.Errorf("failed to record job failure for %s: %w", jobName, err)
	}
	return nil
}

// GetLatest returns the most recent job log row, or nil when none exist.
func (r *ETLJobRepository) GetLatest(ctx context.Context, jobName string) (*models.ETLJob, error) {
	query := `
		SELECT id, job_name, status, records_processed, error_message,
		       started_at, completed_at
		FROM etl_jobs
		WHERE job_name = $1
		ORDER BY started_at DESC, id DESC
		LIMIT 1
	`

	var job models.ETLJob
	err := r.q.QueryRow(ctx, query, jobName).Scan(
		&job.ID,
		&job.JobName,
		&job.Status,
		&job.RecordsProcessed,
		&job.ErrorMessage,
		&job.StartedAt,
		&job.CompletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest job log for %s: %w", jobName, err)
	}

	return &job, nil
}
