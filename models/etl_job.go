package models

import (
	"time"
)

// ETL job statuses. A run writes one started row and at most one
// terminal row; rows are never mutated after completion.
const (
	JobStatusStarted   = "started"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// ETLJob is one row of the append-only ingestion audit trail.
type ETLJob struct {
	ID               int64      `db:"id"`
	JobName          string     `db:"job_name"`
	Status           string     `db:"status"`
	RecordsProcessed *int       `db:"records_processed"`
	ErrorMessage     *string    `db:"error_message"`
	StartedAt        time.Time  `db:"started_at"`
	CompletedAt      *time.Time `db:"completed_at"`
}
