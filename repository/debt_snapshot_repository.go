package repository

import (
	"context"
	"fmt"

	"debtwatch/database"
	"debtwatch/models"
	"github.com/jackc/pgx/v5"
)

// DebtSnapshotRepository implements debt-to-the-penny data access
type DebtSnapshotRepository struct {
	q queryable
}

// NewDebtSnapshotRepository creates a new debt snapshot repository
func NewDebtSnapshotRepository(db *database.DB) *DebtSnapshotRepository {
	return &DebtSnapshotRepository{q: db.Pool}
}

// NewDebtSnapshotRepositoryWithTx creates a new debt snapshot repository bound to a transaction
func NewDebtSnapshotRepositoryWithTx(tx queryable) *DebtSnapshotRepository {
	return &DebtSnapshotRepository{q: tx}
}

// InsertBatch inserts snapshots with skip-on-conflict semantics keyed by
// record_date. Returns the number of rows inserted.
func (r *DebtSnapshotRepository) InsertBatch(ctx context.Context, snapshots []models.DebtSnapshot) (int64, error) {
	var inserted int64

	query := `
		INSERT INTO debt_snapshots
		(record_date, total_debt, debt_held_by_public, intragovernmental_holdings)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (record_date) DO NOTHING
	`

	for _, s := range snapshots {
		tag, err := r.q.Exec(ctx, query,
			s.RecordDate, s.TotalDebt, s.DebtHeldByPublic, s.IntragovernmentalHoldings)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert debt snapshot for %s: %w", s.RecordDate, err)
		}
		inserted += tag.RowsAffected()
	}

	return inserted, nil
}

// GetLatest returns the most recent snapshot, or nil when the table is empty.
func (r *DebtSnapshotRepository) GetLatest(ctx context.Context) (*models.DebtSnapshot, error) {
	query := `
		SELECT id, record_date::text, total_debt, debt_held_by_public,
		       intragovernmental_holdings, created_at
		FROM debt_snapshots
		ORDER BY record_date DESC
		LIMIT 1
	`

	var s models.DebtSnapshot
	err := r.q.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.RecordDate,
		&s.TotalDebt,
		&s.DebtHeldByPublic,
		&s.IntragovernmentalHoldings,
		&s.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest debt snapshot: %w", err)
	}

	return &s, nil
}
