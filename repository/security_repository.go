package repository

import (
	"context"
	"fmt"
	"strings"

	"debtwatch/database"
	"debtwatch/models"
)

// SecurityRepository implements security detail data access
type SecurityRepository struct {
	q queryable
}

// NewSecurityRepository creates a new security repository
func NewSecurityRepository(db *database.DB) *SecurityRepository {
	return &SecurityRepository{q: db.Pool}
}

// NewSecurityRepositoryWithTx creates a new security repository bound to a transaction
func NewSecurityRepositoryWithTx(tx queryable) *SecurityRepository {
	return &SecurityRepository{q: tx}
}

// InsertBatch inserts securities in chunks, skipping rows whose
// (record_date, cusip) key already exists. Re-running ingestion for an
// already-seen batch is a no-op. Returns the number of rows actually
// inserted.
func (r *SecurityRepository) InsertBatch(ctx context.Context, securities []models.Security) (int64, error) {
	var inserted int64

	for start := 0; start < len(securities); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(securities) {
			end = len(securities)
		}
		chunk := securities[start:end]

		var sb strings.Builder
		sb.WriteString(`
			INSERT INTO securities
			(record_date, cusip, security_type, security_class, issue_date,
			 maturity_date, maturity_year, interest_rate, outstanding_amount)
			VALUES `)

		args := make([]any, 0, len(chunk)*9)
		for i, s := range chunk {
			if i > 0 {
				sb.WriteString(", ")
			}
			base := i * 9
			sb.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9))
			args = append(args,
				s.RecordDate, s.CUSIP, s.SecurityType, s.SecurityClass,
				s.IssueDate, s.MaturityDate, s.MaturityYear,
				s.InterestRate, s.OutstandingAmount)
		}
		sb.WriteString(" ON CONFLICT (record_date, cusip) DO NOTHING")

		tag, err := r.q.Exec(ctx, sb.String(), args...)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert securities batch: %w", err)
		}
		inserted += tag.RowsAffected()
	}

	return inserted, nil
}

// GetLatest returns all securities for the most recent record date, or an
// empty slice when the table is empty.
func (r *SecurityRepository) GetLatest(ctx context.Context) ([]models.Security, error) {
	query := `
		SELECT id, record_date::text, cusip, security_type, security_class,
		       issue_date::text, maturity_date::text, maturity_year,
		       interest_rate, outstanding_amount, created_at
		FROM securities
		WHERE record_date = (SELECT MAX(record_date) FROM securities)
		ORDER BY cusip
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest securities: %w", err)
	}
	defer rows.Close()

	var securities []models.Security
	for rows.Next() {
		var s models.Security
		err := rows.Scan(
			&s.ID,
			&s.RecordDate,
			&s.CUSIP,
			&s.SecurityType,
			&s.SecurityClass,
			&s.IssueDate,
			&s.MaturityDate,
			&s.MaturityYear,
			&s.InterestRate,
			&s.OutstandingAmount,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan security: %w", err)
		}
		securities = append(securities, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate securities: %w", err)
	}

	return securities, nil
}

// CountLatest returns the number of rows for the most recent record date.
func (r *SecurityRepository) CountLatest(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM securities
		 WHERE record_date = (SELECT MAX(record_date) FROM securities)`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count latest securities: %w", err)
	}
	return count, nil
}

// CountByRecordDate returns the number of persisted rows for a record date.
func (r *SecurityRepository) CountByRecordDate(ctx context.Context, recordDate string) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM securities WHERE record_date = $1`, recordDate,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count securities for %s: %w", recordDate, err)
	}
	return count, nil
}
