package repository

import (
	"context"
	"fmt"

	"debtwatch/database"
	"debtwatch/models"
	"github.com/jackc/pgx/v5"
)

// IndicatorRepository implements economic indicator data access
type IndicatorRepository struct {
	q queryable
}

// NewIndicatorRepository creates a new indicator repository
func NewIndicatorRepository(db *database.DB) *IndicatorRepository {
	return &IndicatorRepository{q: db.Pool}
}

// NewIndicatorRepositoryWithTx creates a new indicator repository bound to a transaction
func NewIndicatorRepositoryWithTx(tx queryable) *IndicatorRepository {
	return &IndicatorRepository{q: tx}
}

// Insert inserts one indicator row, skipping when the record_date already
// exists. Returns the number of rows inserted (0 or 1).
func (r *IndicatorRepository) Insert(ctx context.Context, ind *models.EconomicIndicator) (int64, error) {
	query := `
		INSERT INTO economic_indicators
		(record_date, avg_interest_rate, interest_expense_fytd, yield_10y,
		 real_yield_10y, breakeven_10y)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (record_date) DO NOTHING
	`

	tag, err := r.q.Exec(ctx, query,
		ind.RecordDate, ind.AvgInterestRate, ind.InterestExpenseFYTD,
		ind.Yield10Y, ind.RealYield10Y, ind.Breakeven10Y)
	if err != nil {
		return 0, fmt.Errorf("failed to insert indicator for %s: %w", ind.RecordDate, err)
	}

	return tag.RowsAffected(), nil
}

// GetLatest returns the most recent indicator row, or nil when the table
// is empty.
func (r *IndicatorRepository) GetLatest(ctx context.Context) (*models.EconomicIndicator, error) {
	query := `
		SELECT id, record_date::text, avg_interest_rate, interest_expense_fytd,
		       yield_10y, real_yield_10y, breakeven_10y, created_at
		FROM economic_indicators
		ORDER BY record_date DESC
		LIMIT 1
	`

	var ind models.EconomicIndicator
	err := r.q.QueryRow(ctx, query).Scan(
		&ind.ID,
		&ind.RecordDate,
		&ind.AvgInterestRate,
		&ind.InterestExpenseFYTD,
		&ind.Yield10Y,
		&ind.RealYield10Y,
		&ind.Breakeven10Y,
		&ind.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest indicator: %w", err)
	}

	return &ind, nil
}

// GetSince returns indicator rows on or after the since date, ordered
// ascending by record date.
func (r *IndicatorRepository) GetSince(ctx context.Context, since string) ([]models.EconomicIndicator, error) {
	query := `
		SELECT id, record_date::text, avg_interest_rate, interest_expense_fytd,
		       yield_10y, real_yield_10y, breakeven_10y, created_at
		FROM economic_indicators
		WHERE record_date >= $1
		ORDER BY record_date ASC
	`

	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get indicators since %s: %w", since, err)
	}
	defer rows.Close()

	var indicators []models.EconomicIndicator
	for rows.Next() {
		var ind models.EconomicIndicator
		err := rows.Scan(
			&ind.ID,
			&ind.RecordDate,
			&ind.AvgInterestRate,
			&ind.InterestExpenseFYTD,
			&ind.Yield10Y,
			&ind.RealYield10Y,
			&ind.Breakeven10Y,
			&ind.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan indicator: %w", err)
		}
		indicators = append(indicators, ind)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate indicators: %w", err)
	}

	return indicators, nil
}
