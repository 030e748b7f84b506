package repository

import (
	"context"
	"fmt"
	"strings"

	"debtwatch/database"
	"debtwatch/models"
	"github.com/jackc/pgx/v5"
)

// MaturityWallRepository implements maturity wall aggregate data access
type MaturityWallRepository struct {
	q queryable
}

// NewMaturityWallRepository creates a new maturity wall repository
func NewMaturityWallRepository(db *database.DB) *MaturityWallRepository {
	return &MaturityWallRepository{q: db.Pool}
}

// NewMaturityWallRepositoryWithTx creates a new maturity wall repository bound to a transaction
func NewMaturityWallRepositoryWithTx(tx queryable) *MaturityWallRepository {
	return &MaturityWallRepository{q: tx}
}

// InsertBuckets inserts the buckets computed for computedDate with
// skip-on-conflict semantics keyed by (computed_date, maturity_year).
func (r *MaturityWallRepository) InsertBuckets(ctx context.Context, computedDate string, buckets []models.MaturityWallBucket) (int64, error) {
	if len(buckets) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO maturity_wall
		(computed_date, maturity_year, bills, notes, bonds, tips, frn, other, total)
		VALUES `)

	args := make([]any, 0, len(buckets)*9)
	for i, b := range buckets {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 9
		sb.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9))
		args = append(args,
			computedDate, b.Year, b.Bills, b.Notes, b.Bonds, b.TIPS, b.FRN, b.Other, b.Total)
	}
	sb.WriteString(" ON CONFLICT (computed_date, maturity_year) DO NOTHING")

	tag, err := r.q.Exec(ctx, sb.String(), args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert maturity wall buckets for %s: %w", computedDate, err)
	}

	return tag.RowsAffected(), nil
}

// GetLatest returns the buckets of the most recent computed date whose
// year falls in [startYear, endYear], with the computed date itself.
// Returns an empty slice and empty date when no aggregates exist.
func (r *MaturityWallRepository) GetLatest(ctx context.Context, startYear, endYear int) (string, []models.MaturityWallBucket, error) {
	// MAX over an empty table yields NULL, hence the pointer scan.
	var latest *string
	err := r.q.QueryRow(ctx,
		`SELECT MAX(computed_date)::text FROM maturity_wall`,
	).Scan(&latest)
	if err != nil && err != pgx.ErrNoRows {
		return "", nil, fmt.Errorf("failed to get latest maturity wall date: %w", err)
	}
	if latest == nil {
		return "", nil, nil
	}
	computedDate := *latest

	query := `
		SELECT maturity_year, bills, notes, bonds, tips, frn, other, total
		FROM maturity_wall
		WHERE computed_date = $1 AND maturity_year BETWEEN $2 AND $3
		ORDER BY maturity_year ASC
	`

	rows, err := r.q.Query(ctx, query, computedDate, startYear, endYear)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get maturity wall for %s: %w", computedDate, err)
	}
	defer rows.Close()

	var buckets []models.MaturityWallBucket
	for rows.Next() {
		var b models.MaturityWallBucket
		err := rows.Scan(&b.Year, &b.Bills, &b.Notes, &b.Bonds, &b.TIPS, &b.FRN, &b.Other, &b.Total)
		if err != nil {
			return "", nil, fmt.Errorf("failed to scan maturity wall bucket: %w", err)
		}
		buckets = append(buckets, b)
	}

	if err := rows.Err(); err != nil {
		return "", nil, fmt.Errorf("failed to iterate maturity wall buckets: %w", err)
	}

	return computedDate, buckets, nil
}
