package repository

import (
	"context"
	"fmt"
	"strings"

	"debtwatch/database"
	"debtwatch/models"
)

// AuctionRepository implements auction result data access
type AuctionRepository struct {
	q queryable
}

// NewAuctionRepository creates a new auction repository
func NewAuctionRepository(db *database.DB) *AuctionRepository {
	return &AuctionRepository{q: db.Pool}
}

// NewAuctionRepositoryWithTx creates a new auction repository bound to a transaction
func NewAuctionRepositoryWithTx(tx queryable) *AuctionRepository {
	return &AuctionRepository{q: tx}
}

// InsertBatch inserts auctions in chunks with skip-on-conflict semantics
// keyed by (auction_date, cusip). Returns the number of rows inserted.
func (r *AuctionRepository) InsertBatch(ctx context.Context, auctions []models.Auction) (int64, error) {
	var inserted int64

	for start := 0; start < len(auctions); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(auctions) {
			end = len(auctions)
		}
		chunk := auctions[start:end]

		var sb strings.Builder
		sb.WriteString(`
			INSERT INTO auctions
			(auction_date, cusip, security_type, security_term, bid_to_cover_ratio,
			 high_yield, total_accepted, direct_accepted, indirect_accepted,
			 primary_dealer_accepted)
			VALUES `)

		args := make([]any, 0, len(chunk)*10)
		for i, a := range chunk {
			if i > 0 {
				sb.WriteString(", ")
			}
			base := i * 10
			sb.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
				base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10))
			args = append(args,
				a.AuctionDate, a.CUSIP, a.SecurityType, a.SecurityTerm,
				a.BidToCoverRatio, a.HighYield, a.TotalAccepted,
				a.DirectAccepted, a.IndirectAccepted, a.PrimaryDealerAccepted)
		}
		sb.WriteString(" ON CONFLICT (auction_date, cusip) DO NOTHING")

		tag, err := r.q.Exec(ctx, sb.String(), args...)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert auctions batch: %w", err)
		}
		inserted += tag.RowsAffected()
	}

	return inserted, nil
}

// GetSince returns auctions for the requested security types on or after
// the since date (ISO, empty for no bound), ordered ascending by date.
func (r *AuctionRepository) GetSince(ctx context.Context, since string, types []models.SecurityType) ([]models.Auction, error) {
	typeStrings := make([]string, len(types))
	for i, t := range types {
		typeStrings[i] = string(t)
	}

	// The filter compares as text: the enum array OID is not registered
	// with the pool's type map, so a []string cannot bind to it directly.

	query := `
		SELECT id, auction_date::text, cusip, security_type, security_term,
		       bid_to_cover_ratio, high_yield, total_accepted, direct_accepted,
		       indirect_accepted, primary_dealer_accepted, created_at
		FROM auctions
		WHERE security_type::text = ANY($1::text[])
	`
	args := []any{typeStrings}
	if since != "" {
		query += ` AND auction_date >= $2`
		args = append(args, since)
	}
	query += ` ORDER BY auction_date ASC, cusip ASC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get auctions since %s: %w", since, err)
	}
	defer rows.Close()

	var auctions []models.Auction
	for rows.Next() {
		var a models.Auction
		err := rows.Scan(
			&a.ID,
			&a.AuctionDate,
			&a.CUSIP,
			&a.SecurityType,
			&a.SecurityTerm,
			&a.BidToCoverRatio,
			&a.HighYield,
			&a.TotalAccepted,
			&a.DirectAccepted,
			&a.IndirectAccepted,
			&a.PrimaryDealerAccepted,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan auction: %w", err)
		}
		auctions = append(auctions, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate auctions: %w", err)
	}

	return auctions, nil
}
