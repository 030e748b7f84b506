package models

import (
	"time"
)

// Auction is a cleaned auction result record. A record only exists when
// its bid-to-cover ratio parsed; every other numeric field may be nil.
type Auction struct {
	ID                    int64        `db:"id"`
	AuctionDate           string       `db:"auction_date"`
	CUSIP                 string       `db:"cusip"`
	SecurityType          SecurityType `db:"security_type"`
	SecurityTerm          *string      `db:"security_term"`
	BidToCoverRatio       float64      `db:"bid_to_cover_ratio"`
	HighYield             *float64     `db:"high_yield"`
	TotalAccepted         *float64     `db:"total_accepted"`
	DirectAccepted        *float64     `db:"direct_accepted"`
	IndirectAccepted      *float64     `db:"indirect_accepted"`
	PrimaryDealerAccepted *float64     `db:"primary_dealer_accepted"`
	CreatedAt             time.Time    `db:"created_at"`
}
