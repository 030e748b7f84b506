package models

import (
	"time"
)

// Security is a cleaned CUSIP-level debt detail record.
// Dates are normalized ISO strings (YYYY-MM-DD); nil pointers mean the
// upstream field was missing or unparseable.
type Security struct {
	ID                int64        `db:"id"`
	RecordDate        string       `db:"record_date"`
	CUSIP             string       `db:"cusip"`
	SecurityType      SecurityType `db:"security_type"`
	SecurityClass     *string      `db:"security_class"`
	IssueDate         *string      `db:"issue_date"`
	MaturityDate      *string      `db:"maturity_date"`
	MaturityYear      *int         `db:"maturity_year"`
	InterestRate      *float64     `db:"interest_rate"`
	OutstandingAmount float64      `db:"outstanding_amount"`
	CreatedAt         time.Time    `db:"created_at"`
}
