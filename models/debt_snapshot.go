package models

import (
	"time"
)

// DebtSnapshot is a cleaned debt-to-the-penny record for a single date.
// TotalDebt is mandatory; the split components may be nil.
type DebtSnapshot struct {
	ID                        int64     `db:"id"`
	RecordDate                string    `db:"record_date"`
	TotalDebt                 float64   `db:"total_debt"`
	DebtHeldByPublic          *float64  `db:"debt_held_by_public"`
	IntragovernmentalHoldings *float64  `db:"intragovernmental_holdings"`
	CreatedAt                 time.Time `db:"created_at"`
}
