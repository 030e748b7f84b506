package models

import (
	"time"
)

// EconomicIndicator is the merged daily view over four upstream feeds:
// average interest rate, interest expense, and the nominal and real
// 10-year yield curves. RecordDate is the most recent of the contributing
// feed dates. Breakeven10Y is derived (nominal minus real) when both
// yields are present.
type EconomicIndicator struct {
	ID                  int64     `db:"id"`
	RecordDate          string    `db:"record_date"`
	AvgInterestRate     *float64  `db:"avg_interest_rate"`
	InterestExpenseFYTD *float64  `db:"interest_expense_fytd"`
	Yield10Y            *float64  `db:"yield_10y"`
	RealYield10Y        *float64  `db:"real_yield_10y"`
	Breakeven10Y        *float64  `db:"breakeven_10y"`
	CreatedAt           time.Time `db:"created_at"`
}
