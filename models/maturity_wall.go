package models

// MaturityWallBucket holds the outstanding principal maturing in one
// calendar year, split by security type. Amounts are whole dollars.
// Persisted buckets are keyed by (computed_date, maturity_year).
type MaturityWallBucket struct {
	Year  int     `db:"maturity_year" json:"year"`
	Bills float64 `db:"bills" json:"bills"`
	Notes float64 `db:"notes" json:"notes"`
	Bonds float64 `db:"bonds" json:"bonds"`
	TIPS  float64 `db:"tips" json:"tips"`
	FRN   float64 `db:"frn" json:"frn"`
	Other float64 `db:"other" json:"other"`
	Total float64 `db:"total" json:"total"`
}
