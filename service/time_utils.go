package service

import (
	"fmt"
	"time"
)

// Timeframes accepted by the auction and indicator history queries.
var timeframeYears = map[string]int{
	"1y":  1,
	"3y":  3,
	"5y":  5,
	"10y": 10,
}

// SinceForTimeframe converts a timeframe token into the ISO date that
// many years before now.
func SinceForTimeframe(now time.Time, timeframe string) (string, error) {
	years, ok := timeframeYears[timeframe]
	if !ok {
		return "", fmt.Errorf("invalid timeframe %q", timeframe)
	}
	return now.UTC().AddDate(-years, 0, 0).Format("2006-01-02"), nil
}

// ValidTimeframe reports whether tf is an accepted timeframe token.
func ValidTimeframe(tf string) bool {
	_, ok := timeframeYears[tf]
	return ok
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

// ISODate formats a time as the YYYY-MM-DD form used throughout the
// cleaned data model.
func ISODate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
