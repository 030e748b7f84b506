package sanitize

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Upstream feeds encode missing values inconsistently. Anything in this
// set (compared case-insensitively after trimming) is treated as null.
var sentinels = map[string]bool{
	"":     true,
	"null": true,
	"n/a":  true,
	"na":   true,
	"*":    true,
}

func isSentinel(s string) bool {
	return sentinels[strings.ToLower(strings.TrimSpace(s))]
}

// ParseAmount parses a monetary amount in whole currency units. Thousands
// separators, dollar signs and surrounding whitespace are stripped.
// Returns nil for sentinel, unparseable, non-finite, or negative input.
func ParseAmount(s string) *float64 {
	if isSentinel(s) {
		return nil
	}
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, "$", "")

	// ParseFloat accepts "NaN" and "Infinity"; neither is a usable amount
	// and NaN would slip past every downstream comparison.
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil
	}
	return &v
}

// ParseNumber parses a bare decimal such as a rate or yield. Unlike
// ParseAmount it accepts negative values (real yields go negative), but
// never non-finite ones.
func ParseNumber(s string) *float64 {
	if isSentinel(s) {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"1/2/2006",
	"01/02/2006",
}

// NormalizeDate parses an upstream date string and re-serializes it as
// YYYY-MM-DD. Returns nil on sentinel or unparseable input.
func NormalizeDate(s string) *string {
	if isSentinel(s) {
		return nil
	}
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			iso := t.Format("2006-01-02")
			return &iso
		}
	}
	return nil
}

// ExtractYear returns the calendar year of a date string, or nil when the
// date does not normalize.
func ExtractYear(s string) *int {
	iso := NormalizeDate(s)
	if iso == nil {
		return nil
	}
	year, err := strconv.Atoi((*iso)[:4])
	if err != nil {
		return nil
	}
	return &year
}
