package models

// DemandPoint is one auction's demand reading, used for the bid-to-cover
// time series.
type DemandPoint struct {
	Date            string       `json:"date"`
	CUSIP           string       `json:"cusip"`
	SecurityType    SecurityType `json:"securityType"`
	BidToCoverRatio float64      `json:"bidToCoverRatio"`
	HighYield       *float64     `json:"highYield,omitempty"`
}

// DemandStats summarizes bid-to-cover ratios over a set of demand points.
// BelowThreshold counts points under the 2.0 weak-demand line.
type DemandStats struct {
	Count          int     `json:"count"`
	AvgRatio       float64 `json:"avgRatio"`
	MinRatio       float64 `json:"minRatio"`
	MaxRatio       float64 `json:"maxRatio"`
	MedianRatio    float64 `json:"medianRatio"`
	BelowThreshold int     `json:"belowThreshold"`
}

// BidderComposition is the percentage split of accepted bids for one
// auction. Auctions missing any category amount are excluded from this
// view rather than zero-filled.
type BidderComposition struct {
	Date          string       `json:"date"`
	CUSIP         string       `json:"cusip"`
	SecurityType  SecurityType `json:"securityType"`
	DirectPct     float64      `json:"directPct"`
	IndirectPct   float64      `json:"indirectPct"`
	DealerPct     float64      `json:"dealerPct"`
}
