package treasury

// Raw upstream records. The fiscal-data service returns every field as a
// string, including numbers and dates; sentinel values like "null" and
// "N/A" appear throughout. These types are transient and never persisted.

// RawDebtSnapshot comes from the debt-to-the-penny feed.
type RawDebtSnapshot struct {
	RecordDate        string `json:"record_date"`
	TotalDebt         string `json:"tot_pub_debt_out_amt"`
	DebtHeldByPublic  string `json:"debt_held_public_amt"`
	Intragovernmental string `json:"intragov_hold_amt"`
}

// RawSecurity comes from the CUSIP-level marketable securities detail feed.
type RawSecurity struct {
	RecordDate        string `json:"record_date"`
	CUSIP             string `json:"cusip"`
	SecurityTypeDesc  string `json:"security_type_desc"`
	SecurityClassDesc string `json:"security_class_desc"`
	IssueDate         string `json:"issue_date"`
	MaturityDate      string `json:"maturity_date"`
	InterestRate      string `json:"interest_rate_pct"`
	OutstandingAmount string `json:"outstanding_amt"`
}

// RawAuction comes from the auction results feed.
type RawAuction struct {
	AuctionDate           string `json:"auction_date"`
	CUSIP                 string `json:"cusip"`
	SecurityType          string `json:"security_type"`
	SecurityTerm          string `json:"security_term"`
	BidToCoverRatio       string `json:"bid_to_cover_ratio"`
	HighYield             string `json:"high_yield"`
	TotalAccepted         string `json:"total_accepted"`
	DirectAccepted        string `json:"direct_bidder_accepted"`
	IndirectAccepted      string `json:"indirect_bidder_accepted"`
	PrimaryDealerAccepted string `json:"primary_dealer_accepted"`
}

// RawInterestExpense comes from the interest expense feed.
type RawInterestExpense struct {
	RecordDate  string `json:"record_date"`
	FYTDExpense string `json:"fytd_expense_amt"`
}

// RawAvgRate comes from the average interest rates feed.
type RawAvgRate struct {
	RecordDate   string `json:"record_date"`
	SecurityDesc string `json:"security_desc"`
	AvgRate      string `json:"avg_interest_rate_amt"`
}

// RawYieldCurve comes from the daily nominal and real yield curve feeds.
type RawYieldCurve struct {
	RecordDate string `json:"record_date"`
	Yield10Y   string `json:"avg_10_year"`
}
