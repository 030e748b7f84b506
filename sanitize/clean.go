package sanitize

import (
	"debtwatch/models"
	"debtwatch/treasury"
)

// Per-domain cleaners. Each returns nil when a domain-critical field is
// unusable; individual non-critical fields degrade to nil instead.
// Cleaning never errors.

// CleanSecurity converts a raw CUSIP-level record. Records without a
// positive outstanding amount, or without a usable record date or CUSIP
// to key on, are dropped.
func CleanSecurity(raw treasury.RawSecurity) *models.Security {
	outstanding := ParseAmount(raw.OutstandingAmount)
	if outstanding == nil || *outstanding <= 0 {
		return nil
	}
	recordDate := NormalizeDate(raw.RecordDate)
	if recordDate == nil || raw.CUSIP == "" {
		return nil
	}

	var class *string
	if !isSentinel(raw.SecurityClassDesc) {
		c := raw.SecurityClassDesc
		class = &c
	}

	return &models.Security{
		RecordDate:        *recordDate,
		CUSIP:             raw.CUSIP,
		SecurityType:      NormalizeSecurityType(raw.SecurityTypeDesc),
		SecurityClass:     class,
		IssueDate:         NormalizeDate(raw.IssueDate),
		MaturityDate:      NormalizeDate(raw.MaturityDate),
		MaturityYear:      ExtractYear(raw.MaturityDate),
		InterestRate:      ParseNumber(raw.InterestRate),
		OutstandingAmount: *outstanding,
	}
}

// CleanSecurities maps CleanSecurity over a batch, dropping nils.
func CleanSecurities(raws []treasury.RawSecurity) []models.Security {
	cleaned := make([]models.Security, 0, len(raws))
	for _, raw := range raws {
		if s := CleanSecurity(raw); s != nil {
			cleaned = append(cleaned, *s)
		}
	}
	return cleaned
}

// CleanAuction converts a raw auction result. Auctions without a
// parseable bid-to-cover ratio are dropped, never defaulted to zero.
func CleanAuction(raw treasury.RawAuction) *models.Auction {
	ratio := ParseNumber(raw.BidToCoverRatio)
	if ratio == nil {
		return nil
	}
	auctionDate := NormalizeDate(raw.AuctionDate)
	if auctionDate == nil || raw.CUSIP == "" {
		return nil
	}

	var term *string
	if !isSentinel(raw.SecurityTerm) {
		t := raw.SecurityTerm
		term = &t
	}

	return &models.Auction{
		AuctionDate:           *auctionDate,
		CUSIP:                 raw.CUSIP,
		SecurityType:          NormalizeAuctionSecurityType(raw.SecurityType),
		SecurityTerm:          term,
		BidToCoverRatio:       *ratio,
		HighYield:             ParseNumber(raw.HighYield),
		TotalAccepted:         ParseAmount(raw.TotalAccepted),
		DirectAccepted:        ParseAmount(raw.DirectAccepted),
		IndirectAccepted:      ParseAmount(raw.IndirectAccepted),
		PrimaryDealerAccepted: ParseAmount(raw.PrimaryDealerAccepted),
	}
}

// CleanAuctions maps CleanAuction over a batch, dropping nils.
func CleanAuctions(raws []treasury.RawAuction) []models.Auction {
	cleaned := make([]models.Auction, 0, len(raws))
	for _, raw := range raws {
		if a := CleanAuction(raw); a != nil {
			cleaned = append(cleaned, *a)
		}
	}
	return cleaned
}

// CleanDebtSnapshot converts a raw debt-to-the-penny record. The total
// debt amount is mandatory.
func CleanDebtSnapshot(raw treasury.RawDebtSnapshot) *models.DebtSnapshot {
	total := ParseAmount(raw.TotalDebt)
	if total == nil {
		return nil
	}
	recordDate := NormalizeDate(raw.RecordDate)
	if recordDate == nil {
		return nil
	}

	return &models.DebtSnapshot{
		RecordDate:                *recordDate,
		TotalDebt:                 *total,
		DebtHeldByPublic:          ParseAmount(raw.DebtHeldByPublic),
		IntragovernmentalHoldings: ParseAmount(raw.Intragovernmental),
	}
}

// CleanDebtSnapshots maps CleanDebtSnapshot over a batch, dropping nils.
func CleanDebtSnapshots(raws []treasury.RawDebtSnapshot) []models.DebtSnapshot {
	cleaned := make([]models.DebtSnapshot, 0, len(raws))
	for _, raw := range raws {
		if s := CleanDebtSnapshot(raw); s != nil {
			cleaned = append(cleaned, *s)
		}
	}
	return cleaned
}

// CleanEconomicIndicator merges the latest records of the four indicator
// feeds into one view. Any input may be nil. The indicator's own record
// date is the most recent of the contributing feed dates; breakeven is
// derived when both yields are present. Returns nil when no feed
// contributed a usable date.
func CleanEconomicIndicator(avgRate *treasury.RawAvgRate, expense *treasury.RawInterestExpense, nominal, real *treasury.RawYieldCurve) *models.EconomicIndicator {
	ind := &models.EconomicIndicator{}
	var latest string

	track := func(raw string) *string {
		date := NormalizeDate(raw)
		if date != nil && *date > latest {
			latest = *date
		}
		return date
	}

	if avgRate != nil {
		track(avgRate.RecordDate)
		ind.AvgInterestRate = ParseNumber(avgRate.AvgRate)
	}
	if expense != nil {
		track(expense.RecordDate)
		ind.InterestExpenseFYTD = ParseAmount(expense.FYTDExpense)
	}
	if nominal != nil {
		track(nominal.RecordDate)
		ind.Yield10Y = ParseNumber(nominal.Yield10Y)
	}
	if real != nil {
		track(real.RecordDate)
		ind.RealYield10Y = ParseNumber(real.Yield10Y)
	}

	if latest == "" {
		return nil
	}
	ind.RecordDate = latest

	if ind.Yield10Y != nil && ind.RealYield10Y != nil {
		breakeven := *ind.Yield10Y - *ind.RealYield10Y
		ind.Breakeven10Y = &breakeven
	}

	return ind
}
