package testutil

import (
	"debtwatch/models"
)

// CreateTestSecurity creates a test security with default values
func CreateTestSecurity(recordDate, cusip string, securityType models.SecurityType) models.Security {
	class := "Notes"
	issue := "2024-02-15"
	maturity := "2034-02-15"
	year := 2034
	rate := 4.25
	return models.Security{
		RecordDate:        recordDate,
		CUSIP:             cusip,
		SecurityType:      securityType,
		SecurityClass:     &class,
		IssueDate:         &issue,
		MaturityDate:      &maturity,
		MaturityYear:      &year,
		InterestRate:      &rate,
		OutstandingAmount: 1_000_000_000,
	}
}

// CreateTestSecurityMaturing creates a test security maturing in a specific year
func CreateTestSecurityMaturing(recordDate, cusip string, securityType models.SecurityType, maturityYear int, outstanding float64) models.Security {
	s := CreateTestSecurity(recordDate, cusip, securityType)
	s.MaturityYear = &maturityYear
	s.OutstandingAmount = outstanding
	return s
}

// CreateTestAuction creates a test auction with default values
func CreateTestAuction(auctionDate, cusip string, securityType models.SecurityType, ratio float64) models.Auction {
	term := "10-Year"
	highYield := 4.5
	total := 40_000_000_000.0
	direct := 8_000_000_000.0
	indirect := 24_000_000_000.0
	dealer := 8_000_000_000.0
	return models.Auction{
		AuctionDate:           auctionDate,
		CUSIP:                 cusip,
		SecurityType:          securityType,
		SecurityTerm:          &term,
		BidToCoverRatio:       ratio,
		HighYield:             &highYield,
		TotalAccepted:         &total,
		DirectAccepted:        &direct,
		IndirectAccepted:      &indirect,
		PrimaryDealerAccepted: &dealer,
	}
}

// CreateTestDebtSnapshot creates a test debt snapshot with default values
func CreateTestDebtSnapshot(recordDate string, totalDebt float64) models.DebtSnapshot {
	public := totalDebt * 0.8
	intra := totalDebt * 0.2
	return models.DebtSnapshot{
		RecordDate:                recordDate,
		TotalDebt:                 totalDebt,
		DebtHeldByPublic:          &public,
		IntragovernmentalHoldings: &intra,
	}
}

// CreateTestIndicator creates a test economic indicator with default values
func CreateTestIndicator(recordDate string) *models.EconomicIndicator {
	avgRate := 3.3
	expense := 950_000_000_000.0
	yield := 4.3
	real := 2.1
	breakeven := yield - real
	return &models.EconomicIndicator{
		RecordDate:          recordDate,
		AvgInterestRate:     &avgRate,
		InterestExpenseFYTD: &expense,
		Yield10Y:            &yield,
		RealYield10Y:        &real,
		Breakeven10Y:        &breakeven,
	}
}

// CreateTestWallBucket creates a test maturity wall bucket for a year
func CreateTestWallBucket(year int, notes, bonds float64) models.MaturityWallBucket {
	return models.MaturityWallBucket{
		Year:  year,
		Notes: notes,
		Bonds: bonds,
		Total: notes + bonds,
	}
}
