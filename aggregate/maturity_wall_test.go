package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debtwatch/models"
)

func security(cusip string, securityType models.SecurityType, maturityYear int, outstanding float64) models.Security {
	return models.Security{
		RecordDate:        "2025-06-30",
		CUSIP:             cusip,
		SecurityType:      securityType,
		MaturityYear:      &maturityYear,
		OutstandingAmount: outstanding,
	}
}

func TestMaturityWall(t *testing.T) {
	securities := []models.Security{
		security("A1", models.SecurityTypeBill, 2026, 100),
		security("A2", models.SecurityTypeNote, 2026, 200),
		security("A3", models.SecurityTypeNote, 2027, 300),
		security("A4", models.SecurityTypeBond, 2028, 400),
		security("A5", models.SecurityTypeTIPS, 2028, 500),
		security("A6", models.SecurityTypeFRN, 2026, 600),
		security("A7", models.SecurityTypeOther, 2027, 700),
	}

	buckets := MaturityWall(securities, 2026, 2028)
	require.Len(t, buckets, 3)

	assert.Equal(t, 2026, buckets[0].Year)
	assert.Equal(t, 100.0, buckets[0].Bills)
	assert.Equal(t, 200.0, buckets[0].Notes)
	assert.Equal(t, 600.0, buckets[0].FRN)
	assert.Equal(t, 900.0, buckets[0].Total)

	assert.Equal(t, 2027, buckets[1].Year)
	assert.Equal(t, 300.0, buckets[1].Notes)
	assert.Equal(t, 700.0, buckets[1].Other)
	assert.Equal(t, 1000.0, buckets[1].Total)

	assert.Equal(t, 2028, buckets[2].Year)
	assert.Equal(t, 400.0, buckets[2].Bonds)
	assert.Equal(t, 500.0, buckets[2].TIPS)
	assert.Equal(t, 900.0, buckets[2].Total)
}

// Every bucket's total must equal the sum of its type components, and the
// wall's grand total must equal the sum of all in-range securities.
func TestMaturityWall_MassConservation(t *testing.T) {
	securities := []models.Security{
		security("B1", models.SecurityTypeBill, 2026, 123.45),
		security("B2", models.SecurityTypeNote, 2026, 678.90),
		security("B3", models.SecurityTypeBond, 2027, 42),
		security("B4", models.SecurityTypeTIPS, 2029, 99),
		security("B5", models.SecurityTypeFRN, 2027, 7),
		security("B6", models.SecurityTypeOther, 2029, 1),
	}

	buckets := MaturityWall(securities, 2026, 2030)

	var grandTotal float64
	for _, b := range buckets {
		componentSum := b.Bills + b.Notes + b.Bonds + b.TIPS + b.FRN + b.Other
		assert.InDelta(t, componentSum, b.Total, 1e-9, "bucket %d", b.Year)
		grandTotal += b.Total
	}

	var inputSum float64
	for _, s := range securities {
		inputSum += s.OutstandingAmount
	}
	assert.InDelta(t, inputSum, grandTotal, 1e-9)
}

func TestMaturityWall_EdgeCases(t *testing.T) {
	t.Run("nil maturity year ignored", func(t *testing.T) {
		s := models.Security{CUSIP: "C1", SecurityType: models.SecurityTypeNote, OutstandingAmount: 100}
		buckets := MaturityWall([]models.Security{s}, 2026, 2027)
		require.Len(t, buckets, 2)
		assert.Equal(t, 0.0, buckets[0].Total)
		assert.Equal(t, 0.0, buckets[1].Total)
	})

	t.Run("out of range ignored", func(t *testing.T) {
		buckets := MaturityWall([]models.Security{
			security("C2", models.SecurityTypeNote, 2050, 100),
		}, 2026, 2027)
		assert.Equal(t, 0.0, buckets[0].Total+buckets[1].Total)
	})

	t.Run("zero years kept", func(t *testing.T) {
		buckets := MaturityWall(nil, 2026, 2028)
		require.Len(t, buckets, 3)
		for i, b := range buckets {
			assert.Equal(t, 2026+i, b.Year)
			assert.Equal(t, 0.0, b.Total)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		buckets := MaturityWall(nil, 2028, 2026)
		assert.Empty(t, buckets)
	})
}
