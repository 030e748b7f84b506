package aggregate

import (
	"debtwatch/models"
)

// MaturityWall buckets outstanding principal by maturity year over
// [startYear, endYear] inclusive. Securities whose maturity year is nil
// or out of range are ignored. The result is sorted ascending by year and
// keeps all-zero years.
func MaturityWall(securities []models.Security, startYear, endYear int) []models.MaturityWallBucket {
	if endYear < startYear {
		return []models.MaturityWallBucket{}
	}

	buckets := make([]models.MaturityWallBucket, 0, endYear-startYear+1)
	index := make(map[int]int, endYear-startYear+1)
	for year := startYear; year <= endYear; year++ {
		index[year] = len(buckets)
		buckets = append(buckets, models.MaturityWallBucket{Year: year})
	}

	for _, s := range securities {
		if s.MaturityYear == nil {
			continue
		}
		i, ok := index[*s.MaturityYear]
		if !ok {
			continue
		}

		b := &buckets[i]
		switch s.SecurityType {
		case models.SecurityTypeBill:
			b.Bills += s.OutstandingAmount
		case models.SecurityTypeNote:
			b.Notes += s.OutstandingAmount
		case models.SecurityTypeBond:
			b.Bonds += s.OutstandingAmount
		case models.SecurityTypeTIPS:
			b.TIPS += s.OutstandingAmount
		case models.SecurityTypeFRN:
			b.FRN += s.OutstandingAmount
		default:
			b.Other += s.OutstandingAmount
		}
		b.Total += s.OutstandingAmount
	}

	return buckets
}
