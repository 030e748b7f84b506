package aggregate

import (
	"sort"

	"debtwatch/models"
)

// WeakDemandThreshold is the bid-to-cover ratio below which an auction is
// considered weakly bid.
const WeakDemandThreshold = 2.0

// AuctionDemand filters auctions to the requested security types,
// optionally bounded by auctionDate >= since (ISO date, empty for no
// bound), and returns demand points sorted ascending by date.
func AuctionDemand(auctions []models.Auction, types []models.SecurityType, since string) []models.DemandPoint {
	wanted := make(map[models.SecurityType]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	points := make([]models.DemandPoint, 0, len(auctions))
	for _, a := range auctions {
		if !wanted[a.SecurityType] {
			continue
		}
		if since != "" && a.AuctionDate < since {
			continue
		}
		points = append(points, models.DemandPoint{
			Date:            a.AuctionDate,
			CUSIP:           a.CUSIP,
			SecurityType:    a.SecurityType,
			BidToCoverRatio: a.BidToCoverRatio,
			HighYield:       a.HighYield,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// DemandStats computes descriptive statistics over demand points. The
// median takes the upper-middle element of the ascending ratio list,
// without interpolation. An empty input yields an all-zero struct.
func DemandStats(points []models.DemandPoint) models.DemandStats {
	if len(points) == 0 {
		return models.DemandStats{}
	}

	ratios := make([]float64, len(points))
	for i, p := range points {
		ratios[i] = p.BidToCoverRatio
	}
	sort.Float64s(ratios)

	stats := models.DemandStats{
		Count:       len(ratios),
		MinRatio:    ratios[0],
		MaxRatio:    ratios[len(ratios)-1],
		MedianRatio: ratios[len(ratios)/2],
	}

	var sum float64
	for _, r := range ratios {
		sum += r
		if r < WeakDemandThreshold {
			stats.BelowThreshold++
		}
	}
	stats.AvgRatio = sum / float64(len(ratios))

	return stats
}

// BidderCompositions derives percentage splits of accepted bids. Auctions
// missing the accepted total or any of the three category amounts are
// excluded entirely rather than zero-filled.
func BidderCompositions(auctions []models.Auction) []models.BidderComposition {
	comps := make([]models.BidderComposition, 0, len(auctions))
	for _, a := range auctions {
		if a.TotalAccepted == nil || *a.TotalAccepted == 0 {
			continue
		}
		if a.DirectAccepted == nil || a.IndirectAccepted == nil || a.PrimaryDealerAccepted == nil {
			continue
		}
		comps = append(comps, models.BidderComposition{
			Date:         a.AuctionDate,
			CUSIP:        a.CUSIP,
			SecurityType: a.SecurityType,
			DirectPct:    *a.DirectAccepted / *a.TotalAccepted * 100,
			IndirectPct:  *a.IndirectAccepted / *a.TotalAccepted * 100,
			DealerPct:    *a.PrimaryDealerAccepted / *a.TotalAccepted * 100,
		})
	}
	return comps
}
