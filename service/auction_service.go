package service

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"debtwatch/aggregate"
	"debtwatch/models"
	"debtwatch/sanitize"
)

// DemandResult is the resolved answer for an auction demand query.
type DemandResult struct {
	Points       []models.DemandPoint       `json:"data"`
	Stats        models.DemandStats         `json:"stats"`
	Compositions []models.BidderComposition `json:"bidderComposition"`
	Source       string                     `json:"-"`
}

// auctionService resolves auction demand queries store-first with a live
// upstream fallback.
type auctionService struct {
	auctions AuctionRepository
	client   FiscalClient
	now      func() time.Time
}

// NewAuctionService creates a new auction service. auctions may be nil in
// store-less mode.
func NewAuctionService(auctions AuctionRepository, client FiscalClient) AuctionService {
	return &auctionService{auctions: auctions, client: client, now: time.Now}
}

// GetDemand resolves the bid-to-cover series for the requested timeframe
// and security types.
func (s *auctionService) GetDemand(ctx context.Context, timeframe string, types []models.SecurityType) (*DemandResult, error) {
	since, err := SinceForTimeframe(s.now(), timeframe)
	if err != nil {
		return nil, err
	}

	if len(types) == 0 {
		types = models.AuctionSecurityTypes
	}

	var cleaned []models.Auction
	source := SourceDatabase

	if s.auctions != nil {
		stored, err := s.auctions.GetSince(ctx, since, types)
		if err != nil {
			log.Warnf("auction store query failed, falling back to live fetch: %v", err)
		} else if len(stored) > 0 {
			cleaned = stored
		}
	}

	if cleaned == nil {
		raws, err := s.client.AuctionsSince(ctx, since)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch auctions: %w", err)
		}
		cleaned = sanitize.CleanAuctions(raws)
		source = SourceAPI
	}

	points := aggregate.AuctionDemand(cleaned, types, since)

	// Restrict the composition view to the same auctions the series shows.
	wanted := make(map[models.SecurityType]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}
	inScope := make([]models.Auction, 0, len(cleaned))
	for _, a := range cleaned {
		if wanted[a.SecurityType] && a.AuctionDate >= since {
			inScope = append(inScope, a)
		}
	}

	return &DemandResult{
		Points:       points,
		Stats:        aggregate.DemandStats(points),
		Compositions: aggregate.BidderCompositions(inScope),
		Source:       source,
	}, nil
}
