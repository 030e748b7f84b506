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

// MaturityWallResult is the resolved answer for a maturity wall query.
type MaturityWallResult struct {
	Buckets         []models.MaturityWallBucket `json:"data"`
	RecordDate      string                      `json:"recordDate"`
	TotalSecurities int                         `json:"totalSecuritiesProcessed"`
	Source          string                      `json:"source"`
}

// maturityService resolves maturity wall queries. It prefers the
// pre-computed aggregate rows written by the ingestion job, then a fresh
// aggregation over stored securities, then a live fetch.
type maturityService struct {
	wall       MaturityWallRepository
	securities SecurityRepository
	client     FiscalClient
	now        func() time.Time
}

// NewMaturityService creates a new maturity service. The repositories may
// be nil in store-less mode.
func NewMaturityService(wall MaturityWallRepository, securities SecurityRepository, client FiscalClient) MaturityService {
	return &maturityService{wall: wall, securities: securities, client: client, now: time.Now}
}

// GetWall resolves the maturity wall for the next `years` calendar years,
// starting with the current year.
func (s *maturityService) GetWall(ctx context.Context, years int) (*MaturityWallResult, error) {
	startYear := s.now().UTC().Year()
	endYear := startYear + years - 1

	if s.wall != nil {
		computedDate, buckets, err := s.wall.GetLatest(ctx, startYear, endYear)
		if err != nil {
			log.Warnf("maturity wall store query failed: %v", err)
		} else if len(buckets) > 0 {
			var total int
			if s.securities != nil {
				if n, err := s.securities.CountLatest(ctx); err == nil {
					total = int(n)
				}
			}
			return &MaturityWallResult{
				Buckets:         buckets,
				RecordDate:      computedDate,
				TotalSecurities: total,
				Source:          SourceDatabase,
			}, nil
		}
	}

	if s.securities != nil {
		stored, err := s.securities.GetLatest(ctx)
		if err != nil {
			log.Warnf("securities store query failed, falling back to live fetch: %v", err)
		} else if len(stored) > 0 {
			return &MaturityWallResult{
				Buckets:         aggregate.MaturityWall(stored, startYear, endYear),
				RecordDate:      stored[0].RecordDate,
				TotalSecurities: len(stored),
				Source:          SourceDatabase,
			}, nil
		}
	}

	raws, err := s.client.AllSecurities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch securities: %w", err)
	}
	cleaned := sanitize.CleanSecurities(raws)
	if len(cleaned) == 0 {
		return nil, ErrNoData
	}

	return &MaturityWallResult{
		Buckets:         aggregate.MaturityWall(cleaned, startYear, endYear),
		RecordDate:      cleaned[0].RecordDate,
		TotalSecurities: len(cleaned),
		Source:          SourceAPI,
	}, nil
}
