package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"debtwatch/models"
	"debtwatch/sanitize"
	"debtwatch/treasury"
)

// IndicatorSnapshot is the resolved answer for the health query.
type IndicatorSnapshot struct {
	RecordDate          string   `json:"recordDate"`
	AvgInterestRate     *float64 `json:"avgInterestRate"`
	InterestExpenseFYTD *float64 `json:"interestExpenseFytd"`
	Yield10Y            *float64 `json:"yield10y"`
	RealYield10Y        *float64 `json:"realYield10y"`
	Breakeven10Y        *float64 `json:"breakeven10y"`
	Source              string   `json:"source"`
}

// HistoryPoint is one day of the indicator history series.
type HistoryPoint struct {
	Date         string   `json:"date"`
	Yield10Y     *float64 `json:"yield10y"`
	RealYield10Y *float64 `json:"realYield10y"`
	Breakeven10Y *float64 `json:"breakeven10y"`
}

// Last-known-good indicator values, served when both the store and the
// upstream feeds are unreachable. Indicators are advisory, so a stale
// default keeps the dashboard functional; there is no equivalent for
// debt or auction magnitudes.
var (
	defaultAvgRate      = 3.35
	defaultExpense      = 1.13e12
	defaultYield10Y     = 4.25
	defaultRealYield10Y = 2.05
	defaultBreakeven    = defaultYield10Y - defaultRealYield10Y
	defaultRecordDate   = "2025-06-30"
)

// healthService resolves indicator queries with a three-tier fallback:
// store, then live upstream, then hardcoded defaults. It never errors.
type healthService struct {
	indicators IndicatorRepository
	client     FiscalClient
}

// NewHealthService creates a new health service. indicators may be nil in
// store-less mode.
func NewHealthService(indicators IndicatorRepository, client FiscalClient) HealthService {
	return &healthService{indicators: indicators, client: client}
}

// GetIndicators resolves the latest indicator snapshot. The result is
// always usable; the Source field reports which tier produced it.
func (s *healthService) GetIndicators(ctx context.Context) *IndicatorSnapshot {
	if s.indicators != nil {
		stored, err := s.indicators.GetLatest(ctx)
		if err != nil {
			log.Warnf("indicator store query failed, falling back to live fetch: %v", err)
		} else if stored != nil {
			return snapshotFromIndicator(stored, SourceDatabase)
		}
	}

	if ind := s.fetchLive(ctx); ind != nil {
		return snapshotFromIndicator(ind, SourceAPI)
	}

	log.Warn("indicator store and upstream both unavailable, serving defaults")
	return &IndicatorSnapshot{
		RecordDate:          defaultRecordDate,
		AvgInterestRate:     &defaultAvgRate,
		InterestExpenseFYTD: &defaultExpense,
		Yield10Y:            &defaultYield10Y,
		RealYield10Y:        &defaultRealYield10Y,
		Breakeven10Y:        &defaultBreakeven,
		Source:              SourceDefault,
	}
}

// fetchLive pulls the four indicator feeds, tolerating individual feed
// failures, and merges them. Returns nil when nothing usable came back.
func (s *healthService) fetchLive(ctx context.Context) *models.EconomicIndicator {
	var (
		avgRate *treasury.RawAvgRate
		expense *treasury.RawInterestExpense
		nominal *treasury.RawYieldCurve
		real    *treasury.RawYieldCurve
	)

	if r, err := s.client.LatestAvgRate(ctx); err != nil {
		log.Warnf("avg rate fetch failed: %v", err)
	} else {
		avgRate = r
	}
	if r, err := s.client.LatestInterestExpense(ctx); err != nil {
		log.Warnf("interest expense fetch failed: %v", err)
	} else {
		expense = r
	}
	if r, err := s.client.LatestYieldCurve(ctx); err != nil {
		log.Warnf("yield curve fetch failed: %v", err)
	} else {
		nominal = r
	}
	if r, err := s.client.LatestRealYieldCurve(ctx); err != nil {
		log.Warnf("real yield curve fetch failed: %v", err)
	} else {
		real = r
	}

	return sanitize.CleanEconomicIndicator(avgRate, expense, nominal, real)
}

// GetHistory returns the stored indicator series for the timeframe.
// When the store is unavailable the series is empty, never an error.
func (s *healthService) GetHistory(ctx context.Context, timeframe string) ([]HistoryPoint, error) {
	since, err := SinceForTimeframe(nowUTC(), timeframe)
	if err != nil {
		return nil, err
	}

	if s.indicators == nil {
		return []HistoryPoint{}, nil
	}

	stored, err := s.indicators.GetSince(ctx, since)
	if err != nil {
		log.Warnf("indicator history query failed: %v", err)
		return []HistoryPoint{}, nil
	}

	points := make([]HistoryPoint, 0, len(stored))
	for _, ind := range stored {
		points = append(points, HistoryPoint{
			Date:         ind.RecordDate,
			Yield10Y:     ind.Yield10Y,
			RealYield10Y: ind.RealYield10Y,
			Breakeven10Y: ind.Breakeven10Y,
		})
	}
	return points, nil
}

func snapshotFromIndicator(ind *models.EconomicIndicator, source string) *IndicatorSnapshot {
	return &IndicatorSnapshot{
		RecordDate:          ind.RecordDate,
		AvgInterestRate:     ind.AvgInterestRate,
		InterestExpenseFYTD: ind.InterestExpenseFYTD,
		Yield10Y:            ind.Yield10Y,
		RealYield10Y:        ind.RealYield10Y,
		Breakeven10Y:        ind.Breakeven10Y,
		Source:              source,
	}
}
