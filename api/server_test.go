package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debtwatch/config"
	"debtwatch/models"
	"debtwatch/ratelimit"
	"debtwatch/service"
)

// Fake services return canned answers so handler tests exercise only the
// HTTP layer.

type fakeDebtService struct {
	overview *service.DebtOverview
	err      error
}

func (f *fakeDebtService) GetLatest(_ context.Context) (*service.DebtOverview, error) {
	return f.overview, f.err
}

type fakeAuctionService struct {
	result *service.DemandResult
	err    error

	gotTimeframe string
	gotTypes     []models.SecurityType
}

func (f *fakeAuctionService) GetDemand(_ context.Context, timeframe string, types []models.SecurityType) (*service.DemandResult, error) {
	f.gotTimeframe = timeframe
	f.gotTypes = types
	return f.result, f.err
}

type fakeMaturityService struct {
	result *service.MaturityWallResult
	err    error

	gotYears int
}

func (f *fakeMaturityService) GetWall(_ context.Context, years int) (*service.MaturityWallResult, error) {
	f.gotYears = years
	return f.result, f.err
}

type fakeHealthService struct {
	snapshot *service.IndicatorSnapshot
	history  []service.HistoryPoint
}

func (f *fakeHealthService) GetIndicators(_ context.Context) *service.IndicatorSnapshot {
	return f.snapshot
}

func (f *fakeHealthService) GetHistory(_ context.Context, _ string) ([]service.HistoryPoint, error) {
	return f.history, nil
}

type fakeIngestService struct {
	report *service.IngestReport
	err    error
	called bool
}

func (f *fakeIngestService) Run(_ context.Context) (*service.IngestReport, error) {
	f.called = true
	return f.report, f.err
}

type serverFakes struct {
	debt     *fakeDebtService
	auctions *fakeAuctionService
	maturity *fakeMaturityService
	health   *fakeHealthService
	ingest   *fakeIngestService
}

func testServer(cfg *config.Config) (*Server, *serverFakes) {
	fakes := &serverFakes{
		debt: &fakeDebtService{overview: &service.DebtOverview{
			TotalDebt:          37.1e12,
			TotalDebtFormatted: "$37.10T",
			LastUpdated:        "2025-08-29",
			Source:             service.SourceDatabase,
		}},
		auctions: &fakeAuctionService{result: &service.DemandResult{
			Points: []models.DemandPoint{
				{Date: "2025-05-15", CUSIP: "N1", SecurityType: models.SecurityTypeNote, BidToCoverRatio: 2.58},
			},
			Stats:        models.DemandStats{Count: 1, AvgRatio: 2.58, MinRatio: 2.58, MaxRatio: 2.58, MedianRatio: 2.58},
			Compositions: []models.BidderComposition{},
			Source:       service.SourceDatabase,
		}},
		maturity: &fakeMaturityService{result: &service.MaturityWallResult{
			Buckets:         []models.MaturityWallBucket{{Year: 2025, Notes: 1e12, Total: 1e12}},
			RecordDate:      "2025-06-30",
			TotalSecurities: 1200,
			Source:          service.SourceDatabase,
		}},
		health: &fakeHealthService{snapshot: &service.IndicatorSnapshot{
			RecordDate: "2025-08-01",
			Source:     service.SourceDefault,
		}},
		ingest: &fakeIngestService{report: &service.IngestReport{
			JobName: "daily_ingest",
			Success: true,
		}},
	}

	srv := NewServer(cfg, fakes.debt, fakes.auctions, fakes.maturity, fakes.health, fakes.ingest, nil)
	return srv, fakes
}

func devConfig() *config.Config {
	return &config.Config{
		Environment:        "development",
		RateLimitPerMinute: 60,
	}
}

func prodConfig(secret string) *config.Config {
	return &config.Config{
		Environment:        "production",
		CronSecret:         secret,
		RateLimitPerMinute: 60,
	}
}

func doRequest(srv *Server, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleDebt(t *testing.T) {
	srv, _ := testServer(devConfig())

	rec := doRequest(srv, http.MethodGet, "/debt", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body service.DebtOverview
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "$37.10T", body.TotalDebtFormatted)
	assert.Equal(t, service.SourceDatabase, body.Source)
}

func TestHandleDebt_NoData(t *testing.T) {
	srv, fakes := testServer(devConfig())
	fakes.debt.overview = nil
	fakes.debt.err = service.ErrNoData

	rec := doRequest(srv, http.MethodGet, "/debt", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleAuctions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		srv, fakes := testServer(devConfig())

		rec := doRequest(srv, http.MethodGet, "/auctions", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1y", fakes.auctions.gotTimeframe)
		assert.Nil(t, fakes.auctions.gotTypes)

		var body auctionsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, service.SourceDatabase, body.Meta.Source)
		assert.Equal(t, 1, body.Stats.Count)
	})

	t.Run("explicit params", func(t *testing.T) {
		srv, fakes := testServer(devConfig())

		rec := doRequest(srv, http.MethodGet, "/auctions?timeframe=5y&types=note,bond", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "5y", fakes.auctions.gotTimeframe)
		assert.Equal(t, []models.SecurityType{models.SecurityTypeNote, models.SecurityTypeBond}, fakes.auctions.gotTypes)
	})

	t.Run("invalid timeframe", func(t *testing.T) {
		srv, _ := testServer(devConfig())

		rec := doRequest(srv, http.MethodGet, "/auctions?timeframe=2y", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid type", func(t *testing.T) {
		srv, _ := testServer(devConfig())

		rec := doRequest(srv, http.MethodGet, "/auctions?types=note,equity", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("other is not an auction type", func(t *testing.T) {
		srv, _ := testServer(devConfig())

		rec := doRequest(srv, http.MethodGet, "/auctions?types=other", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleMaturityWall(t *testing.T) {
	t.Run("default years", func(t *testing.T) {
		srv, fakes := testServer(devConfig())

		rec := doRequest(srv, http.MethodGet, "/maturity-wall", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 10, fakes.maturity.gotYears)

		var body maturityWallResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "2025-06-30", body.Meta.RecordDate)
		assert.Equal(t, 1200, body.Meta.TotalSecuritiesProcessed)
	})

	t.Run("explicit years", func(t *testing.T) {
		srv, fakes := testServer(devConfig())

		rec := doRequest(srv, http.MethodGet, "/maturity-wall?years=30", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 30, fakes.maturity.gotYears)
	})

	t.Run("years out of range", func(t *testing.T) {
		srv, _ := testServer(devConfig())

		for _, bad := range []string{"0", "31", "-5", "ten"} {
			rec := doRequest(srv, http.MethodGet, "/maturity-wall?years="+bad, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, "years=%s", bad)
		}
	})
}

func TestHandleHealth(t *testing.T) {
	srv, _ := testServer(devConfig())

	rec := doRequest(srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body service.IndicatorSnapshot
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, service.SourceDefault, body.Source)
}

func TestHandleHealthHistory(t *testing.T) {
	t.Run("empty series encodes as array", func(t *testing.T) {
		srv, _ := testServer(devConfig())

		rec := doRequest(srv, http.MethodGet, "/health/history", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("invalid timeframe", func(t *testing.T) {
		srv, _ := testServer(devConfig())

		rec := doRequest(srv, http.MethodGet, "/health/history?timeframe=forever", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleCronIngest(t *testing.T) {
	t.Run("valid secret runs the job", func(t *testing.T) {
		srv, fakes := testServer(prodConfig("s3cret"))

		rec := doRequest(srv, http.MethodPost, "/cron/ingest", map[string]string{
			"Authorization": "Bearer s3cret",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, fakes.ingest.called)

		var body service.IngestReport
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.True(t, body.Success)
	})

	t.Run("wrong secret is unauthorized", func(t *testing.T) {
		srv, fakes := testServer(prodConfig("s3cret"))

		rec := doRequest(srv, http.MethodPost, "/cron/ingest", map[string]string{
			"Authorization": "Bearer wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, fakes.ingest.called)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		srv, fakes := testServer(prodConfig("s3cret"))

		rec := doRequest(srv, http.MethodPost, "/cron/ingest", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, fakes.ingest.called)
	})

	t.Run("development bypasses auth", func(t *testing.T) {
		srv, fakes := testServer(devConfig())

		rec := doRequest(srv, http.MethodPost, "/cron/ingest", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, fakes.ingest.called)
	})

	t.Run("store-less mode is unavailable", func(t *testing.T) {
		srv, fakes := testServer(devConfig())
		fakes.ingest.report = nil
		fakes.ingest.err = service.ErrNoStore

		rec := doRequest(srv, http.MethodPost, "/cron/ingest", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRateLimitOnDataRoutes(t *testing.T) {
	cfg := devConfig()
	cfg.RateLimitPerMinute = 2

	fakes := &serverFakes{
		debt: &fakeDebtService{overview: &service.DebtOverview{TotalDebt: 1}},
	}
	limiter := ratelimit.NewMemoryStore()
	srv := NewServer(cfg, fakes.debt, &fakeAuctionService{}, &fakeMaturityService{}, &fakeHealthService{}, &fakeIngestService{}, limiter)

	headers := map[string]string{"X-Forwarded-For": "203.0.113.7"}

	rec := doRequest(srv, http.MethodGet, "/debt", headers)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))

	rec = doRequest(srv, http.MethodGet, "/debt", headers)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(srv, http.MethodGet, "/debt", headers)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
