package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"debtwatch/aggregate"
	"debtwatch/models"
	"debtwatch/sanitize"
)

// JobName identifies the daily ingestion run in the job log.
const JobName = "daily_ingest"

// auctionBackfill is how far back the auction step fetches. Older runs
// are reached through the resolver's live fallback; re-ingesting an
// already-seen window is a no-op thanks to skip-on-conflict inserts.
const auctionBackfill = 1 // years

// maturityHorizon is how many calendar years of buckets the aggregate
// step pre-computes.
const maturityHorizon = 30

// StepResult is the outcome of one ingestion step.
type StepResult struct {
	Step    string `json:"step"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   int64  `json:"count"`
}

// IngestReport summarizes a full run. Steps are always present in run
// order, whether they succeeded or not.
type IngestReport struct {
	JobName      string       `json:"jobName"`
	StartedAt    time.Time    `json:"startedAt"`
	DurationMS   int64        `json:"durationMs"`
	Steps        []StepResult `json:"steps"`
	TotalRecords int64        `json:"totalRecords"`
	Success      bool         `json:"success"`
}

// ingestService is the batch orchestrator: it pulls each domain through
// the client and sanitizer, persists idempotently, and records the run in
// the job log. Each step has its own failure boundary; one step failing
// never prevents the ones after it from running.
type ingestService struct {
	client     FiscalClient
	securities SecurityRepository
	auctions   AuctionRepository
	snapshots  DebtSnapshotRepository
	indicators IndicatorRepository
	wall       MaturityWallRepository
	jobs       ETLJobRepository
	health     *healthService
	now        func() time.Time
}

// NewIngestService creates a new ingestion orchestrator. All repositories
// are required; ingestion is not meaningful in store-less mode.
func NewIngestService(
	client FiscalClient,
	securities SecurityRepository,
	auctions AuctionRepository,
	snapshots DebtSnapshotRepository,
	indicators IndicatorRepository,
	wall MaturityWallRepository,
	jobs ETLJobRepository,
) IngestService {
	return &ingestService{
		client:     client,
		securities: securities,
		auctions:   auctions,
		snapshots:  snapshots,
		indicators: indicators,
		wall:       wall,
		jobs:       jobs,
		health:     &healthService{client: client},
		now:        time.Now,
	}
}

type ingestStep struct {
	name string
	run  func(ctx context.Context) (int64, error)
}

// Run executes the full ingestion sequence and returns the per-step
// report. The returned error is reserved for conditions that prevented
// the run from happening at all (no store, job-log bootstrap failure);
// individual step failures are reported, not returned.
func (s *ingestService) Run(ctx context.Context) (*IngestReport, error) {
	if s.jobs == nil || s.securities == nil {
		return nil, ErrNoStore
	}

	started := s.now()
	if _, err := s.jobs.Start(ctx, JobName); err != nil {
		return nil, err
	}

	steps := []ingestStep{
		{"fetch_debt_snapshot", s.stepDebtSnapshot},
		{"fetch_securities", s.stepSecurities},
		{"fetch_auctions", s.stepAuctions},
		{"fetch_economic_indicators", s.stepIndicators},
		{"compute_aggregates", s.stepAggregates},
	}

	report := &IngestReport{
		JobName:   JobName,
		StartedAt: started,
		Steps:     make([]StepResult, 0, len(steps)),
	}

	var firstFailure string
	for _, step := range steps {
		count, err := step.run(ctx)
		result := StepResult{Step: step.name, Count: count}
		if err != nil {
			result.Message = err.Error()
			if firstFailure == "" {
				firstFailure = step.name + ": " + err.Error()
			}
			log.Errorf("ingest step %s failed: %v", step.name, err)
		} else {
			result.Success = true
			report.TotalRecords += count
			log.Infof("ingest step %s inserted %d records", step.name, count)
		}
		report.Steps = append(report.Steps, result)
	}

	// The run is terminal-failed only when nothing at all was ingested;
	// partial success still completes, with the failures in the report.
	report.Success = s.anySucceeded(report.Steps)
	report.DurationMS = s.now().Sub(started).Milliseconds()

	if report.Success {
		if err := s.jobs.Complete(ctx, JobName, int(report.TotalRecords)); err != nil {
			return report, err
		}
	} else {
		if err := s.jobs.Fail(ctx, JobName, firstFailure); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (s *ingestService) anySucceeded(steps []StepResult) bool {
	for _, step := range steps {
		if step.Success {
			return true
		}
	}
	return false
}

func (s *ingestService) stepDebtSnapshot(ctx context.Context) (int64, error) {
	raw, err := s.client.LatestDebtSnapshot(ctx)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, ErrNoData
	}
	snapshot := sanitize.CleanDebtSnapshot(*raw)
	if snapshot == nil {
		return 0, ErrNoData
	}
	return s.snapshots.InsertBatch(ctx, []models.DebtSnapshot{*snapshot})
}

func (s *ingestService) stepSecurities(ctx context.Context) (int64, error) {
	raws, err := s.client.AllSecurities(ctx)
	if err != nil {
		return 0, err
	}
	cleaned := sanitize.CleanSecurities(raws)
	return s.securities.InsertBatch(ctx, cleaned)
}

func (s *ingestService) stepAuctions(ctx context.Context) (int64, error) {
	since := s.now().UTC().AddDate(-auctionBackfill, 0, 0).Format("2006-01-02")
	raws, err := s.client.AuctionsSince(ctx, since)
	if err != nil {
		return 0, err
	}
	cleaned := sanitize.CleanAuctions(raws)
	return s.auctions.InsertBatch(ctx, cleaned)
}

func (s *ingestService) stepIndicators(ctx context.Context) (int64, error) {
	ind := s.health.fetchLive(ctx)
	if ind == nil {
		return 0, ErrNoData
	}
	return s.indicators.Insert(ctx, ind)
}

func (s *ingestService) stepAggregates(ctx context.Context) (int64, error) {
	securities, err := s.securities.GetLatest(ctx)
	if err != nil {
		return 0, err
	}
	if len(securities) == 0 {
		return 0, ErrNoData
	}

	startYear := s.now().UTC().Year()
	buckets := aggregate.MaturityWall(securities, startYear, startYear+maturityHorizon-1)
	return s.wall.InsertBuckets(ctx, ISODate(s.now()), buckets)
}
