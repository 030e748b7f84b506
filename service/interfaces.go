package service

import (
	"context"

	"debtwatch/models"
	"debtwatch/treasury"
)

// Source values tag where a resolver answer came from.
const (
	SourceDatabase = "database"
	SourceAPI      = "api"
	SourceDefault  = "default"
)

// DebtService resolves total-debt queries
type DebtService interface {
	GetLatest(ctx context.Context) (*DebtOverview, error)
}

// AuctionService resolves auction demand queries
type AuctionService interface {
	GetDemand(ctx context.Context, timeframe string, types []models.SecurityType) (*DemandResult, error)
}

// MaturityService resolves maturity wall queries
type MaturityService interface {
	GetWall(ctx context.Context, years int) (*MaturityWallResult, error)
}

// HealthService resolves indicator queries; GetIndicators never fails
type HealthService interface {
	GetIndicators(ctx context.Context) *IndicatorSnapshot
	GetHistory(ctx context.Context, timeframe string) ([]HistoryPoint, error)
}

// IngestService runs the batch ingestion job
type IngestService interface {
	Run(ctx context.Context) (*IngestReport, error)
}

// SecurityRepository defines the interface for security detail data access
type SecurityRepository interface {
	// InsertBatch inserts securities idempotently, returning rows inserted
	InsertBatch(ctx context.Context, securities []models.Security) (int64, error)

	// GetLatest returns all securities for the most recent record date
	GetLatest(ctx context.Context) ([]models.Security, error)

	// CountByRecordDate returns the persisted row count for a record date
	CountByRecordDate(ctx context.Context, recordDate string) (int64, error)

	// CountLatest returns the row count for the most recent record date
	CountLatest(ctx context.Context) (int64, error)
}

// AuctionRepository defines the interface for auction result data access
type AuctionRepository interface {
	// InsertBatch inserts auctions idempotently, returning rows inserted
	InsertBatch(ctx context.Context, auctions []models.Auction) (int64, error)

	// GetSince returns auctions of the given types on or after since,
	// ascending by date; since may be empty for no bound
	GetSince(ctx context.Context, since string, types []models.SecurityType) ([]models.Auction, error)
}

// DebtSnapshotRepository defines the interface for debt snapshot data access
type DebtSnapshotRepository interface {
	// InsertBatch inserts snapshots idempotently, returning rows inserted
	InsertBatch(ctx context.Context, snapshots []models.DebtSnapshot) (int64, error)

	// GetLatest returns the most recent snapshot, or nil when none exist
	GetLatest(ctx context.Context) (*models.DebtSnapshot, error)
}

// IndicatorRepository defines the interface for economic indicator data access
type IndicatorRepository interface {
	// Insert inserts one indicator row idempotently, returning rows inserted
	Insert(ctx context.Context, ind *models.EconomicIndicator) (int64, error)

	// GetLatest returns the most recent indicator row, or nil when none exist
	GetLatest(ctx context.Context) (*models.EconomicIndicator, error)

	// GetSince returns indicator rows on or after since, ascending by date
	GetSince(ctx context.Context, since string) ([]models.EconomicIndicator, error)
}

// MaturityWallRepository defines the interface for maturity wall aggregates
type MaturityWallRepository interface {
	// InsertBuckets persists the buckets computed for computedDate
	InsertBuckets(ctx context.Context, computedDate string, buckets []models.MaturityWallBucket) (int64, error)

	// GetLatest returns the latest computed date and its buckets within
	// the year range; empty date when no aggregates exist
	GetLatest(ctx context.Context, startYear, endYear int) (string, []models.MaturityWallBucket, error)
}

// ETLJobRepository defines the interface for the ingestion job log
type ETLJobRepository interface {
	// Start appends the started row for a run
	Start(ctx context.Context, jobName string) (*models.ETLJob, error)

	// Complete appends the terminal completed row for a run
	Complete(ctx context.Context, jobName string, recordsProcessed int) error

	// Fail appends the terminal failed row for a run
	Fail(ctx context.Context, jobName string, errorMessage string) error

	// GetLatest returns the most recent row for a job, or nil when none exist
	GetLatest(ctx context.Context, jobName string) (*models.ETLJob, error)
}

// FiscalClient defines the upstream fiscal-data fetches the services need
type FiscalClient interface {
	LatestDebtSnapshot(ctx context.Context) (*treasury.RawDebtSnapshot, error)
	AllSecurities(ctx context.Context) ([]treasury.RawSecurity, error)
	AuctionsSince(ctx context.Context, since string) ([]treasury.RawAuction, error)
	LatestAvgRate(ctx context.Context) (*treasury.RawAvgRate, error)
	LatestInterestExpense(ctx context.Context) (*treasury.RawInterestExpense, error)
	LatestYieldCurve(ctx context.Context) (*treasury.RawYieldCurve, error)
	LatestRealYieldCurve(ctx context.Context) (*treasury.RawYieldCurve, error)
}
