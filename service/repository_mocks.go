package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"debtwatch/models"
	"debtwatch/treasury"
)

// MockSecurityRepository is a mock implementation of SecurityRepository
type MockSecurityRepository struct {
	mock.Mock
}

func (m *MockSecurityRepository) InsertBatch(ctx context.Context, securities []models.Security) (int64, error) {
	args := m.Called(ctx, securities)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSecurityRepository) GetLatest(ctx context.Context) ([]models.Security, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Security), args.Error(1)
}

func (m *MockSecurityRepository) CountByRecordDate(ctx context.Context, recordDate string) (int64, error) {
	args := m.Called(ctx, recordDate)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSecurityRepository) CountLatest(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuctionRepository is a mock implementation of AuctionRepository
type MockAuctionRepository struct {
	mock.Mock
}

func (m *MockAuctionRepository) InsertBatch(ctx context.Context, auctions []models.Auction) (int64, error) {
	args := m.Called(ctx, auctions)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuctionRepository) GetSince(ctx context.Context, since string, types []models.SecurityType) ([]models.Auction, error) {
	args := m.Called(ctx, since, types)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Auction), args.Error(1)
}

// MockDebtSnapshotRepository is a mock implementation of DebtSnapshotRepository
type MockDebtSnapshotRepository struct {
	mock.Mock
}

func (m *MockDebtSnapshotRepository) InsertBatch(ctx context.Context, snapshots []models.DebtSnapshot) (int64, error) {
	args := m.Called(ctx, snapshots)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDebtSnapshotRepository) GetLatest(ctx context.Context) (*models.DebtSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DebtSnapshot), args.Error(1)
}

// MockIndicatorRepository is a mock implementation of IndicatorRepository
type MockIndicatorRepository struct {
	mock.Mock
}

func (m *MockIndicatorRepository) Insert(ctx context.Context, ind *models.EconomicIndicator) (int64, error) {
	args := m.Called(ctx, ind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockIndicatorRepository) GetLatest(ctx context.Context) (*models.EconomicIndicator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EconomicIndicator), args.Error(1)
}

func (m *MockIndicatorRepository) GetSince(ctx context.Context, since string) ([]models.EconomicIndicator, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EconomicIndicator), args.Error(1)
}

// MockMaturityWallRepository is a mock implementation of MaturityWallRepository
type MockMaturityWallRepository struct {
	mock.Mock
}

func (m *MockMaturityWallRepository) InsertBuckets(ctx context.Context, computedDate string, buckets []models.MaturityWallBucket) (int64, error) {
	args := m.Called(ctx, computedDate, buckets)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMaturityWallRepository) GetLatest(ctx context.Context, startYear, endYear int) (string, []models.MaturityWallBucket, error) {
	args := m.Called(ctx, startYear, endYear)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).([]models.MaturityWallBucket), args.Error(2)
}

// MockETLJobRepository is a mock implementation of ETLJobRepository
type MockETLJobRepository struct {
	mock.Mock
}

func (m *MockETLJobRepository) Start(ctx context.Context, jobName string) (*models.ETLJob, error) {
	args := m.Called(ctx, jobName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ETLJob), args.Error(1)
}

func (m *MockETLJobRepository) Complete(ctx context.Context, jobName string, recordsProcessed int) error {
	args := m.Called(ctx, jobName, recordsProcessed)
	return args.Error(0)
}

func (m *MockETLJobRepository) Fail(ctx context.Context, jobName string, errorMessage string) error {
	args := m.Called(ctx, jobName, errorMessage)
	return args.Error(0)
}

func (m *MockETLJobRepository) GetLatest(ctx context.Context, jobName string) (*models.ETLJob, error) {
	args := m.Called(ctx, jobName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ETLJob), args.Error(1)
}

// MockFiscalClient is a mock implementation of FiscalClient
type MockFiscalClient struct {
	mock.Mock
}

func (m *MockFiscalClient) LatestDebtSnapshot(ctx context.Context) (*treasury.RawDebtSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*treasury.RawDebtSnapshot), args.Error(1)
}

func (m *MockFiscalClient) AllSecurities(ctx context.Context) ([]treasury.RawSecurity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]treasury.RawSecurity), args.Error(1)
}

func (m *MockFiscalClient) AuctionsSince(ctx context.Context, since string) ([]treasury.RawAuction, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]treasury.RawAuction), args.Error(1)
}

func (m *MockFiscalClient) LatestAvgRate(ctx context.Context) (*treasury.RawAvgRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*treasury.RawAvgRate), args.Error(1)
}

func (m *MockFiscalClient) LatestInterestExpense(ctx context.Context) (*treasury.RawInterestExpense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*treasury.RawInterestExpense), args.Error(1)
}

func (m *MockFiscalClient) LatestYieldCurve(ctx context.Context) (*treasury.RawYieldCurve, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*treasury.RawYieldCurve), args.Error(1)
}

func (m *MockFiscalClient) LatestRealYieldCurve(ctx context.Context) (*treasury.RawYieldCurve, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*treasury.RawYieldCurve), args.Error(1)
}
