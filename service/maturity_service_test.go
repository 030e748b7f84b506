package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debtwatch/models"
	"debtwatch/treasury"
)

func newMaturityServiceForTest(wall MaturityWallRepository, securities SecurityRepository, client FiscalClient) *maturityService {
	return &maturityService{
		wall:       wall,
		securities: securities,
		client:     client,
		now:        func() time.Time { return fixedNow },
	}
}

func TestMaturityService_GetWall_FromPrecomputed(t *testing.T) {
	ctx := context.Background()

	mockWall := new(MockMaturityWallRepository)
	mockSecurities := new(MockSecurityRepository)
	mockClient := new(MockFiscalClient)

	buckets := []models.MaturityWallBucket{
		{Year: 2025, Notes: 1e12, Total: 1e12},
		{Year: 2026, Bonds: 5e11, Total: 5e11},
	}
	mockWall.On("GetLatest", ctx, 2025, 2026).Return("2025-08-31", buckets, nil)
	mockSecurities.On("CountLatest", ctx).Return(int64(1200), nil)

	svc := newMaturityServiceForTest(mockWall, mockSecurities, mockClient)

	result, err := svc.GetWall(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, SourceDatabase, result.Source)
	assert.Equal(t, "2025-08-31", result.RecordDate)
	assert.Equal(t, 1200, result.TotalSecurities)
	assert.Len(t, result.Buckets, 2)

	mockSecurities.AssertNotCalled(t, "GetLatest")
	mockClient.AssertNotCalled(t, "AllSecurities")
}

func TestMaturityService_GetWall_FromStoredSecurities(t *testing.T) {
	ctx := context.Background()

	mockWall := new(MockMaturityWallRepository)
	mockSecurities := new(MockSecurityRepository)
	mockClient := new(MockFiscalClient)

	// No precomputed aggregates yet.
	mockWall.On("GetLatest", ctx, 2025, 2029).Return("", []models.MaturityWallBucket{}, nil)

	year := 2026
	stored := []models.Security{
		{RecordDate: "2025-06-30", CUSIP: "A1", SecurityType: models.SecurityTypeNote, MaturityYear: &year, OutstandingAmount: 1e9},
	}
	mockSecurities.On("GetLatest", ctx).Return(stored, nil)

	svc := newMaturityServiceForTest(mockWall, mockSecurities, mockClient)

	result, err := svc.GetWall(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, SourceDatabase, result.Source)
	assert.Equal(t, "2025-06-30", result.RecordDate)
	assert.Equal(t, 1, result.TotalSecurities)
	require.Len(t, result.Buckets, 5)
	assert.Equal(t, 1e9, result.Buckets[1].Notes)

	mockClient.AssertNotCalled(t, "AllSecurities")
}

func TestMaturityService_GetWall_FromLiveFetch(t *testing.T) {
	ctx := context.Background()

	mockWall := new(MockMaturityWallRepository)
	mockSecurities := new(MockSecurityRepository)
	mockClient := new(MockFiscalClient)

	mockWall.On("GetLatest", ctx, 2025, 2027).Return("", []models.MaturityWallBucket{}, nil)
	mockSecurities.On("GetLatest", ctx).Return([]models.Security{}, nil)
	mockClient.On("AllSecurities", ctx).Return([]treasury.RawSecurity{
		{
			RecordDate:        "2025-06-30",
			CUSIP:             "912828XX1",
			SecurityTypeDesc:  "Treasury Notes",
			MaturityDate:      "2026-02-15",
			OutstandingAmount: "42,000,000,000",
		},
	}, nil)

	svc := newMaturityServiceForTest(mockWall, mockSecurities, mockClient)

	result, err := svc.GetWall(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, SourceAPI, result.Source)
	assert.Equal(t, 1, result.TotalSecurities)
	require.Len(t, result.Buckets, 3)
	assert.Equal(t, 42e9, result.Buckets[1].Notes)
}

func TestMaturityService_GetWall_StoreLess(t *testing.T) {
	ctx := context.Background()

	mockClient := new(MockFiscalClient)
	mockClient.On("AllSecurities", ctx).Return([]treasury.RawSecurity{
		{
			RecordDate:        "2025-06-30",
			CUSIP:             "A1",
			SecurityTypeDesc:  "Treasury Bills",
			MaturityDate:      "2025-12-01",
			OutstandingAmount: "100",
		},
	}, nil)

	svc := newMaturityServiceForTest(nil, nil, mockClient)

	result, err := svc.GetWall(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, SourceAPI, result.Source)
}

func TestMaturityService_GetWall_NoData(t *testing.T) {
	ctx := context.Background()

	mockClient := new(MockFiscalClient)
	mockClient.On("AllSecurities", ctx).Return([]treasury.RawSecurity{}, nil)

	svc := newMaturityServiceForTest(nil, nil, mockClient)

	result, err := svc.GetWall(ctx, 10)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestMaturityService_GetWall_UpstreamError(t *testing.T) {
	ctx := context.Background()

	mockClient := new(MockFiscalClient)
	mockClient.On("AllSecurities", ctx).Return(nil, errors.New("503 service unavailable"))

	svc := newMaturityServiceForTest(nil, nil, mockClient)

	result, err := svc.GetWall(ctx, 10)
	assert.Nil(t, result)
	assert.Error(t, err)
}
