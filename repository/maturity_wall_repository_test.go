package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"debtwatch/models"
	"debtwatch/repository/testutil"
)

func TestMaturityWallRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewMaturityWallRepository(testDB.DB)
	ctx := context.Background()

	t.Run("empty table", func(t *testing.T) {
		computedDate, buckets, err := repo.GetLatest(ctx, 2025, 2055)
		require.NoError(t, err)
		assert.Empty(t, computedDate)
		assert.Empty(t, buckets)
	})

	t.Run("insert and read back", func(t *testing.T) {
		buckets := []models.MaturityWallBucket{
			testutil.CreateTestWallBucket(2026, 3_000_000_000_000, 500_000_000_000),
			testutil.CreateTestWallBucket(2027, 2_500_000_000_000, 700_000_000_000),
			testutil.CreateTestWallBucket(2040, 100_000_000_000, 900_000_000_000),
		}

		inserted, err := repo.InsertBuckets(ctx, "2025-06-30", buckets)
		require.NoError(t, err)
		assert.Equal(t, int64(3), inserted)

		computedDate, got, err := repo.GetLatest(ctx, 2026, 2035)
		require.NoError(t, err)
		assert.Equal(t, "2025-06-30", computedDate)
		require.Len(t, got, 2)
		assert.Equal(t, 2026, got[0].Year)
		assert.Equal(t, 2027, got[1].Year)
		assert.Equal(t, 3_500_000_000_000.0, got[0].Total)
	})

	t.Run("re-inserting a computed date is a no-op", func(t *testing.T) {
		inserted, err := repo.InsertBuckets(ctx, "2025-06-30", []models.MaturityWallBucket{
			testutil.CreateTestWallBucket(2026, 1, 1),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(0), inserted)
	})

	t.Run("latest computed date wins", func(t *testing.T) {
		inserted, err := repo.InsertBuckets(ctx, "2025-07-31", []models.MaturityWallBucket{
			testutil.CreateTestWallBucket(2026, 3_100_000_000_000, 600_000_000_000),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), inserted)

		computedDate, got, err := repo.GetLatest(ctx, 2026, 2035)
		require.NoError(t, err)
		assert.Equal(t, "2025-07-31", computedDate)
		require.Len(t, got, 1)
		assert.Equal(t, 3_700_000_000_000.0, got[0].Total)
	})

	t.Run("empty buckets", func(t *testing.T) {
		inserted, err := repo.InsertBuckets(ctx, "2025-08-31", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), inserted)
	})
}
