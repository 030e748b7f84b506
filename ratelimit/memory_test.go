package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Check(t *testing.T) {
	ctx := context.Background()
	cfg := Config{Interval: 1000 * time.Millisecond, Limit: 3}

	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	store := newMemoryStoreWithClock(func() time.Time { return now })

	t.Run("allows up to limit then rejects", func(t *testing.T) {
		expected := []bool{true, true, true, false}
		for i, want := range expected {
			dec, err := store.Check(ctx, "client-a", cfg)
			require.NoError(t, err)
			assert.Equal(t, want, dec.Allowed, "request %d", i+1)
		}
	})

	t.Run("remaining counts down", func(t *testing.T) {
		dec, err := store.Check(ctx, "client-b", cfg)
		require.NoError(t, err)
		assert.Equal(t, 2, dec.Remaining)

		dec, err = store.Check(ctx, "client-b", cfg)
		require.NoError(t, err)
		assert.Equal(t, 1, dec.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		dec, err := store.Check(ctx, "client-c", cfg)
		require.NoError(t, err)
		assert.True(t, dec.Allowed)
		assert.Equal(t, cfg.Limit-1, dec.Remaining)
	})

	t.Run("fresh window after interval", func(t *testing.T) {
		now = now.Add(1001 * time.Millisecond)

		dec, err := store.Check(ctx, "client-a", cfg)
		require.NoError(t, err)
		assert.True(t, dec.Allowed)
		assert.Equal(t, cfg.Limit-1, dec.Remaining)
		assert.Equal(t, cfg.Interval, dec.ResetIn)
	})

	t.Run("rejection reports reset time", func(t *testing.T) {
		base := now
		for i := 0; i < cfg.Limit; i++ {
			_, err := store.Check(ctx, "client-d", cfg)
			require.NoError(t, err)
		}

		now = base.Add(400 * time.Millisecond)
		dec, err := store.Check(ctx, "client-d", cfg)
		require.NoError(t, err)
		assert.False(t, dec.Allowed)
		assert.Equal(t, 600*time.Millisecond, dec.ResetIn)
	})
}
