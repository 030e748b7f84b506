package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("plain number", func(t *testing.T) {
		got := ParseAmount("1250.50")
		require.NotNil(t, got)
		assert.Equal(t, 1250.50, *got)
	})

	t.Run("thousands separators", func(t *testing.T) {
		got := ParseAmount("1,250.50")
		require.NotNil(t, got)
		assert.Equal(t, 1250.50, *got)
	})

	t.Run("currency symbol", func(t *testing.T) {
		got := ParseAmount("$36,000,000,000,000")
		require.NotNil(t, got)
		assert.Equal(t, 36_000_000_000_000.0, *got)
	})

	t.Run("sentinel values", func(t *testing.T) {
		for _, s := range []string{"", "null", "NULL", "N/A", "n/a", "na", "*", "  "} {
			assert.Nil(t, ParseAmount(s), "sentinel %q should parse to nil", s)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		assert.Nil(t, ParseAmount("not a number"))
	})

	t.Run("negative amounts rejected", func(t *testing.T) {
		assert.Nil(t, ParseAmount("-5000"))
	})

	t.Run("non-finite values rejected", func(t *testing.T) {
		for _, s := range []string{"NaN", "nan", "Inf", "Infinity", "+Inf", "-Infinity"} {
			assert.Nil(t, ParseAmount(s), "%q should parse to nil", s)
		}
	})
}

func TestParseNumber(t *testing.T) {
	t.Run("negative allowed", func(t *testing.T) {
		got := ParseNumber("-0.25")
		require.NotNil(t, got)
		assert.Equal(t, -0.25, *got)
	})

	t.Run("sentinel", func(t *testing.T) {
		assert.Nil(t, ParseNumber("N/A"))
	})

	t.Run("ratio", func(t *testing.T) {
		got := ParseNumber("2.58")
		require.NotNil(t, got)
		assert.Equal(t, 2.58, *got)
	})

	t.Run("non-finite values rejected", func(t *testing.T) {
		for _, s := range []string{"NaN", "Infinity", "-Inf"} {
			assert.Nil(t, ParseNumber(s), "%q should parse to nil", s)
		}
	})
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso date", "2025-06-30", "2025-06-30"},
		{"iso timestamp", "2025-06-30T00:00:00", "2025-06-30"},
		{"us short", "6/30/2025", "2025-06-30"},
		{"us padded", "06/30/2025", "2025-06-30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDate(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}

	t.Run("unusable dates", func(t *testing.T) {
		assert.Nil(t, NormalizeDate(""))
		assert.Nil(t, NormalizeDate("null"))
		assert.Nil(t, NormalizeDate("30 June 2025"))
	})
}

func TestExtractYear(t *testing.T) {
	got := ExtractYear("2034-02-15")
	require.NotNil(t, got)
	assert.Equal(t, 2034, *got)

	assert.Nil(t, ExtractYear("N/A"))
}
