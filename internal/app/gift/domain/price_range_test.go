package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePriceRange_KnownTokens(t *testing.T) {
	cases := []struct {
		token   string
		min     float64
		max     float64
		bounded bool
	}{
		{"low", 0, 5000, true},
		{"medium", 5000, 20000, true},
		{"high", 20000, math.Inf(1), false},
		{"", 0, math.Inf(1), false},
	}

	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			band := ParsePriceRange(tc.token).Band()
			assert.Equal(t, tc.min, band.Min)
			assert.Equal(t, tc.max, band.Max)
			assert.Equal(t, tc.bounded, band.Bounded())
		})
	}
}

// Anything outside the known set behaves as the empty token.
func TestParsePriceRange_UnknownFallsBackToAny(t *testing.T) {
	for _, raw := range []string{"bogus", "LOW", "Medium", "cheap", "0-5000", "lowest", "\x00"} {
		r := ParsePriceRange(raw)
		assert.Equal(t, PriceRangeAny, r, "token %q", raw)
		assert.Equal(t, ResolvePriceRange(PriceRangeAny), r.Band(), "token %q", raw)
	}
}

func TestParsePriceRange_PaddedTokensAreUnknown(t *testing.T) {
	for _, raw := range []string{" high ", "low\n", "\tmedium", "high "} {
		assert.Equal(t, PriceRangeAny, ParsePriceRange(raw), "token %q", raw)
	}
}

func TestPriceBand_EdgesAreInclusive(t *testing.T) {
	low := PriceRangeLow.Band()
	medium := PriceRangeMedium.Band()
	high := PriceRangeHigh.Band()

	// 5000 and 20000 sit in both neighbouring bands.
	assert.True(t, low.Contains(LowMediumEdge))
	assert.True(t, medium.Contains(LowMediumEdge))
	assert.True(t, medium.Contains(MediumHighEdge))
	assert.True(t, high.Contains(MediumHighEdge))

	assert.True(t, low.Contains(0))
	assert.False(t, low.Contains(5000.01))
	assert.False(t, medium.Contains(4999.99))
	assert.False(t, high.Contains(19999.99))
	assert.True(t, high.Contains(1e12))
}
