package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchFilter(t *testing.T) {
	f := NewSearchFilter("", "low")
	assert.False(t, f.HasCategory())
	assert.Equal(t, PriceRangeLow, f.Range)
	assert.Equal(t, PriceBand{Min: 0, Max: 5000}, f.Band)
	assert.Equal(t, ResultCap, f.Limit)

	f = NewSearchFilter("Электроника", "bogus")
	assert.True(t, f.HasCategory())
	assert.Equal(t, "электроника", f.CategoryNeedle())
	assert.Equal(t, PriceRangeAny, f.Range)
	assert.False(t, f.Band.Bounded())
}

func TestQueryError_Unwraps(t *testing.T) {
	cause := errors.New("database is locked")
	err := fmt.Errorf("search: %w", NewQueryError("search products", cause))

	require.True(t, IsQueryError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "database is locked")

	assert.Nil(t, NewQueryError("noop", nil))
	assert.False(t, IsQueryError(ErrNoProductsFound))
}
