package pricing_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZoneTier(t *testing.T) {
	t.Run("creates valid tier", func(t *testing.T) {
		tier, err := pricing.NewZoneTier(
			"Inner City", 0, 5,
			decimal.RequireFromString("30.00"), decimal.RequireFromString("5.00"),
			true,
		)

		require.NoError(t, err)
		require.NoError(t, tier.Validate())
		assert.Equal(t, "Inner City", tier.Name())
		assert.InDelta(t, 0, tier.MinDistance(), 0)
		assert.InDelta(t, 5, tier.MaxDistance(), 0)
		assert.Equal(t, "30.00", tier.BaseFee().StringFixed(2))
		assert.Equal(t, "5.00", tier.PerKmRate().StringFixed(2))
		assert.True(t, tier.IsActive())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := pricing.NewZoneTier("", 0, 5, decimal.NewFromInt(30), decimal.NewFromInt(5), true)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects negative min distance", func(t *testing.T) {
		_, err := pricing.NewZoneTier("Bad", -1, 5, decimal.NewFromInt(30), decimal.NewFromInt(5), true)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "minDistance")
	})

	t.Run("rejects max not greater than min", func(t *testing.T) {
		for _, maxDist := range []float64{5, 4.99, 0} {
			_, err := pricing.NewZoneTier("Bad", 5, maxDist, decimal.NewFromInt(30), decimal.NewFromInt(5), true)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "maxDistance")
		}
	})

	t.Run("rejects negative fees", func(t *testing.T) {
		_, err := pricing.NewZoneTier("Bad", 0, 5, decimal.NewFromInt(-1), decimal.NewFromInt(5), true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "baseFee")

		_, err = pricing.NewZoneTier("Bad", 0, 5, decimal.NewFromInt(30), decimal.NewFromInt(-1), true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "perKmRate")
	})
}

func TestZoneTier_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var tier pricing.ZoneTier

		err := tier.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestZoneTier_Covers(t *testing.T) {
	tier, err := pricing.NewZoneTier(
		"Suburban", 5.01, 15,
		decimal.NewFromInt(50), decimal.NewFromInt(8),
		true,
	)
	require.NoError(t, err)

	assert.True(t, tier.Covers(5.01))
	assert.True(t, tier.Covers(10))
	assert.True(t, tier.Covers(15))
	assert.False(t, tier.Covers(5))
	assert.False(t, tier.Covers(15.01))
}
