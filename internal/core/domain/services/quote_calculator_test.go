package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardSchedule(t *testing.T) []pricing.ZoneTier {
	t.Helper()

	inner, err := pricing.NewZoneTier("Inner City", 0, 5,
		decimal.NewFromInt(30), decimal.NewFromInt(5), true)
	require.NoError(t, err)

	suburban, err := pricing.NewZoneTier("Suburban", 5.01, 15,
		decimal.NewFromInt(50), decimal.NewFromInt(8), true)
	require.NoError(t, err)

	return []pricing.ZoneTier{inner, suburban}
}

func TestQuoteCalculator_Calculate(t *testing.T) {
	calculator := services.NewQuoteCalculator()

	t.Run("quotes a short trip inside the first zone", func(t *testing.T) {
		// ~1.3 km apart.
		pickup, err := kernel.NewCoordinate(26.6602, 86.2070)
		require.NoError(t, err)
		dropoff, err := kernel.NewCoordinate(26.6700, 86.2150)
		require.NoError(t, err)

		quote, err := calculator.Calculate(pickup, dropoff, standardSchedule(t))

		require.NoError(t, err)
		assert.Greater(t, quote.DistanceKm, 0.0)
		assert.Less(t, quote.DistanceKm, 5.0)
		require.NotNil(t, quote.Fee.MatchedTier)
		assert.Equal(t, "Inner City", quote.Fee.MatchedTier.Name())
		assert.False(t, quote.Fee.IsFallback())

		expectedFee := decimal.NewFromInt(30).
			Add(decimal.NewFromFloat(quote.DistanceKm).Mul(decimal.NewFromInt(5)).Round(2)).
			Round(2)
		assert.True(t, expectedFee.Equal(quote.Fee.TotalFee),
			"expected %s, got %s", expectedFee, quote.Fee.TotalFee)
		assert.Equal(t, pricing.EstimateMinutes(quote.DistanceKm), quote.EstimatedMinutes)
	})

	t.Run("quotes a longer trip in the second zone", func(t *testing.T) {
		// ~12.9 km apart.
		pickup, err := kernel.NewCoordinate(26.6602, 86.2070)
		require.NoError(t, err)
		dropoff, err := kernel.NewCoordinate(26.7191, 86.0951)
		require.NoError(t, err)

		quote, err := calculator.Calculate(pickup, dropoff, standardSchedule(t))

		require.NoError(t, err)
		require.NotNil(t, quote.Fee.MatchedTier)
		assert.Equal(t, "Suburban", quote.Fee.MatchedTier.Name())
	})

	t.Run("same coordinate quotes zero distance in the first zone", func(t *testing.T) {
		point, err := kernel.NewCoordinate(26.6602, 86.2070)
		require.NoError(t, err)

		quote, err := calculator.Calculate(point, point, standardSchedule(t))

		require.NoError(t, err)
		assert.InDelta(t, 0, quote.DistanceKm, 0)
		require.NotNil(t, quote.Fee.MatchedTier)
		assert.Equal(t, "Inner City", quote.Fee.MatchedTier.Name())
		assert.True(t, decimal.NewFromInt(30).Equal(quote.Fee.TotalFee))
		assert.Equal(t, 30, quote.EstimatedMinutes)
	})

	t.Run("falls back to the flat fee with an empty schedule", func(t *testing.T) {
		pickup, err := kernel.NewCoordinate(26.6602, 86.2070)
		require.NoError(t, err)
		dropoff, err := kernel.NewCoordinate(26.7191, 86.0951)
		require.NoError(t, err)

		quote, err := calculator.Calculate(pickup, dropoff, nil)

		require.NoError(t, err)
		assert.True(t, quote.Fee.IsFallback())
		assert.True(t, pricing.DefaultDeliveryFee.Equal(quote.Fee.TotalFee))
	})

	t.Run("rejects unconstructed coordinates", func(t *testing.T) {
		valid, err := kernel.NewCoordinate(26.6602, 86.2070)
		require.NoError(t, err)

		_, err = calculator.Calculate(kernel.Coordinate{}, valid, standardSchedule(t))
		require.ErrorIs(t, err, kernel.ErrCoordinateIsNotConstructed)

		_, err = calculator.Calculate(valid, kernel.Coordinate{}, standardSchedule(t))
		require.ErrorIs(t, err, kernel.ErrCoordinateIsNotConstructed)
	})
}

func TestQuoteCalculator_CalculateFromDistance(t *testing.T) {
	calculator := services.NewQuoteCalculator()

	t.Run("quotes a known distance against the schedule", func(t *testing.T) {
		quote := calculator.CalculateFromDistance(12.9, standardSchedule(t))

		assert.InDelta(t, 12.9, quote.DistanceKm, 0)
		require.NotNil(t, quote.Fee.MatchedTier)
		assert.Equal(t, "Suburban", quote.Fee.MatchedTier.Name())
		assert.True(t, decimal.RequireFromString("153.20").Equal(quote.Fee.TotalFee),
			"got %s", quote.Fee.TotalFee)
		assert.Equal(t, 159, quote.EstimatedMinutes)
	})

	t.Run("matches the coordinate-based quote for the same trip", func(t *testing.T) {
		pickup, err := kernel.NewCoordinate(26.6602, 86.2070)
		require.NoError(t, err)
		dropoff, err := kernel.NewCoordinate(26.7191, 86.0951)
		require.NoError(t, err)

		fromCoordinates, err := calculator.Calculate(pickup, dropoff, standardSchedule(t))
		require.NoError(t, err)

		fromDistance := calculator.CalculateFromDistance(fromCoordinates.DistanceKm, standardSchedule(t))

		assert.True(t, fromCoordinates.Fee.TotalFee.Equal(fromDistance.Fee.TotalFee))
		assert.Equal(t, fromCoordinates.EstimatedMinutes, fromDistance.EstimatedMinutes)
	})

	t.Run("falls back beyond the schedule", func(t *testing.T) {
		quote := calculator.CalculateFromDistance(250, standardSchedule(t))

		assert.True(t, quote.Fee.IsFallback())
		assert.True(t, pricing.DefaultDeliveryFee.Equal(quote.Fee.TotalFee))
	})
}
