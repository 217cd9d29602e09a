package kernel_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinate(t *testing.T) {
	t.Run("should create coordinate with valid bounds", func(t *testing.T) {
		testCases := []struct {
			latitude  float64
			longitude float64
		}{
			{0, 0},
			{26.6602, 86.2070},
			{-90, -180},
			{90, 180},
			{-33.8688, 151.2093},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("(%v,%v)", tc.latitude, tc.longitude), func(t *testing.T) {
				coordinate, err := kernel.NewCoordinate(tc.latitude, tc.longitude)

				require.NoError(t, err)
				assert.InDelta(t, tc.latitude, coordinate.Latitude(), 0)
				assert.InDelta(t, tc.longitude, coordinate.Longitude(), 0)
				require.NoError(t, coordinate.Validate())
			})
		}
	})

	t.Run("should reject out of range latitude", func(t *testing.T) {
		for _, latitude := range []float64{-90.0001, 90.0001, 120, -1000} {
			_, err := kernel.NewCoordinate(latitude, 0)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Contains(t, err.Error(), "latitude")
		}
	})

	t.Run("should reject out of range longitude", func(t *testing.T) {
		for _, longitude := range []float64{-180.0001, 180.0001, 360, 999} {
			_, err := kernel.NewCoordinate(0, longitude)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Contains(t, err.Error(), "longitude")
		}
	})

	t.Run("should join errors for both invalid components", func(t *testing.T) {
		_, err := kernel.NewCoordinate(-95, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestCoordinate_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var coordinate kernel.Coordinate

		err := coordinate.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("constructed coordinate passes validation", func(t *testing.T) {
		coordinate, err := kernel.NewCoordinate(26.6618, 86.2025)
		require.NoError(t, err)

		require.NoError(t, coordinate.Validate())
	})
}

func TestCoordinate_DistanceTo(t *testing.T) {
	t.Run("distance to self is zero", func(t *testing.T) {
		coordinate, err := kernel.NewCoordinate(26.6618, 86.2025)
		require.NoError(t, err)

		distance, err := coordinate.DistanceTo(coordinate)

		require.NoError(t, err)
		assert.InDelta(t, 0, distance, 0)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		a, err := kernel.NewCoordinate(26.6602, 86.2070)
		require.NoError(t, err)
		b, err := kernel.NewCoordinate(26.7191, 86.0951)
		require.NoError(t, err)

		ab, err := a.DistanceTo(b)
		require.NoError(t, err)
		ba, err := b.DistanceTo(a)
		require.NoError(t, err)

		assert.InDelta(t, ab, ba, 0)
	})

	t.Run("known distance between reference points", func(t *testing.T) {
		// Siraha bazaar to Lahan, ~12.9 km great-circle.
		a, err := kernel.NewCoordinate(26.6602, 86.2070)
		require.NoError(t, err)
		b, err := kernel.NewCoordinate(26.7191, 86.0951)
		require.NoError(t, err)

		distance, err := a.DistanceTo(b)

		require.NoError(t, err)
		assert.InDelta(t, 12.90, distance, 0.5)
	})

	t.Run("result is rounded to 2 decimals", func(t *testing.T) {
		a, err := kernel.NewCoordinate(27.7172, 85.3240)
		require.NoError(t, err)
		b, err := kernel.NewCoordinate(27.6710, 85.4298)
		require.NoError(t, err)

		distance, err := a.DistanceTo(b)

		require.NoError(t, err)
		assert.InDelta(t, distance, float64(int(distance*100))/100, 0.0001)
	})

	t.Run("antipodal points are half the circumference apart", func(t *testing.T) {
		a, err := kernel.NewCoordinate(0, 0)
		require.NoError(t, err)
		b, err := kernel.NewCoordinate(0, 180)
		require.NoError(t, err)

		distance, err := a.DistanceTo(b)

		require.NoError(t, err)
		assert.InDelta(t, 20015.09, distance, 1)
	})

	t.Run("fails for unconstructed coordinates", func(t *testing.T) {
		var zero kernel.Coordinate
		constructed, err := kernel.NewCoordinate(1, 1)
		require.NoError(t, err)

		_, err = zero.DistanceTo(constructed)
		require.Error(t, err)

		_, err = constructed.DistanceTo(zero)
		require.Error(t, err)
	})
}

func TestCoordinate_IsEqual(t *testing.T) {
	t.Run("equal coordinates", func(t *testing.T) {
		a, err := kernel.NewCoordinate(5.5, 7.25)
		require.NoError(t, err)
		b, err := kernel.NewCoordinate(5.5, 7.25)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different coordinates", func(t *testing.T) {
		a, err := kernel.NewCoordinate(5.5, 7.25)
		require.NoError(t, err)
		b, err := kernel.NewCoordinate(5.5, 7.26)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("unconstructed coordinate fails", func(t *testing.T) {
		var zero kernel.Coordinate
		a, err := kernel.NewCoordinate(1, 2)
		require.NoError(t, err)

		_, err = a.IsEqual(zero)
		require.Error(t, err)
	})
}

func TestCoordinate_String(t *testing.T) {
	coordinate, err := kernel.NewCoordinate(26.6602, 86.207)
	require.NoError(t, err)

	assert.Equal(t, "Coordinate(26.660200,86.207000)", coordinate.String())
}
