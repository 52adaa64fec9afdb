package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidLocation(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return loc
}

func TestNewLocation(t *testing.T) {
	t.Run("should create location with valid coordinates", func(t *testing.T) {
		loc, err := kernel.NewLocation(52.52, 13.405)

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.InDelta(t, 52.52, loc.Latitude(), 1e-9)
		assert.InDelta(t, 13.405, loc.Longitude(), 1e-9)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lon float64
		}{
			{"south pole", -90, 0},
			{"north pole", 90, 0},
			{"date line west", 0, -180},
			{"date line east", 0, 180},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewLocation(tc.lat, tc.lon)
				require.NoError(t, err)
			})
		}
	})

	t.Run("should return error for out of range coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lon float64
		}{
			{"latitude too small", -90.001, 0},
			{"latitude too large", 90.001, 0},
			{"longitude too small", 0, -180.001},
			{"longitude too large", 0, 180.001},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewLocation(tc.lat, tc.lon)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var loc kernel.Location
		require.Error(t, loc.Validate())
	})
}

func TestLocationDistanceTo(t *testing.T) {
	t.Run("distance to itself is zero", func(t *testing.T) {
		loc := createValidLocation(t, 48.8566, 2.3522)

		d, err := loc.DistanceTo(loc)

		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		paris := createValidLocation(t, 48.8566, 2.3522)
		berlin := createValidLocation(t, 52.52, 13.405)

		d1, err := paris.DistanceTo(berlin)
		require.NoError(t, err)
		d2, err := berlin.DistanceTo(paris)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("known great-circle distance", func(t *testing.T) {
		paris := createValidLocation(t, 48.8566, 2.3522)
		berlin := createValidLocation(t, 52.52, 13.405)

		d, err := paris.DistanceTo(berlin)

		require.NoError(t, err)
		// Paris-Berlin is roughly 878 km.
		assert.InDelta(t, 878, d, 10)
	})

	t.Run("one degree of latitude is about 111 km", func(t *testing.T) {
		a := createValidLocation(t, 0, 0)
		b := createValidLocation(t, 1, 0)

		d, err := a.DistanceTo(b)

		require.NoError(t, err)
		assert.InDelta(t, 111.2, d, 0.5)
	})

	t.Run("unconstructed location fails", func(t *testing.T) {
		loc := createValidLocation(t, 0, 0)
		var zero kernel.Location

		_, err := loc.DistanceTo(zero)

		require.Error(t, err)
	})
}

func TestLocationIsEqual(t *testing.T) {
	t.Run("equal coordinates", func(t *testing.T) {
		a := createValidLocation(t, 10, 20)
		b := createValidLocation(t, 10, 20)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different coordinates", func(t *testing.T) {
		a := createValidLocation(t, 10, 20)
		b := createValidLocation(t, 10, 21)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})
}
