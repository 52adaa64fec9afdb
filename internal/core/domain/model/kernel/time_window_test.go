package kernel_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidWindow(t *testing.T, start, end time.Time) kernel.TimeWindow {
	t.Helper()
	w, err := kernel.NewTimeWindow(start, end)
	require.NoError(t, err)
	return w
}

func TestNewTimeWindow(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should create window when start precedes end", func(t *testing.T) {
		w, err := kernel.NewTimeWindow(base, base.Add(2*time.Hour))

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.Equal(t, base, w.Start())
		assert.Equal(t, base.Add(2*time.Hour), w.End())
	})

	t.Run("should return error for inverted window", func(t *testing.T) {
		_, err := kernel.NewTimeWindow(base.Add(time.Hour), base)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should return error for zero-length window", func(t *testing.T) {
		_, err := kernel.NewTimeWindow(base, base)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var w kernel.TimeWindow
		require.Error(t, w.Validate())
	})
}

func TestTimeWindowQueries(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	w := createValidWindow(t, base, base.Add(3*time.Hour))

	t.Run("contains is inclusive of both bounds", func(t *testing.T) {
		assert.True(t, w.Contains(base))
		assert.True(t, w.Contains(base.Add(3*time.Hour)))
		assert.True(t, w.Contains(base.Add(time.Hour)))
		assert.False(t, w.Contains(base.Add(-time.Second)))
		assert.False(t, w.Contains(base.Add(3*time.Hour+time.Second)))
	})

	t.Run("duration in hours", func(t *testing.T) {
		assert.InDelta(t, 3, w.DurationInHours(), 1e-9)

		half := createValidWindow(t, base, base.Add(30*time.Minute))
		assert.InDelta(t, 0.5, half.DurationInHours(), 1e-9)
	})

	t.Run("future and past relative to now", func(t *testing.T) {
		now := time.Now().UTC()

		future := createValidWindow(t, now.Add(time.Hour), now.Add(2*time.Hour))
		assert.True(t, future.IsInFuture())
		assert.False(t, future.IsInPast())

		past := createValidWindow(t, now.Add(-2*time.Hour), now.Add(-time.Hour))
		assert.False(t, past.IsInFuture())
		assert.True(t, past.IsInPast())
	})

	t.Run("overlap detection", func(t *testing.T) {
		overlapping := createValidWindow(t, base.Add(2*time.Hour), base.Add(5*time.Hour))
		assert.True(t, w.Overlaps(overlapping))
		assert.True(t, overlapping.Overlaps(w))

		disjoint := createValidWindow(t, base.Add(4*time.Hour), base.Add(5*time.Hour))
		assert.False(t, w.Overlaps(disjoint))

		touching := createValidWindow(t, base.Add(3*time.Hour), base.Add(4*time.Hour))
		assert.True(t, w.Overlaps(touching))
	})
}

func TestVehicleType(t *testing.T) {
	t.Run("valid types pass validation", func(t *testing.T) {
		for _, vt := range []kernel.VehicleType{
			kernel.VehicleBicycle,
			kernel.VehicleMotorcycle,
			kernel.VehicleCar,
			kernel.VehicleVan,
			kernel.VehicleTruck,
		} {
			require.NoError(t, vt.Validate())
		}
	})

	t.Run("unknown type fails validation", func(t *testing.T) {
		require.Error(t, kernel.VehicleUnknown.Validate())
		require.Error(t, kernel.VehicleType(42).Validate())
	})

	t.Run("string round trip", func(t *testing.T) {
		vt, err := kernel.VehicleTypeFromString("Van")
		require.NoError(t, err)
		assert.Equal(t, kernel.VehicleVan, vt)
		assert.Equal(t, "Van", vt.String())
	})

	t.Run("unknown name fails parsing", func(t *testing.T) {
		_, err := kernel.VehicleTypeFromString("Hovercraft")
		require.Error(t, err)
	})
}
