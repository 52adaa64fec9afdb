package kernel

import (
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrTimeWindowIsNotConstructed is returned when attempting to use an
// improperly initialized TimeWindow.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"time window must be created via NewTimeWindow constructor")

// TimeWindow is an immutable interval in which a delivery must happen.
// The start is always strictly before the end.
type TimeWindow struct {
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewTimeWindow creates a TimeWindow. Fails when end is not strictly after
// start.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !end.After(start) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause("time window",
			fmt.Errorf("end %s must be after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)))
	}

	return TimeWindow{
		start: start,
		end:   end,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the TimeWindow was created through NewTimeWindow.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// Start returns the window's opening instant.
func (w TimeWindow) Start() time.Time {
	return w.start
}

// End returns the window's closing instant.
func (w TimeWindow) End() time.Time {
	return w.end
}

// Contains reports whether the instant falls inside the window, inclusive of
// both bounds.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.start) && !t.After(w.end)
}

// IsInFuture reports whether the window has not yet opened.
func (w TimeWindow) IsInFuture() bool {
	return w.start.After(time.Now().UTC())
}

// IsInPast reports whether the window has already closed.
func (w TimeWindow) IsInPast() bool {
	return w.end.Before(time.Now().UTC())
}

// DurationInHours returns the window length in fractional hours.
func (w TimeWindow) DurationInHours() float64 {
	return w.end.Sub(w.start).Hours()
}

// Overlaps reports whether two windows share at least one instant.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return !(w.end.Before(other.start) || w.start.After(other.end))
}
