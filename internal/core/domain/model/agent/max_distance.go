package agent

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// MaxDistance is the kilometer radius an agent is willing to travel from
// their current location to a pickup point. It must be strictly positive.
type MaxDistance struct {
	kilometers float64
}

// NewMaxDistance creates a MaxDistance. Fails if kilometers is not strictly
// positive; values are never clamped.
func NewMaxDistance(kilometers float64) (MaxDistance, error) {
	if kilometers <= 0 {
		return MaxDistance{}, errs.NewValueIsInvalidErrorWithCause("max distance is invalid",
			fmt.Errorf("%g is not greater than 0", kilometers))
	}
	return MaxDistance{kilometers: kilometers}, nil
}

// Kilometers returns the radius in kilometers.
func (m MaxDistance) Kilometers() float64 {
	return m.kilometers
}

// Covers reports whether the given distance in kilometers is within the
// radius. The boundary is inclusive.
func (m MaxDistance) Covers(distanceKm float64) bool {
	return distanceKm <= m.kilometers
}

// Validate checks that the MaxDistance was created through NewMaxDistance.
// The zero value covers nothing and is invalid.
func (m MaxDistance) Validate() error {
	if m.kilometers <= 0 {
		return errs.NewValueIsRequiredError("max distance must be created via NewMaxDistance constructor")
	}
	return nil
}
