package agent

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Capacity is the maximum number of deliveries an agent can carry at once.
// It must be strictly positive.
type Capacity struct {
	value int
}

// NewCapacity creates a Capacity. Fails if value is not strictly positive.
func NewCapacity(value int) (Capacity, error) {
	if value <= 0 {
		return Capacity{}, errs.NewValueIsInvalidErrorWithCause("capacity is invalid",
			fmt.Errorf("%d is not greater than 0", value))
	}
	return Capacity{value: value}, nil
}

// Value returns the capacity as a plain integer.
func (c Capacity) Value() int {
	return c.value
}

// Validate checks that the Capacity was created through NewCapacity.
// The zero value carries no capacity and is invalid.
func (c Capacity) Validate() error {
	if c.value <= 0 {
		return errs.NewValueIsRequiredError("capacity must be created via NewCapacity constructor")
	}
	return nil
}
