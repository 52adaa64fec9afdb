package agent

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the working state of a delivery agent.
//
// Available and Busy are driven by workload: assigning the delivery that
// reaches capacity flips the agent to Busy, completing one below capacity
// flips them back. OnBreak and Offline are set externally via UpdateStatus
// and are never entered automatically.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusAvailable means the agent accepts new deliveries.
	StatusAvailable

	// StatusBusy means the agent is at capacity.
	StatusBusy

	// StatusOnBreak means the agent is temporarily not working.
	StatusOnBreak

	// StatusOffline means the agent is off shift.
	StatusOffline
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusAvailable: "Available",
		StatusBusy:      "Busy",
		StatusOnBreak:   "OnBreak",
		StatusOffline:   "Offline",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable: "Available",
		StatusBusy:      "Busy",
		StatusOnBreak:   "OnBreak",
		StatusOffline:   "Offline",
	}
}

// Validate checks if the Status value is one of the defined agent states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid agent status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses an agent status name as received from transport
// or persistence.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid agent status", s))
}
