package delivery

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions to ensure deliveries
// follow the correct business workflow.
//
// State transitions:
//
//	Created ──────────────┬──> Assigned ──> InTransit ──> Completed
//	   │                  │        │
//	   └> PendingAssignment <──────┘
//	              (assignment cancel)
//
// Failed is reachable from every state except Completed and Canceled;
// Canceled is reachable from every state except Completed and Failed.
// Both are absorbing.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status of a freshly created delivery.
	StatusCreated

	// StatusPendingAssignment marks a delivery waiting for a new agent after
	// its previous assignment was canceled.
	StatusPendingAssignment

	// StatusAssigned indicates the delivery has an agent but has not been
	// picked up yet.
	StatusAssigned

	// StatusInTransit indicates the package has been picked up and is on its
	// way to the dropoff location.
	StatusInTransit

	// StatusCompleted indicates the package was delivered. Final state.
	StatusCompleted

	// StatusFailed indicates the delivery could not be carried out. Final state.
	StatusFailed

	// StatusCanceled indicates the delivery was called off. Final state.
	StatusCanceled
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:           "Unknown",
		StatusCreated:           "Created",
		StatusPendingAssignment: "PendingAssignment",
		StatusAssigned:          "Assigned",
		StatusInTransit:         "InTransit",
		StatusCompleted:         "Completed",
		StatusFailed:            "Failed",
		StatusCanceled:          "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:           "Created",
		StatusPendingAssignment: "PendingAssignment",
		StatusAssigned:          "Assigned",
		StatusInTransit:         "InTransit",
		StatusCompleted:         "Completed",
		StatusFailed:            "Failed",
		StatusCanceled:          "Canceled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
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

// StatusFromString parses a status name as received from transport or
// persistence.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// transitionError builds the uniform state-transition error naming the current
// state and the attempted transition.
func (s Status) transitionError(attempted string) error {
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), attempted))
}

// ValidateAssign checks whether an agent may be assigned in the current state
// without performing the transition. Assignment is legal from Created and
// PendingAssignment only.
func (s Status) ValidateAssign() error {
	if s != StatusCreated && s != StatusPendingAssignment {
		return s.transitionError("assign")
	}
	return nil
}

// ValidateCanHaveAgent validates the consistency between delivery status and
// agent assignment: an agent must be present in Assigned, InTransit, and
// Completed, must be absent in Created and PendingAssignment, and may linger
// in Failed and Canceled as history.
func (s Status) ValidateCanHaveAgent(hasAgent bool) error {
	if !hasAgent && (s == StatusAssigned || s == StatusInTransit || s == StatusCompleted) {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have no agent", s.String()))
	}

	if hasAgent && (s == StatusCreated || s == StatusPendingAssignment) {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to have an agent", s.String()))
	}

	return nil
}

// Assign transitions to Assigned. Legal from Created and PendingAssignment.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return StatusAssigned, nil
}

// PickUp transitions to InTransit. Legal from Assigned only.
func (s Status) PickUp() (Status, error) {
	if s != StatusAssigned {
		return 0, s.transitionError("pick up")
	}

	return StatusInTransit, nil
}

// Complete transitions to Completed. Legal from InTransit only.
func (s Status) Complete() (Status, error) {
	if s != StatusInTransit {
		return 0, s.transitionError("complete")
	}

	return StatusCompleted, nil
}

// CancelAssignment reverts to PendingAssignment. Legal from Assigned only.
func (s Status) CancelAssignment() (Status, error) {
	if s != StatusAssigned {
		return 0, s.transitionError("cancel assignment for")
	}

	return StatusPendingAssignment, nil
}

// Fail transitions to Failed. Legal from every state except the other final
// states Completed and Canceled.
func (s Status) Fail() (Status, error) {
	if s == StatusCompleted || s == StatusCanceled {
		return 0, s.transitionError("fail")
	}

	return StatusFailed, nil
}

// Cancel transitions to Canceled. Legal from every state except the other
// final states Completed and Failed.
func (s Status) Cancel() (Status, error) {
	if s == StatusCompleted || s == StatusFailed {
		return 0, s.transitionError("cancel")
	}

	return StatusCanceled, nil
}

// IsEligibleForAssignment reports whether a delivery in this status may still
// receive an agent.
func (s Status) IsEligibleForAssignment() bool {
	return s == StatusCreated || s == StatusPendingAssignment
}
