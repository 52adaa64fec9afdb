package delivery

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Priority ranks how urgently a delivery should be carried out. It does not
// gate any state transition; it exists for dispatch ordering and reporting.
type Priority int

const (
	// PriorityLow is for deliveries without time pressure.
	PriorityLow Priority = iota

	// PriorityStandard is the default priority.
	PriorityStandard

	// PriorityHigh marks time-sensitive deliveries.
	PriorityHigh

	// PriorityExpress marks the most urgent deliveries.
	PriorityExpress
)

// getValidPriorityStrings returns a map of valid Priority values to their
// string representations.
func getValidPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityLow:      "Low",
		PriorityStandard: "Standard",
		PriorityHigh:     "High",
		PriorityExpress:  "Express",
	}
}

// Validate checks if the Priority value is one of the defined levels.
func (p Priority) Validate() error {
	if _, ok := getValidPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	if str, ok := getValidPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// PriorityFromString parses a priority name as received from transport.
func PriorityFromString(s string) (Priority, error) {
	for p, str := range getValidPriorityStrings() {
		if str == s {
			return p, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("priority is invalid",
		fmt.Errorf("%q is not a valid priority", s))
}
