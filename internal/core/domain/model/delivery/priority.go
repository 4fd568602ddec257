package delivery

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Priority represents the urgency of a delivery. It influences the estimated
// cost computed at creation time and nothing else in the core.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// Low priority deliveries are priced without a surcharge.
	Low

	// Medium is the default priority when the creator does not pick one.
	Medium

	// High priority deliveries carry the largest surcharge.
	High
)

// getPriorityStrings returns a map of Priority values to their wire names.
func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "UNKNOWN",
		Low:             "LOW",
		Medium:          "MEDIUM",
		High:            "HIGH",
	}
}

// getValidPriorityStrings returns a map of only valid Priority values.
func getValidPriorityStrings() map[Priority]string {
	//nolint:exhaustive // PriorityUnknown is intentionally excluded as it's invalid
	return map[Priority]string{
		Low:    "LOW",
		Medium: "MEDIUM",
		High:   "HIGH",
	}
}

// PriorityFromString parses a priority from its wire name.
// Accepts "LOW", "MEDIUM", and "HIGH". Returns an error for any other input.
func PriorityFromString(s string) (Priority, error) {
	for priority, str := range getValidPriorityStrings() {
		if str == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", s))
}

// Validate checks if the Priority value is valid.
//
// Valid priorities are: Low, Medium, High.
func (p Priority) Validate() error {
	if _, ok := getValidPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the wire name of the priority.
// Returns "UNKNOWN" for invalid priority values.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}
