package delivery

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// The intended progression is:
//
//	Pending ──> Assigned ──> InTransit ──> Delivered
//	    │           │            │
//	    └───────────┴────────────┴──> Cancelled
//
// The lifecycle engine deliberately does not enforce this order: any valid
// target status is accepted from any current status, matching the observed
// behavior of the system this one replaces. Status validates values, not
// transitions.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status: created, no driver assigned.
	Pending

	// Assigned indicates a driver has picked up responsibility for the delivery.
	Assigned

	// InTransit indicates the shipment is on its way to the drop address.
	InTransit

	// Delivered indicates the shipment reached its destination.
	// Actual distance and cost may be recorded at this point.
	Delivered

	// Cancelled indicates the delivery was called off.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Pending:       "PENDING",
		Assigned:      "ASSIGNED",
		InTransit:     "IN_TRANSIT",
		Delivered:     "DELIVERED",
		Cancelled:     "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Assigned:  "ASSIGNED",
		InTransit: "IN_TRANSIT",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses a status from its wire name.
// Accepts "PENDING", "ASSIGNED", "IN_TRANSIT", "DELIVERED", and "CANCELLED".
// Returns an error for any other input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Assigned, InTransit, Delivered, Cancelled.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
// Returns "UNKNOWN" for invalid status values. Implements fmt.Stringer
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
