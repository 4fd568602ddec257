package account

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Role represents the authorization role of a user in the system.
// Roles form a closed set: deliveries are created by business users,
// carried out by drivers, and dispatched by admins.
type Role int

const (
	// Unknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	Unknown Role = iota

	// Admin can see the unassigned pending queue and assign drivers.
	Admin

	// BusinessUser creates deliveries and owns them.
	BusinessUser

	// Driver is eligible for assignment to deliveries.
	Driver
)

// getRoleStrings returns a map of Role values to their string representations.
// All roles are included for string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:      "UNKNOWN",
		Admin:        "ADMIN",
		BusinessUser: "BUSINESS_USER",
		Driver:       "DRIVER",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
// Only valid roles are included to support validation and parsing.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Role]string{
		Admin:        "ADMIN",
		BusinessUser: "BUSINESS_USER",
		Driver:       "DRIVER",
	}
}

// RoleFromString parses a role from its string representation.
// Accepts the exact wire names "ADMIN", "BUSINESS_USER", and "DRIVER".
// Returns an error for any other input.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
//
// Valid roles are: Admin, BusinessUser, Driver.
// Unknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role.
// Returns "UNKNOWN" for invalid role values. Implements fmt.Stringer
// and is safe to call on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
