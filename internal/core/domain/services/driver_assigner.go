package services

import (
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/pkg/errs"
)

// DriverAssigner is the domain service that binds a driver to a delivery.
//
// Business rules:
//   - The candidate must carry the Driver role; any other role fails with
//     an InvalidRoleError and leaves the delivery untouched
//   - Assignment is an idempotent overwrite: a later assignment replaces
//     the previous driver
//   - Availability, capacity, and workload are deliberately not checked
//   - The delivery's status is not changed by assignment
//
// Example usage:
//
//	assigner := services.NewDriverAssigner()
//	if err := assigner.Assign(dlv, candidate); err != nil {
//	    // candidate was not a driver, or the delivery was invalid
//	    return err
//	}
type DriverAssigner struct{}

// NewDriverAssigner creates a new DriverAssigner instance.
func NewDriverAssigner() DriverAssigner {
	return DriverAssigner{}
}

// Assign binds the candidate user to the delivery as its driver.
// Fails with an InvalidRoleError if the candidate's role is not Driver.
func (DriverAssigner) Assign(dlv *delivery.Delivery, candidate *account.User) error {
	if err := dlv.Validate(); err != nil {
		return err
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	if candidate.Role() != account.Driver {
		return errs.NewInvalidRoleError("driverId", candidate.Role().String())
	}

	return dlv.AssignDriver(candidate.ID())
}
