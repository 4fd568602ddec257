package commands

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// AssignDriverCommandHandler orchestrates driver assignment.
// Enforces that only admins assign drivers, verifies the candidate user
// actually carries the Driver role, and binds the driver to the delivery.
// Assignment does not change the delivery's status.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrActionNotAllowed):
//	    // actor was not an admin
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // delivery or driver does not exist
//	case errors.Is(err, errs.ErrInvalidRole):
//	    // the candidate user is not a driver
//	}
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment operations.
// Requires a UoWFactory for coordinating delivery and user repositories.
func NewAssignDriverCommandHandler(uowFactory UoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver assignment command.
// Checks the access policy, loads the delivery and the candidate user,
// delegates the role check and binding to the DriverAssigner, and persists
// the updated delivery. Returns the updated delivery on success.
func (h AssignDriverCommandHandler) Handle(
	ctx context.Context, cmd AssignDriverCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actorRole := cmd.Actor().Role()
	if !services.NewAccessPolicy().CanPerform(actorRole, services.ActionAssignDriver) {
		return nil, errs.NewActionNotAllowedError(
			services.ActionAssignDriver.String(), actorRole.String(),
		)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	userRepo := uow.UserRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	candidate, err := userRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = services.NewDriverAssigner().Assign(aggregate, candidate); err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
