package commands

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to bind a driver to a delivery.
// Carries the acting user so the handler can enforce the admin-only rule.
//
// Example:
//
//	actor, _ := account.NewActor(adminID, account.Admin)
//	cmd, err := NewAssignDriverCommand(deliveryID, driverID, actor)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	driverID   kernel.UUID
	actor      account.Actor

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to a delivery.
// Validates that both ids and the actor are valid.
// Returns an error if any validation fails.
func NewAssignDriverCommand(
	deliveryID kernel.UUID, driverID kernel.UUID, actor account.Actor,
) (AssignDriverCommand, error) {
	assignCommand := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setDeliveryID(deliveryID),
		assignCommand.setDriverID(driverID),
		assignCommand.setActor(actor),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDriverCommandIsNotConstructed if validation fails.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery receiving the driver.
func (c AssignDriverCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// DriverID returns the identifier of the candidate driver.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Actor returns the authenticated user performing the assignment.
func (c AssignDriverCommand) Actor() account.Actor {
	return c.actor
}

func (c *AssignDriverCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AssignDriverCommand) setActor(actor account.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
