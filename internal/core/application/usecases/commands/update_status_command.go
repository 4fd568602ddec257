package commands

import (
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateStatusCommandIsNotConstructed = errors.New(
	"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
)

// UpdateStatusCommand represents a request to move a delivery to a new
// lifecycle status. Optionally carries the actual distance and cost, which
// are only recorded when the new status is Delivered; for any other target
// status they are ignored.
//
// Example:
//
//	km := decimal.NewFromInt(120)
//	cost := decimal.RequireFromString("140.00")
//	cmd, err := NewUpdateStatusCommand(deliveryID, delivery.Delivered, &km, &cost, actorID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewUpdateStatusCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID       kernel.UUID
	newStatus        delivery.Status
	actualDistanceKm *decimal.Decimal
	actualCost       *decimal.Decimal
	changedByID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand creates a command to change a delivery's status.
// Validates that the ids are valid and the target status is known.
// The actuals are optional and may be nil.
// Returns an error if any validation fails.
func NewUpdateStatusCommand(
	deliveryID kernel.UUID,
	newStatus delivery.Status,
	actualDistanceKm *decimal.Decimal,
	actualCost *decimal.Decimal,
	changedByID kernel.UUID,
) (UpdateStatusCommand, error) {
	updateCommand := UpdateStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setDeliveryID(deliveryID),
		updateCommand.setNewStatus(newStatus),
		updateCommand.setChangedByID(changedByID),
	); err != nil {
		return UpdateStatusCommand{}, err
	}

	updateCommand.actualDistanceKm = actualDistanceKm
	updateCommand.actualCost = actualCost
	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateStatusCommandIsNotConstructed if validation fails.
func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery being updated.
func (c UpdateStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// NewStatus returns the target lifecycle status.
func (c UpdateStatusCommand) NewStatus() delivery.Status {
	return c.newStatus
}

// ActualDistanceKm returns the optional actual distance travelled, or nil.
func (c UpdateStatusCommand) ActualDistanceKm() *decimal.Decimal {
	return c.actualDistanceKm
}

// ActualCost returns the optional actual delivery cost, or nil.
func (c UpdateStatusCommand) ActualCost() *decimal.Decimal {
	return c.actualCost
}

// ChangedByID returns the identifier of the user recording the change.
func (c UpdateStatusCommand) ChangedByID() kernel.UUID {
	return c.changedByID
}

func (c *UpdateStatusCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *UpdateStatusCommand) setNewStatus(newStatus delivery.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}

func (c *UpdateStatusCommand) setChangedByID(changedByID kernel.UUID) error {
	if err := changedByID.Validate(); err != nil {
		return err
	}

	c.changedByID = changedByID
	return nil
}
