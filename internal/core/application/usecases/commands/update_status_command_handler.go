package commands

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
)

// UpdateStatusCommandHandler handles delivery status transitions.
// Moves the delivery to the requested status, records actuals when the
// delivery completes, and appends an entry to the append-only status
// history. The delivery update and the history append happen in one
// transaction so the history never disagrees with the delivery.
//
// Any valid target status is accepted from any current status; the engine
// does not enforce forward-only transitions.
//
// Example:
//
//	handler := NewUpdateStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateStatusCommand(deliveryID, delivery.InTransit, nil, nil, driverID)
//	updated, err := handler.Handle(ctx, cmd)
type UpdateStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateStatusCommandHandler creates a handler for status update operations.
// Requires a UoWFactory coordinating the delivery and history repositories.
func NewUpdateStatusCommandHandler(uowFactory UoWFactory) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
// Loads the delivery, applies the transition, records actuals if the new
// status is Delivered, and appends one history entry capturing the old and
// new statuses. Returns the updated delivery on success.
func (h UpdateStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateStatusCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	historyRepo := uow.StatusChangeRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	oldStatus, err := aggregate.ChangeStatus(cmd.NewStatus())
	if err != nil {
		return nil, err
	}

	if cmd.NewStatus() == delivery.Delivered {
		if err = aggregate.RecordActuals(cmd.ActualDistanceKm(), cmd.ActualCost()); err != nil {
			return nil, err
		}
	}

	entry, err := delivery.NewStatusChange(
		kernel.NewUUID(), aggregate.ID(), oldStatus, cmd.NewStatus(), cmd.ChangedByID(),
	)
	if err != nil {
		return nil, err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = historyRepo.Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
