package commands

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/services"
)

// CreateDeliveryCommandHandler handles the business logic for delivery creation.
// Prices the delivery with the CostEstimator and creates it in Pending status
// with no driver assigned.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewCreateDeliveryCommand(
//	    kernel.NewUUID(), ownerID,
//	    "1 Warehouse Way", "2 Customer Close",
//	    "Casey Customer", "+1-555-0100",
//	    decimal.NewFromInt(5), delivery.High, "",
//	)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("delivery creation failed: %w", err)
//	}
//	// created.EstimatedCost() now holds the frozen estimate
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation operations.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery creation command.
// Estimates the cost from weight and priority, freezes it on the aggregate,
// and persists the new delivery. Returns the created delivery on success.
func (h CreateDeliveryCommandHandler) Handle(
	ctx context.Context, cmd CreateDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	estimatedCost := services.NewCostEstimator().Estimate(cmd.Weight(), cmd.Priority())

	newDelivery, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.BusinessUserID(),
		cmd.PickupAddress(),
		cmd.DropAddress(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.Weight(),
		cmd.Priority(),
		cmd.Notes(),
		estimatedCost,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newDelivery, nil
}
