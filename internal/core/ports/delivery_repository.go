package ports

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery
// aggregates. Provides methods for storing, retrieving, and querying
// deliveries based on ownership, driver assignment, and status.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The delivery must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such delivery exists.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAllByOwner retrieves all deliveries created by the given business user.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*delivery.Delivery, error)

	// GetAllByDriver retrieves all deliveries currently assigned to the given driver.
	GetAllByDriver(ctx context.Context, driverID kernel.UUID) ([]*delivery.Delivery, error)

	// GetAllPendingUnassigned retrieves all deliveries that are pending and
	// have no driver yet. Used for the admin backlog view.
	GetAllPendingUnassigned(ctx context.Context) ([]*delivery.Delivery, error)
}
