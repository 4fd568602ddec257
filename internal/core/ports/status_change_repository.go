package ports

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
)

// StatusChangeRepository defines the persistence contract for the
// append-only status history of deliveries. Entries are never updated
// or removed once written.
type StatusChangeRepository interface {
	// Add appends a new status change entry to the history.
	Add(ctx context.Context, entry *delivery.StatusChange) error

	// GetAllForDelivery retrieves the full history of a delivery,
	// most recent change first.
	GetAllForDelivery(ctx context.Context, deliveryID kernel.UUID) ([]*delivery.StatusChange, error)
}
