package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetStatusHistoryQueryIsNotConstructed = errors.New(
	"GetStatusHistoryQuery must be created via NewGetStatusHistoryQuery constructor",
)

// GetStatusHistoryQuery retrieves the append-only status history of a
// delivery, most recent change first.
//
// Example:
//
//	query, err := NewGetStatusHistoryQuery(deliveryID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetStatusHistoryQueryHandler(db)
//	history, err := handler.Handle(ctx, query)
//	for _, entry := range history {
//	    fmt.Printf("%s -> %s at %s\n", entry.OldStatus, entry.NewStatus, entry.ChangedAt)
//	}
type GetStatusHistoryQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatusHistoryQuery creates a query for a delivery's status history.
// Validates that the delivery id is a properly constructed UUID.
func NewGetStatusHistoryQuery(deliveryID kernel.UUID) (GetStatusHistoryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetStatusHistoryQuery{}, err
	}

	return GetStatusHistoryQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStatusHistoryQueryIsNotConstructed if validation fails.
func (q GetStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusHistoryQueryIsNotConstructed)
}

// DeliveryID returns the identifier of the delivery whose history to fetch.
func (q GetStatusHistoryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// StatusChangeResponse represents one entry of a delivery's status history.
type StatusChangeResponse struct {
	ID          kernel.UUID
	DeliveryID  kernel.UUID
	OldStatus   delivery.Status
	NewStatus   delivery.Status
	ChangedByID kernel.UUID
	ChangedAt   time.Time
}
