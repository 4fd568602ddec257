package queries

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStatusHistoryQueryHandler retrieves a delivery's status history from
// the database. A delivery that has never had a status update yields an
// empty history, not an error.
//
// Example:
//
//	handler := NewGetStatusHistoryQueryHandler(db)
//	query, _ := NewGetStatusHistoryQuery(deliveryID)
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type GetStatusHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusHistoryQueryHandler creates a handler for status history queries.
// Requires a GORM database connection for query execution.
func NewGetStatusHistoryQueryHandler(db *gorm.DB) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{db: db}
}

// Handle executes the history query for the given delivery.
// Entries are sorted by change time, most recent first.
func (h GetStatusHistoryQueryHandler) Handle(
	ctx context.Context, query GetStatusHistoryQuery,
) ([]StatusChangeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]StatusChangeResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			delivery_id,
			old_status,
			new_status,
			changed_by_id,
			changed_at
		FROM delivery_status_history
		WHERE delivery_id = ?
		ORDER BY changed_at DESC
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry       StatusChangeResponse
			id          uuid.UUID
			deliveryID  uuid.UUID
			changedByID uuid.UUID
			oldStatus   int
			newStatus   int
		)

		err = rows.Scan(&id, &deliveryID, &oldStatus, &newStatus, &changedByID, &entry.ChangedAt)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.DeliveryID, err = kernel.UUIDFromBytes(deliveryID[:]); err != nil {
			return nil, err
		}
		if entry.ChangedByID, err = kernel.UUIDFromBytes(changedByID[:]); err != nil {
			return nil, err
		}

		entry.OldStatus = delivery.Status(oldStatus)
		entry.NewStatus = delivery.Status(newStatus)
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
