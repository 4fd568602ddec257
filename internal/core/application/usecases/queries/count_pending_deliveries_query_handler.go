package queries

import (
	"context"

	"logistics/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// CountPendingDeliveriesQueryHandler counts the dispatch backlog: pending
// deliveries that no driver has been assigned to yet.
type CountPendingDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewCountPendingDeliveriesQueryHandler creates a handler for backlog counts.
// Requires a GORM database connection for query execution.
func NewCountPendingDeliveriesQueryHandler(db *gorm.DB) CountPendingDeliveriesQueryHandler {
	return CountPendingDeliveriesQueryHandler{db: db}
}

// Handle executes the count query and returns the backlog size.
func (h CountPendingDeliveriesQueryHandler) Handle(
	ctx context.Context, query CountPendingDeliveriesQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM deliveries
		WHERE status = ? AND driver_id IS NULL
	`, int(delivery.Pending)).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
