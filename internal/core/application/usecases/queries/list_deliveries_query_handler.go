package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/delivery"

	"gorm.io/gorm"
)

// ListDeliveriesQueryHandler retrieves role-scoped delivery listings from
// the database. Each role gets a different slice of the deliveries table;
// an actor whose role matches nothing receives an empty listing rather
// than an error.
//
// Example:
//
//	handler := NewListDeliveriesQueryHandler(db)
//	query, _ := NewListDeliveriesQuery(actor)
//
//	deliveries, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d deliveries visible\n", len(deliveries))
type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewListDeliveriesQueryHandler creates a handler for delivery listings.
// Requires a GORM database connection for query execution.
func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

// Handle executes the listing query for the actor's role.
// Results are sorted by creation time, newest first.
func (h ListDeliveriesQueryHandler) Handle(
	ctx context.Context, query ListDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]DeliveryResponse, 0)

	rows, err := h.queryForRole(ctx, query.Actor())
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return deliveries, nil
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanDeliveryRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

// queryForRole runs the role-appropriate SELECT. Returns nil rows for roles
// with no visible deliveries.
func (h ListDeliveriesQueryHandler) queryForRole(
	ctx context.Context, actor account.Actor,
) (*sql.Rows, error) {
	db := h.db.WithContext(ctx)

	switch actor.Role() {
	case account.Admin:
		return db.Raw(`
			SELECT `+deliveryColumns+`
			FROM deliveries
			WHERE status = ? AND driver_id IS NULL
			ORDER BY created_at DESC
		`, int(delivery.Pending)).Rows()
	case account.BusinessUser:
		return db.Raw(`
			SELECT `+deliveryColumns+`
			FROM deliveries
			WHERE business_user_id = ?
			ORDER BY created_at DESC
		`, actor.ID().Bytes()).Rows()
	case account.Driver:
		return db.Raw(`
			SELECT `+deliveryColumns+`
			FROM deliveries
			WHERE driver_id = ?
			ORDER BY created_at DESC
		`, actor.ID().Bytes()).Rows()
	default:
		return nil, nil
	}
}
