package queries

import (
	"context"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDeliveryQueryHandler retrieves a single delivery from the database.
//
// Example:
//
//	handler := NewGetDeliveryQueryHandler(db)
//	query, _ := NewGetDeliveryQuery(deliveryID)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Delivery %s is %s\n", resp.ID, resp.Status)
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single-delivery lookups.
// Requires a GORM database connection for query execution.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the query and returns the matching delivery.
// Returns an ObjectNotFoundError when no delivery has the given id.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context, query GetDeliveryQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryResponse{}, err
		}
		return DeliveryResponse{}, errs.NewObjectNotFoundError("deliveryId", query.DeliveryID())
	}

	resp, err := scanDeliveryRow(rows)
	if err != nil {
		return DeliveryResponse{}, err
	}

	if err = rows.Err(); err != nil {
		return DeliveryResponse{}, err
	}

	return resp, nil
}
