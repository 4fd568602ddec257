// Package queries contains read-only operations against the database.
// Implements the Query side of the CQRS architecture: handlers read with raw
// SQL and map rows into lightweight response structs, bypassing the
// aggregate repositories used by commands.
package queries

import (
	"database/sql"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryResponse represents one delivery row as returned by read queries.
// Optional fields are pointers and stay nil when the column is NULL.
type DeliveryResponse struct {
	ID                  kernel.UUID
	BusinessUserID      kernel.UUID
	DriverID            *kernel.UUID
	PickupAddress       string
	DropAddress         string
	CustomerName        string
	CustomerPhone       string
	Weight              decimal.Decimal
	Priority            delivery.Priority
	Notes               string
	Status              delivery.Status
	EstimatedDistanceKm *decimal.Decimal
	EstimatedCost       *decimal.Decimal
	ActualDistanceKm    *decimal.Decimal
	ActualCost          *decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// deliveryColumns is the column list every delivery read query selects,
// in the order scanDeliveryRow expects.
const deliveryColumns = `
	id,
	business_user_id,
	driver_id,
	pickup_address,
	drop_address,
	customer_name,
	customer_phone,
	weight,
	priority,
	notes,
	status,
	estimated_distance_km,
	estimated_cost,
	actual_distance_km,
	actual_cost,
	created_at,
	updated_at
`

// scanDeliveryRow maps the current row of a deliveryColumns result set
// into a DeliveryResponse.
func scanDeliveryRow(rows *sql.Rows) (DeliveryResponse, error) {
	var (
		resp              DeliveryResponse
		id                uuid.UUID
		businessUserID    uuid.UUID
		driverID          uuid.NullUUID
		notes             sql.NullString
		priority          int
		status            int
		estimatedDistance decimal.NullDecimal
		estimatedCost     decimal.NullDecimal
		actualDistance    decimal.NullDecimal
		actualCost        decimal.NullDecimal
	)

	err := rows.Scan(
		&id,
		&businessUserID,
		&driverID,
		&resp.PickupAddress,
		&resp.DropAddress,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.Weight,
		&priority,
		&notes,
		&status,
		&estimatedDistance,
		&estimatedCost,
		&actualDistance,
		&actualCost,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return DeliveryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return DeliveryResponse{}, err
	}
	if resp.BusinessUserID, err = kernel.UUIDFromBytes(businessUserID[:]); err != nil {
		return DeliveryResponse{}, err
	}
	if driverID.Valid {
		dID, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
		if idErr != nil {
			return DeliveryResponse{}, idErr
		}
		resp.DriverID = &dID
	}

	resp.Priority = delivery.Priority(priority)
	resp.Status = delivery.Status(status)
	resp.Notes = notes.String

	if estimatedDistance.Valid {
		resp.EstimatedDistanceKm = &estimatedDistance.Decimal
	}
	if estimatedCost.Valid {
		resp.EstimatedCost = &estimatedCost.Decimal
	}
	if actualDistance.Valid {
		resp.ActualDistanceKm = &actualDistance.Decimal
	}
	if actualCost.Valid {
		resp.ActualCost = &actualCost.Decimal
	}

	return resp, nil
}
