package http

import (
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateDeliveryRequest is the JSON body for POST /api/deliveries.
// Weight accepts a JSON number or a numeric string.
type CreateDeliveryRequest struct {
	PickupAddress string          `json:"pickupAddress"`
	DropAddress   string          `json:"dropAddress"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Weight        decimal.Decimal `json:"weight"`
	Priority      string          `json:"priority"`
	Notes         string          `json:"notes"`
}

// UpdateStatusRequest is the JSON body for PUT /api/deliveries/:id/status.
// The actuals are optional and only recorded on the DELIVERED transition.
type UpdateStatusRequest struct {
	Status           string           `json:"status"`
	ActualDistanceKm *decimal.Decimal `json:"actualDistanceKm,omitempty"`
	ActualCost       *decimal.Decimal `json:"actualCost,omitempty"`
}

// Delivery is the JSON representation of a delivery returned by the API.
type Delivery struct {
	ID                  string           `json:"id"`
	BusinessUserID      string           `json:"businessUserId"`
	DriverID            *string          `json:"driverId,omitempty"`
	PickupAddress       string           `json:"pickupAddress"`
	DropAddress         string           `json:"dropAddress"`
	CustomerName        string           `json:"customerName"`
	CustomerPhone       string           `json:"customerPhone"`
	Weight              decimal.Decimal  `json:"weight"`
	Priority            string           `json:"priority"`
	Notes               string           `json:"notes,omitempty"`
	Status              string           `json:"status"`
	EstimatedDistanceKm *decimal.Decimal `json:"estimatedDistanceKm,omitempty"`
	EstimatedCost       *decimal.Decimal `json:"estimatedCost,omitempty"`
	ActualDistanceKm    *decimal.Decimal `json:"actualDistanceKm,omitempty"`
	ActualCost          *decimal.Decimal `json:"actualCost,omitempty"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

// StatusChange is the JSON representation of one status history entry.
type StatusChange struct {
	ID          string    `json:"id"`
	DeliveryID  string    `json:"deliveryId"`
	OldStatus   string    `json:"oldStatus"`
	NewStatus   string    `json:"newStatus"`
	ChangedByID string    `json:"changedById"`
	ChangedAt   time.Time `json:"changedAt"`
}

// deliveryFromAggregate maps a domain delivery onto the wire representation.
func deliveryFromAggregate(aggregate *delivery.Delivery) Delivery {
	resp := Delivery{
		ID:                  aggregate.ID().String(),
		BusinessUserID:      aggregate.BusinessUserID().String(),
		PickupAddress:       aggregate.PickupAddress(),
		DropAddress:         aggregate.DropAddress(),
		CustomerName:        aggregate.CustomerName(),
		CustomerPhone:       aggregate.CustomerPhone(),
		Weight:              aggregate.Weight(),
		Priority:            aggregate.Priority().String(),
		Notes:               aggregate.Notes(),
		Status:              aggregate.Status().String(),
		EstimatedDistanceKm: aggregate.EstimatedDistance(),
		EstimatedCost:       aggregate.EstimatedCost(),
		ActualDistanceKm:    aggregate.ActualDistance(),
		ActualCost:          aggregate.ActualCost(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}
	if aggregate.DriverID() != nil {
		driverID := aggregate.DriverID().String()
		resp.DriverID = &driverID
	}
	return resp
}

// deliveryFromResponse maps a read-model row onto the wire representation.
func deliveryFromResponse(row queries.DeliveryResponse) Delivery {
	resp := Delivery{
		ID:                  row.ID.String(),
		BusinessUserID:      row.BusinessUserID.String(),
		PickupAddress:       row.PickupAddress,
		DropAddress:         row.DropAddress,
		CustomerName:        row.CustomerName,
		CustomerPhone:       row.CustomerPhone,
		Weight:              row.Weight,
		Priority:            row.Priority.String(),
		Notes:               row.Notes,
		Status:              row.Status.String(),
		EstimatedDistanceKm: row.EstimatedDistanceKm,
		EstimatedCost:       row.EstimatedCost,
		ActualDistanceKm:    row.ActualDistanceKm,
		ActualCost:          row.ActualCost,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
	if row.DriverID != nil {
		driverID := row.DriverID.String()
		resp.DriverID = &driverID
	}
	return resp
}

// statusChangeFromResponse maps a history row onto the wire representation.
func statusChangeFromResponse(row queries.StatusChangeResponse) StatusChange {
	return StatusChange{
		ID:          row.ID.String(),
		DeliveryID:  row.DeliveryID.String(),
		OldStatus:   row.OldStatus.String(),
		NewStatus:   row.NewStatus.String(),
		ChangedByID: row.ChangedByID.String(),
		ChangedAt:   row.ChangedAt,
	}
}
