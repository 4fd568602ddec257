// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. This package implements the repository pattern
// for the delivery aggregate, handling the conversion between domain
// entities and database representations.
package deliveryrepo

import (
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Indexed for the three listing shapes: by owner, by driver,
// and by status for the dispatch backlog.
type DeliveryDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BusinessUserID      uuid.UUID  `gorm:"type:uuid;index"`
	DriverID            *uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress       string
	DropAddress         string
	CustomerName        string
	CustomerPhone       string
	Weight              decimal.Decimal `gorm:"type:numeric(12,3)"`
	Priority            int
	Notes               string
	Status              int              `gorm:"index"`
	EstimatedDistanceKm *decimal.Decimal `gorm:"type:numeric(12,2)"`
	EstimatedCost       *decimal.Decimal `gorm:"type:numeric(12,2)"`
	ActualDistanceKm    *decimal.Decimal `gorm:"type:numeric(12,2)"`
	ActualCost          *decimal.Decimal `gorm:"type:numeric(12,2)"`
	CreatedAt           time.Time        `gorm:"autoCreateTime"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for delivery aggregates.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
// Maps all delivery attributes including the optional driver assignment and
// the nullable money and distance columns.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return DeliveryDTO{
		ID:                  aggregate.ID().Bytes(),
		BusinessUserID:      aggregate.BusinessUserID().Bytes(),
		DriverID:            driverID,
		PickupAddress:       aggregate.PickupAddress(),
		DropAddress:         aggregate.DropAddress(),
		CustomerName:        aggregate.CustomerName(),
		CustomerPhone:       aggregate.CustomerPhone(),
		Weight:              aggregate.Weight(),
		Priority:            int(aggregate.Priority()),
		Notes:               aggregate.Notes(),
		Status:              int(aggregate.Status()),
		EstimatedDistanceKm: aggregate.EstimatedDistance(),
		EstimatedCost:       aggregate.EstimatedCost(),
		ActualDistanceKm:    aggregate.ActualDistance(),
		ActualCost:          aggregate.ActualCost(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate including driver assignment, status,
// and recorded actuals using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	businessUserID, err := kernel.UUIDFromBytes(dto.BusinessUserID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	return delivery.RestoreDelivery(
		id,
		businessUserID,
		driverID,
		dto.PickupAddress,
		dto.DropAddress,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.Weight,
		delivery.Priority(dto.Priority),
		dto.Notes,
		delivery.Status(dto.Status),
		dto.EstimatedDistanceKm,
		dto.EstimatedCost,
		dto.ActualDistanceKm,
		dto.ActualCost,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
