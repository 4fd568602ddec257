// Package historyrepo provides data transfer objects and mapping functions
// for the append-only delivery status history. Entries are written once and
// never updated or deleted.
package historyrepo

import (
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// StatusChangeDTO represents the database structure for persisting status
// history entries. Indexed by delivery and change time for the history view.
type StatusChangeDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID `gorm:"type:uuid;index"`
	OldStatus   int
	NewStatus   int
	ChangedByID uuid.UUID `gorm:"type:uuid"`
	ChangedAt   time.Time `gorm:"index"`
}

// TableName specifies the database table name for status history entries.
func (StatusChangeDTO) TableName() string {
	return "delivery_status_history"
}

// fromDomain converts a status change entity to its database representation.
func fromDomain(entry *delivery.StatusChange) StatusChangeDTO {
	return StatusChangeDTO{
		ID:          entry.ID().Bytes(),
		DeliveryID:  entry.DeliveryID().Bytes(),
		OldStatus:   int(entry.OldStatus()),
		NewStatus:   int(entry.NewStatus()),
		ChangedByID: entry.ChangedByID().Bytes(),
		ChangedAt:   entry.ChangedAt(),
	}
}

// toDomain converts a database DTO to a status change entity using
// RestoreStatusChange, keeping the recorded change time.
func toDomain(dto StatusChangeDTO) (*delivery.StatusChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	changedByID, err := kernel.UUIDFromBytes(dto.ChangedByID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreStatusChange(
		id,
		deliveryID,
		delivery.Status(dto.OldStatus),
		delivery.Status(dto.NewStatus),
		changedByID,
		dto.ChangedAt,
	)
}
