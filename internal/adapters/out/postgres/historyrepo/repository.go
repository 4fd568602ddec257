package historyrepo

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormStatusChangeRepository implements StatusChangeRepository using GORM.
type GormStatusChangeRepository struct {
	db *gorm.DB
}

// NewGormStatusChangeRepository creates a new GORM status history repository.
func NewGormStatusChangeRepository(db *gorm.DB) *GormStatusChangeRepository {
	return &GormStatusChangeRepository{db: db}
}

// Add appends a new status change entry to the history.
func (r *GormStatusChangeRepository) Add(ctx context.Context, entry *delivery.StatusChange) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForDelivery retrieves the full history of a delivery,
// most recent change first.
func (r *GormStatusChangeRepository) GetAllForDelivery(
	ctx context.Context, deliveryID kernel.UUID,
) ([]*delivery.StatusChange, error) {
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusChangeDTO
	err := r.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID.Bytes()).
		Order("changed_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	history := make([]*delivery.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := toDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return history, nil
}
