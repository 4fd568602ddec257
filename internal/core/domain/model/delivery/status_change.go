package delivery

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
)

// ErrStatusChangeIsNotConstructed is returned when a StatusChange instance
// was not created through the NewStatusChange or RestoreStatusChange factory
// methods.
var ErrStatusChangeIsNotConstructed = errors.New(
	"StatusChange must be created via NewStatusChange or RestoreStatusChange constructor",
)

// StatusChange is an immutable audit record of one status transition.
// Exactly one entry is created per successful status update; entries are
// never modified or deleted afterwards. Ordered by their timestamp
// descending, the entries for a delivery form its audit trail.
//
// Creation itself writes no entry: a freshly created delivery has status
// Pending and an empty trail, so every recorded entry carries both an old
// and a new status.
type StatusChange struct {
	// id is the unique identifier for the audit entry
	id kernel.UUID

	// deliveryID references the delivery the transition belongs to
	deliveryID kernel.UUID

	// oldStatus is the status the delivery held before the change
	oldStatus Status

	// newStatus is the status the delivery holds after the change
	newStatus Status

	// changedByID identifies the actor who performed the change
	changedByID kernel.UUID

	// changedAt is set once at creation and never modified
	changedAt time.Time

	// isConstructed ensures the entry was created via a constructor
	isConstructed bool
}

// NewStatusChange creates an audit entry for one status transition.
// The timestamp is taken at construction and never changes.
func NewStatusChange(
	id kernel.UUID,
	deliveryID kernel.UUID,
	oldStatus Status,
	newStatus Status,
	changedByID kernel.UUID,
) (*StatusChange, error) {
	return newStatusChange(id, deliveryID, oldStatus, newStatus, changedByID, time.Now().UTC())
}

// RestoreStatusChange reconstructs an audit entry from persistence,
// keeping the originally recorded timestamp.
func RestoreStatusChange(
	id kernel.UUID,
	deliveryID kernel.UUID,
	oldStatus Status,
	newStatus Status,
	changedByID kernel.UUID,
	changedAt time.Time,
) (*StatusChange, error) {
	return newStatusChange(id, deliveryID, oldStatus, newStatus, changedByID, changedAt)
}

func newStatusChange(
	id kernel.UUID,
	deliveryID kernel.UUID,
	oldStatus Status,
	newStatus Status,
	changedByID kernel.UUID,
	changedAt time.Time,
) (*StatusChange, error) {
	sc := &StatusChange{
		changedAt:     changedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		sc.setID(id),
		sc.setDeliveryID(deliveryID),
		sc.setOldStatus(oldStatus),
		sc.setNewStatus(newStatus),
		sc.setChangedByID(changedByID),
	); err != nil {
		return nil, err
	}

	return sc, nil
}

// Validate ensures the StatusChange instance was properly constructed.
// Returns ErrStatusChangeIsNotConstructed for zero-value instances.
func (sc *StatusChange) Validate() error {
	if sc == nil || !sc.isConstructed {
		return ErrStatusChangeIsNotConstructed
	}

	return nil
}

// ID returns the audit entry's unique identifier.
func (sc *StatusChange) ID() kernel.UUID {
	return sc.id
}

// DeliveryID returns the identifier of the delivery the entry belongs to.
func (sc *StatusChange) DeliveryID() kernel.UUID {
	return sc.deliveryID
}

// OldStatus returns the status the delivery held before the change.
func (sc *StatusChange) OldStatus() Status {
	return sc.oldStatus
}

// NewStatus returns the status the delivery holds after the change.
func (sc *StatusChange) NewStatus() Status {
	return sc.newStatus
}

// ChangedByID returns the identifier of the actor who performed the change.
func (sc *StatusChange) ChangedByID() kernel.UUID {
	return sc.changedByID
}

// ChangedAt returns the time the transition was recorded.
func (sc *StatusChange) ChangedAt() time.Time {
	return sc.changedAt
}

func (sc *StatusChange) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	sc.id = id
	return nil
}

func (sc *StatusChange) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	sc.deliveryID = id
	return nil
}

func (sc *StatusChange) setOldStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	sc.oldStatus = status
	return nil
}

func (sc *StatusChange) setNewStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	sc.newStatus = status
	return nil
}

func (sc *StatusChange) setChangedByID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	sc.changedByID = id
	return nil
}
