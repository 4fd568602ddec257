package delivery

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory methods.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")

// Delivery is the aggregate root tracking one shipment from creation to
// completion. It owns the shipment's status and records every change to it
// through a StatusChange audit entity appended by the lifecycle engine.
//
// Delivery follows these invariants:
//   - Must have a valid unique identifier and owning business user, both
//     immutable after creation
//   - Pickup address, drop address, customer name, and customer phone are
//     required non-blank strings
//   - Weight must be positive; monetary amounts use exact decimal arithmetic
//   - The estimated cost is computed once at creation and never recomputed
//   - Actual distance and cost may only be recorded once the delivery reaches
//     Delivered status
//   - A driver, once assigned, may be replaced but never by a non-driver
//     (the role gate lives in the DriverAssigner domain service)
//   - Can only be created through NewDelivery or RestoreDelivery
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// businessUserID identifies the creator and owner, set once at creation
	businessUserID kernel.UUID

	// driverID is the assigned driver's ID (nil if unassigned)
	driverID *kernel.UUID

	// pickupAddress is where the shipment is collected
	pickupAddress string

	// dropAddress is where the shipment is delivered
	dropAddress string

	// customerName identifies the receiving customer
	customerName string

	// customerPhone is the receiving customer's contact number
	customerPhone string

	// weight is the shipment weight, the main pricing input
	weight decimal.Decimal

	// priority is the delivery urgency, the secondary pricing input
	priority Priority

	// notes carries optional free-text instructions
	notes string

	// status represents the current state in the delivery lifecycle
	status Status

	// estimatedDistance is unset until an estimation source exists
	estimatedDistance *decimal.Decimal

	// estimatedCost is computed at creation and never recomputed
	estimatedCost *decimal.Decimal

	// actualDistance is recorded when the delivery completes, if supplied
	actualDistance *decimal.Decimal

	// actualCost is recorded when the delivery completes, if supplied
	actualCost *decimal.Decimal

	// createdAt is stamped once by storage on first save
	createdAt time.Time

	// updatedAt is refreshed by storage on every save
	updatedAt time.Time

	// isConstructed ensures the delivery was created via a constructor
	isConstructed bool
}

// NewDelivery creates a new Delivery with validation. The delivery starts in
// Pending status with no driver. The estimated cost must already be computed
// by the CostEstimator domain service; estimated distance stays unset because
// no distance estimation source exists.
func NewDelivery(
	id kernel.UUID,
	businessUserID kernel.UUID,
	pickupAddress string,
	dropAddress string,
	customerName string,
	customerPhone string,
	weight decimal.Decimal,
	priority Priority,
	notes string,
	estimatedCost decimal.Decimal,
) (*Delivery, error) {
	d := &Delivery{
		status:        Pending,
		notes:         notes,
		estimatedCost: &estimatedCost,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setBusinessUserID(businessUserID),
		d.setRequiredString(&d.pickupAddress, pickupAddress, "pickupAddress"),
		d.setRequiredString(&d.dropAddress, dropAddress, "dropAddress"),
		d.setRequiredString(&d.customerName, customerName, "customerName"),
		d.setRequiredString(&d.customerPhone, customerPhone, "customerPhone"),
		d.setWeight(weight),
		d.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence, including fields
// that only exist after creation: the assigned driver, the current status,
// recorded actuals, and storage timestamps.
func RestoreDelivery(
	id kernel.UUID,
	businessUserID kernel.UUID,
	driverID *kernel.UUID,
	pickupAddress string,
	dropAddress string,
	customerName string,
	customerPhone string,
	weight decimal.Decimal,
	priority Priority,
	notes string,
	status Status,
	estimatedDistance *decimal.Decimal,
	estimatedCost *decimal.Decimal,
	actualDistance *decimal.Decimal,
	actualCost *decimal.Decimal,
	createdAt time.Time,
	updatedAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		notes:             notes,
		estimatedDistance: estimatedDistance,
		estimatedCost:     estimatedCost,
		actualDistance:    actualDistance,
		actualCost:        actualCost,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setBusinessUserID(businessUserID),
		d.setRequiredString(&d.pickupAddress, pickupAddress, "pickupAddress"),
		d.setRequiredString(&d.dropAddress, dropAddress, "dropAddress"),
		d.setRequiredString(&d.customerName, customerName, "customerName"),
		d.setRequiredString(&d.customerPhone, customerPhone, "customerPhone"),
		d.setWeight(weight),
		d.setPriority(priority),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := d.AssignDriver(*driverID); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
// Returns ErrDeliveryIsNotConstructed for zero-value instances.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// BusinessUserID returns the owning business user's identifier.
func (d *Delivery) BusinessUserID() kernel.UUID {
	return d.businessUserID
}

// DriverID returns the assigned driver's identifier.
// Returns nil if no driver is assigned.
func (d *Delivery) DriverID() *kernel.UUID {
	return d.driverID
}

// PickupAddress returns the collection address.
func (d *Delivery) PickupAddress() string {
	return d.pickupAddress
}

// DropAddress returns the destination address.
func (d *Delivery) DropAddress() string {
	return d.dropAddress
}

// CustomerName returns the receiving customer's name.
func (d *Delivery) CustomerName() string {
	return d.customerName
}

// CustomerPhone returns the receiving customer's phone number.
func (d *Delivery) CustomerPhone() string {
	return d.customerPhone
}

// Weight returns the shipment weight.
func (d *Delivery) Weight() decimal.Decimal {
	return d.weight
}

// Priority returns the delivery urgency.
func (d *Delivery) Priority() Priority {
	return d.priority
}

// Notes returns the optional free-text instructions.
func (d *Delivery) Notes() string {
	return d.notes
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// EstimatedDistance returns the estimated distance, or nil when unknown.
func (d *Delivery) EstimatedDistance() *decimal.Decimal {
	return d.estimatedDistance
}

// EstimatedCost returns the cost computed at creation, or nil for
// deliveries restored from storage rows that predate estimation.
func (d *Delivery) EstimatedCost() *decimal.Decimal {
	return d.estimatedCost
}

// ActualDistance returns the recorded actual distance, or nil when unset.
func (d *Delivery) ActualDistance() *decimal.Decimal {
	return d.actualDistance
}

// ActualCost returns the recorded actual cost, or nil when unset.
func (d *Delivery) ActualCost() *decimal.Decimal {
	return d.actualCost
}

// CreatedAt returns the storage-stamped creation time.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the storage-stamped time of the last save.
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// AssignDriver binds a driver to the delivery.
//
// Assignment is an idempotent overwrite: re-assigning replaces the previous
// driver without any trace beyond the audit entries written by status
// updates. The status is deliberately left untouched; moving to Assigned is
// a separate, explicit status update. Role and existence checks on the
// candidate are the DriverAssigner service's responsibility, since the
// aggregate only ever sees an identifier.
func (d *Delivery) AssignDriver(driverID kernel.UUID) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := driverID.Validate(); err != nil {
		return err
	}

	d.driverID = &driverID
	return nil
}

// ChangeStatus sets the delivery's status and returns the status it replaced.
//
// Any valid target status is accepted from any current status; the engine
// does not enforce the linear Pending -> Assigned -> InTransit -> Delivered
// order or terminal states. Callers pair every successful change with a
// StatusChange audit entry.
func (d *Delivery) ChangeStatus(newStatus Status) (Status, error) {
	if err := d.Validate(); err != nil {
		return StatusUnknown, err
	}
	if err := newStatus.Validate(); err != nil {
		return StatusUnknown, err
	}

	oldStatus := d.status
	d.status = newStatus
	return oldStatus, nil
}

// RecordActuals stores the measured distance and cost of a completed
// delivery. Only allowed once the delivery is in Delivered status.
// Nil values are silently ignored: callers that do not know an actual
// simply leave it unset.
func (d *Delivery) RecordActuals(actualDistance *decimal.Decimal, actualCost *decimal.Decimal) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.status != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errors.New("actuals can only be recorded on a delivered delivery"))
	}

	if actualDistance != nil {
		d.actualDistance = actualDistance
	}
	if actualCost != nil {
		d.actualCost = actualCost
	}
	return nil
}

// SyncTimestamps refreshes the storage-stamped times on the in-memory
// aggregate after a save. Called by storage adapters only.
func (d *Delivery) SyncTimestamps(createdAt time.Time, updatedAt time.Time) {
	d.createdAt = createdAt
	d.updatedAt = updatedAt
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setBusinessUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("businessUserId", err)
	}
	d.businessUserID = id
	return nil
}

func (d *Delivery) setRequiredString(field *string, value string, paramName string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*field = value
	return nil
}

func (d *Delivery) setWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			errors.New(weight.String()+" is not greater than 0"))
	}
	d.weight = weight
	return nil
}

func (d *Delivery) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	d.priority = priority
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
