package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)

	// Field errors unwrap to the errs validation kinds so transports can
	// classify them with errors.Is.
	ErrPickupAddressIsRequired = errs.NewValueIsRequiredError("pickupAddress")
	ErrDropAddressIsRequired   = errs.NewValueIsRequiredError("dropAddress")
	ErrCustomerNameIsRequired  = errs.NewValueIsRequiredError("customerName")
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("customerPhone")
	ErrWeightIsInvalid         = errs.NewValueIsInvalidErrorWithCause(
		"weight", errors.New("must be greater than 0"),
	)
)

// CreateDeliveryCommand represents a request to register a new delivery.
// Encapsulates the route, customer contact details, and package properties
// needed to price and create the delivery.
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	cmd, err := NewCreateDeliveryCommand(
//	    deliveryID, ownerID,
//	    "1 Warehouse Way", "2 Customer Close",
//	    "Casey Customer", "+1-555-0100",
//	    decimal.NewFromInt(5), delivery.High, "fragile",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID     kernel.UUID
	businessUserID kernel.UUID
	pickupAddress  string
	dropAddress    string
	customerName   string
	customerPhone  string
	weight         decimal.Decimal
	priority       delivery.Priority
	notes          string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
// Validates that the ids are valid, the addresses and customer contact
// fields are not blank, the weight is positive, and the priority is known.
// Notes are optional. Returns an error if any validation fails.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	businessUserID kernel.UUID,
	pickupAddress string,
	dropAddress string,
	customerName string,
	customerPhone string,
	weight decimal.Decimal,
	priority delivery.Priority,
	notes string,
) (CreateDeliveryCommand, error) {
	createCommand := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setDeliveryID(deliveryID),
		createCommand.setBusinessUserID(businessUserID),
		createCommand.setPickupAddress(pickupAddress),
		createCommand.setDropAddress(dropAddress),
		createCommand.setCustomerName(customerName),
		createCommand.setCustomerPhone(customerPhone),
		createCommand.setWeight(weight),
		createCommand.setPriority(priority),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	createCommand.notes = notes
	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// BusinessUserID returns the identifier of the business user creating the delivery.
func (c CreateDeliveryCommand) BusinessUserID() kernel.UUID {
	return c.businessUserID
}

// PickupAddress returns the collection address.
func (c CreateDeliveryCommand) PickupAddress() string {
	return c.pickupAddress
}

// DropAddress returns the destination address.
func (c CreateDeliveryCommand) DropAddress() string {
	return c.dropAddress
}

// CustomerName returns the recipient's name.
func (c CreateDeliveryCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the recipient's phone number.
func (c CreateDeliveryCommand) CustomerPhone() string {
	return c.customerPhone
}

// Weight returns the package weight.
func (c CreateDeliveryCommand) Weight() decimal.Decimal {
	return c.weight
}

// Priority returns the delivery priority.
func (c CreateDeliveryCommand) Priority() delivery.Priority {
	return c.priority
}

// Notes returns the optional free-form delivery notes.
func (c CreateDeliveryCommand) Notes() string {
	return c.notes
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setBusinessUserID(businessUserID kernel.UUID) error {
	if err := businessUserID.Validate(); err != nil {
		return err
	}

	c.businessUserID = businessUserID
	return nil
}

func (c *CreateDeliveryCommand) setPickupAddress(pickupAddress string) error {
	if strings.TrimSpace(pickupAddress) == "" {
		return ErrPickupAddressIsRequired
	}

	c.pickupAddress = pickupAddress
	return nil
}

func (c *CreateDeliveryCommand) setDropAddress(dropAddress string) error {
	if strings.TrimSpace(dropAddress) == "" {
		return ErrDropAddressIsRequired
	}

	c.dropAddress = dropAddress
	return nil
}

func (c *CreateDeliveryCommand) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *CreateDeliveryCommand) setCustomerPhone(customerPhone string) error {
	if strings.TrimSpace(customerPhone) == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.customerPhone = customerPhone
	return nil
}

func (c *CreateDeliveryCommand) setWeight(weight decimal.Decimal) error {
	if !weight.IsPositive() {
		return ErrWeightIsInvalid
	}

	c.weight = weight
	return nil
}

func (c *CreateDeliveryCommand) setPriority(priority delivery.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}
