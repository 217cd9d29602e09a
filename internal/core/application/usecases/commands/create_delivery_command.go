package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrPickupAddressIsRequired   = errors.New("pickup address is required")
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
)

// CreateDeliveryCommand represents a request to open a delivery for a placed
// order. Carries both display addresses and the coordinate pair the fee quote
// is computed from.
//
// Example:
//
//	pickup, _ := kernel.NewCoordinate(26.6602, 86.2070)
//	dropoff, _ := kernel.NewCoordinate(26.7191, 86.0951)
//	cmd, err := NewCreateDeliveryCommand(
//	    kernel.NewUUID(), orderID, customerID,
//	    "Siraha Bazaar", "Lahan Main Road", pickup, dropoff)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	orderID    kernel.UUID
	customerID kernel.UUID

	pickupAddress   string
	deliveryAddress string

	pickupLocation  kernel.Coordinate
	dropoffLocation kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to open a delivery.
// Validates identifiers, requires both addresses, and requires both
// coordinates to be constructed. Returns an error if any validation fails.
func NewCreateDeliveryCommand(
	deliveryID, orderID, customerID kernel.UUID,
	pickupAddress, deliveryAddress string,
	pickupLocation, dropoffLocation kernel.Coordinate,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(deliveryID, orderID, customerID),
		cmd.setAddresses(pickupAddress, deliveryAddress),
		cmd.setLocations(pickupLocation, dropoffLocation),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// OrderID returns the order this delivery fulfills.
func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering user's identifier.
func (c CreateDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PickupAddress returns the store-side display address.
func (c CreateDeliveryCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the customer-side display address.
func (c CreateDeliveryCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// PickupLocation returns the store-side coordinate.
func (c CreateDeliveryCommand) PickupLocation() kernel.Coordinate {
	return c.pickupLocation
}

// DropoffLocation returns the customer-side coordinate.
func (c CreateDeliveryCommand) DropoffLocation() kernel.Coordinate {
	return c.dropoffLocation
}

func (c *CreateDeliveryCommand) setIDs(deliveryID, orderID, customerID kernel.UUID) error {
	if err := errors.Join(
		deliveryID.Validate(),
		orderID.Validate(),
		customerID.Validate(),
	); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	c.orderID = orderID
	c.customerID = customerID
	return nil
}

func (c *CreateDeliveryCommand) setAddresses(pickupAddress, deliveryAddress string) error {
	if pickupAddress == "" {
		return ErrPickupAddressIsRequired
	}
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.pickupAddress = pickupAddress
	c.deliveryAddress = deliveryAddress
	return nil
}

func (c *CreateDeliveryCommand) setLocations(pickupLocation, dropoffLocation kernel.Coordinate) error {
	if err := errors.Join(
		pickupLocation.Validate(),
		dropoffLocation.Validate(),
	); err != nil {
		return err
	}

	c.pickupLocation = pickupLocation
	c.dropoffLocation = dropoffLocation
	return nil
}
