package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to register a new delivery.
// Encapsulates the customer, route endpoints, time window, package size, and
// priority of the requested delivery.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(
//	    kernel.NewUUID(), customerID, pickup, dropoff, window, size, delivery.PriorityStandard,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID      kernel.UUID
	customerID      kernel.UUID
	pickupLocation  kernel.Location
	dropoffLocation kernel.Location
	timeWindow      kernel.TimeWindow
	packageSize     delivery.PackageSize
	priority        delivery.Priority

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery.
// All value-object arguments must be properly constructed; validation
// failures are joined into a single error.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	customerID kernel.UUID,
	pickupLocation kernel.Location,
	dropoffLocation kernel.Location,
	timeWindow kernel.TimeWindow,
	packageSize delivery.PackageSize,
	priority delivery.Priority,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setCustomerID(customerID),
		cmd.setPickupLocation(pickupLocation),
		cmd.setDropoffLocation(dropoffLocation),
		cmd.setTimeWindow(timeWindow),
		cmd.setPackageSize(packageSize),
		cmd.setPriority(priority),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the new delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CustomerID returns the requesting customer's identifier.
func (c CreateDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PickupLocation returns where the package is collected.
func (c CreateDeliveryCommand) PickupLocation() kernel.Location {
	return c.pickupLocation
}

// DropoffLocation returns where the package is delivered.
func (c CreateDeliveryCommand) DropoffLocation() kernel.Location {
	return c.dropoffLocation
}

// TimeWindow returns the interval in which the delivery must happen.
func (c CreateDeliveryCommand) TimeWindow() kernel.TimeWindow {
	return c.timeWindow
}

// PackageSize returns the package's physical size.
func (c CreateDeliveryCommand) PackageSize() delivery.PackageSize {
	return c.packageSize
}

// Priority returns the delivery's requested priority.
func (c CreateDeliveryCommand) Priority() delivery.Priority {
	return c.priority
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateDeliveryCommand) setPickupLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.pickupLocation = location
	return nil
}

func (c *CreateDeliveryCommand) setDropoffLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.dropoffLocation = location
	return nil
}

func (c *CreateDeliveryCommand) setTimeWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	c.timeWindow = window
	return nil
}

func (c *CreateDeliveryCommand) setPackageSize(size delivery.PackageSize) error {
	if err := size.Validate(); err != nil {
		return err
	}
	c.packageSize = size
	return nil
}

func (c *CreateDeliveryCommand) setPriority(priority delivery.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}
