package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrPickUpDeliveryCommandIsNotConstructed = errors.New(
	"PickUpDeliveryCommand must be created via NewPickUpDeliveryCommand constructor",
)

// PickUpDeliveryCommand represents the assigned agent collecting the package.
type PickUpDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickUpDeliveryCommand creates a command to mark a delivery as picked up.
func NewPickUpDeliveryCommand(deliveryID kernel.UUID) (PickUpDeliveryCommand, error) {
	cmd := PickUpDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return PickUpDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PickUpDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrPickUpDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being picked up.
func (c PickUpDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *PickUpDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}
