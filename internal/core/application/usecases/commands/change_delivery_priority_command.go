package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrChangeDeliveryPriorityCommandIsNotConstructed = errors.New(
	"ChangeDeliveryPriorityCommand must be created via NewChangeDeliveryPriorityCommand constructor",
)

// ChangeDeliveryPriorityCommand represents a request to change a delivery's
// priority. Legal in any lifecycle state.
type ChangeDeliveryPriorityCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	priority   delivery.Priority

	guard guard.ConstructorGuard
}

// NewChangeDeliveryPriorityCommand creates a command to change a delivery's priority.
func NewChangeDeliveryPriorityCommand(
	deliveryID kernel.UUID,
	priority delivery.Priority,
) (ChangeDeliveryPriorityCommand, error) {
	cmd := ChangeDeliveryPriorityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setPriority(priority),
	); err != nil {
		return ChangeDeliveryPriorityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDeliveryPriorityCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryPriorityCommandIsNotConstructed)
}

// DeliveryID returns the delivery whose priority changes.
func (c ChangeDeliveryPriorityCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Priority returns the new priority.
func (c ChangeDeliveryPriorityCommand) Priority() delivery.Priority {
	return c.priority
}

func (c *ChangeDeliveryPriorityCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *ChangeDeliveryPriorityCommand) setPriority(priority delivery.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}
