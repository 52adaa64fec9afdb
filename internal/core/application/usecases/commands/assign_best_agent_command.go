package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignBestAgentCommandIsNotConstructed = errors.New(
	"AssignBestAgentCommand must be created via NewAssignBestAgentCommand constructor",
)

// AssignBestAgentCommand represents a request to find and assign the best
// available agent for a delivery.
type AssignBestAgentCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignBestAgentCommand creates a command to auto-assign a delivery.
func NewAssignBestAgentCommand(deliveryID kernel.UUID) (AssignBestAgentCommand, error) {
	cmd := AssignBestAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return AssignBestAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignBestAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignBestAgentCommandIsNotConstructed)
}

// DeliveryID returns the delivery to assign.
func (c AssignBestAgentCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *AssignBestAgentCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}
