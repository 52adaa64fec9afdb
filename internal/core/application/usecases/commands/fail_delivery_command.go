package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrFailDeliveryCommandIsNotConstructed = errors.New(
		"FailDeliveryCommand must be created via NewFailDeliveryCommand constructor",
	)
	ErrFailureReasonIsRequired = errors.New("failure reason is required")
)

// FailDeliveryCommand represents a request to mark a delivery as failed.
// Unlike cancellation, a failure must carry a reason.
type FailDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewFailDeliveryCommand creates a command to fail a delivery.
func NewFailDeliveryCommand(deliveryID kernel.UUID, reason string) (FailDeliveryCommand, error) {
	cmd := FailDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setReason(reason),
	); err != nil {
		return FailDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FailDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFailDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being failed.
func (c FailDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Reason returns why the delivery failed.
func (c FailDeliveryCommand) Reason() string {
	return c.reason
}

func (c *FailDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	c.deliveryID = deliveryID
	return nil
}

func (c *FailDeliveryCommand) setReason(reason string) error {
	if reason == "" {
		return ErrFailureReasonIsRequired
	}
	c.reason = reason
	return nil
}
