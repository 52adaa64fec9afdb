package commands

import (
	"context"
)

// ChangeDeliveryPriorityCommandHandler updates a delivery's priority.
type ChangeDeliveryPriorityCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewChangeDeliveryPriorityCommandHandler creates a handler for priority
// change operations.
func NewChangeDeliveryPriorityCommandHandler(uowFactory DeliveryUoWFactory) ChangeDeliveryPriorityCommandHandler {
	return ChangeDeliveryPriorityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the priority change command.
func (h ChangeDeliveryPriorityCommandHandler) Handle(ctx context.Context, cmd ChangeDeliveryPriorityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	targetDelivery, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = targetDelivery.UpdatePriority(cmd.Priority()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, targetDelivery); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
