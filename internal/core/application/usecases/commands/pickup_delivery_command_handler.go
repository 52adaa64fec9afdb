package commands

import (
	"context"
)

// PickUpDeliveryCommandHandler moves an assigned delivery to InTransit and
// records the pickup timestamp. Only the delivery aggregate changes; the
// agent keeps carrying it.
type PickUpDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewPickUpDeliveryCommandHandler creates a handler for pickup operations.
func NewPickUpDeliveryCommandHandler(uowFactory DeliveryUoWFactory) PickUpDeliveryCommandHandler {
	return PickUpDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command.
func (h PickUpDeliveryCommandHandler) Handle(ctx context.Context, cmd PickUpDeliveryCommand) error {
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

	if err = targetDelivery.MarkAsPickedUp(); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, targetDelivery); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
