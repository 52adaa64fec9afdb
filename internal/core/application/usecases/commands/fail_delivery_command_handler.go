package commands

import (
	"context"
)

// FailDeliveryCommandHandler moves a delivery to the terminal Failed status.
// Like cancellation, a failed delivery releases its slot on the assigned
// agent in the same transaction.
type FailDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewFailDeliveryCommandHandler creates a handler for failure operations.
// Requires a UoWFactory for cross-aggregate transactions.
func NewFailDeliveryCommandHandler(uowFactory UoWFactory) FailDeliveryCommandHandler {
	return FailDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the failure command.
func (h FailDeliveryCommandHandler) Handle(ctx context.Context, cmd FailDeliveryCommand) error {
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

	if err = targetDelivery.MarkAsFailed(cmd.Reason()); err != nil {
		return err
	}

	if err = releaseAgentSlot(ctx, uow, targetDelivery); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, targetDelivery); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
