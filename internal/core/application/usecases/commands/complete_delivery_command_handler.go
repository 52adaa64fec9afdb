package commands

import (
	"context"
)

// CompleteDeliveryCommandHandler marks a delivery as completed and frees the
// agent's workload slot in the same transaction. A Busy agent dropping under
// capacity becomes Available again as part of this command.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for completion
// operations. Requires a UoWFactory for cross-aggregate transactions.
func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Both the delivery's terminal transition and the agent's slot release must
// succeed for anything to persist.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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
	agentRepo := uow.AgentRepository()

	targetDelivery, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = targetDelivery.MarkAsCompleted(); err != nil {
		return err
	}

	assignedAgent, err := agentRepo.Get(ctx, *targetDelivery.AssignedAgent())
	if err != nil {
		return err
	}

	if err = assignedAgent.CompleteDelivery(targetDelivery.ID()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, targetDelivery); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, assignedAgent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
