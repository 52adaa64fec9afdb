package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/delivery"
)

// CancelDeliveryCommandHandler moves a delivery to the terminal Canceled
// status. When the delivery is still on an agent's workload, the slot is
// released in the same transaction so the agent does not stay at reduced
// capacity forever.
type CancelDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for cancellation
// operations. Requires a UoWFactory for cross-aggregate transactions.
func NewCancelDeliveryCommandHandler(uowFactory UoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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

	if err = targetDelivery.Cancel(cmd.Reason()); err != nil {
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

// releaseAgentSlot frees the terminated delivery's slot on the assigned
// agent, if any. The delivery keeps its agent reference as history, so the
// agent may have already shed the delivery; that case is not an error.
func releaseAgentSlot(ctx context.Context, uow UoW, d *delivery.Delivery) error {
	agentID := d.AssignedAgent()
	if agentID == nil {
		return nil
	}

	agentRepo := uow.AgentRepository()

	assignedAgent, err := agentRepo.Get(ctx, *agentID)
	if err != nil {
		return err
	}

	if err = assignedAgent.CompleteDelivery(d.ID()); err != nil {
		if errors.Is(err, agent.ErrDeliveryNotAssignedToAgent) {
			return nil
		}
		return err
	}

	return agentRepo.Update(ctx, assignedAgent)
}
