package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/services"
)

// ErrNoAvailableAgents is returned when every registered agent is busy,
// off shift, or otherwise out of the available pool.
var ErrNoAvailableAgents = errors.New("no available agents found")

// AssignBestAgentCommandHandler orchestrates automatic agent assignment.
// Loads the delivery and the currently available agents, ranks them with the
// BestAgentSelector, and commits the winning assignment on both aggregates.
//
// Example:
//
//	handler := NewAssignBestAgentCommandHandler(uowFactory)
//	cmd, _ := NewAssignBestAgentCommand(deliveryID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoAvailableAgents):
//	    log.Println("All agents are busy")
//	case errors.Is(err, services.ErrAgentNotFound):
//	    log.Println("No agent is eligible for this delivery")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignBestAgentCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignBestAgentCommandHandler creates a handler for automatic assignment
// operations. Requires a UoWFactory for cross-aggregate transactions.
func NewAssignBestAgentCommandHandler(uowFactory UoWFactory) AssignBestAgentCommandHandler {
	return AssignBestAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the automatic assignment command.
// Selection and assignment run in the same transaction, so the selector's
// availability snapshot cannot go stale between picking and committing.
// If selection fails, the failure reason is surfaced as-is; there is no
// retry or re-selection.
func (h AssignBestAgentCommandHandler) Handle(ctx context.Context, cmd AssignBestAgentCommand) error {
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

	candidates, err := agentRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return ErrNoAvailableAgents
	}

	winner, err := services.NewBestAgentSelector().SelectBestAgent(targetDelivery, candidates)
	if err != nil {
		return err
	}

	if err = targetDelivery.AssignToAgent(winner.ID()); err != nil {
		return err
	}

	if err = winner.AssignDelivery(targetDelivery.ID()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, targetDelivery); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, winner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
