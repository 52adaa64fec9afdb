package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/agent"
)

// ErrAgentCannotHandleDelivery is returned when an available agent fails the
// remaining eligibility checks at assignment time (vehicle, area, distance).
// An agent that is not available at all gets agent.ErrAgentNotAvailable
// instead. Eligibility is a snapshot: an agent that passed FindSuitableAgents
// may have become ineligible since, so the handler always re-validates inside
// the transaction.
var ErrAgentCannotHandleDelivery = errors.New("agent cannot handle this delivery")

// AssignDeliveryCommandHandler assigns a delivery to a named agent.
//
// This is the one place where two aggregates are mutated together: the
// delivery moves to Assigned and the agent's workload grows. Both updates
// happen in a single transaction; either both persist or neither does.
type AssignDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignDeliveryCommandHandler creates a handler for explicit assignment
// operations. Requires a UoWFactory for cross-aggregate transactions.
func NewAssignDeliveryCommandHandler(uowFactory UoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Loads both aggregates, re-validates agent eligibility, applies the
// assignment on both sides, and commits atomically. Nothing is persisted on
// any failure.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) error {
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

	targetAgent, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if !targetAgent.IsAvailable() {
		return agent.ErrAgentNotAvailable
	}

	canHandle, err := targetAgent.CanHandleDelivery(targetDelivery)
	if err != nil {
		return err
	}
	if !canHandle {
		return ErrAgentCannotHandleDelivery
	}

	if err = targetDelivery.AssignToAgent(targetAgent.ID()); err != nil {
		return err
	}

	if err = targetAgent.AssignDelivery(targetDelivery.ID()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, targetDelivery); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, targetAgent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
