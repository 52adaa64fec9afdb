package commands

import (
	"context"
)

// UpdateAgentLocationCommandHandler records an agent's position report.
type UpdateAgentLocationCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewUpdateAgentLocationCommandHandler creates a handler for location updates.
func NewUpdateAgentLocationCommandHandler(uowFactory AgentUoWFactory) UpdateAgentLocationCommandHandler {
	return UpdateAgentLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location update command.
func (h UpdateAgentLocationCommandHandler) Handle(ctx context.Context, cmd UpdateAgentLocationCommand) error {
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

	agentRepo := uow.AgentRepository()

	targetAgent, err := agentRepo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	if err = targetAgent.UpdateLocation(cmd.Location()); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, targetAgent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
