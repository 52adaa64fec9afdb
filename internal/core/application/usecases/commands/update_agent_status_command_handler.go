package commands

import (
	"context"
)

// UpdateAgentStatusCommandHandler applies an externally requested status
// change to an agent. The domain rejects Busy with an empty workload; every
// other transition is allowed.
type UpdateAgentStatusCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewUpdateAgentStatusCommandHandler creates a handler for status updates.
func NewUpdateAgentStatusCommandHandler(uowFactory AgentUoWFactory) UpdateAgentStatusCommandHandler {
	return UpdateAgentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update command.
func (h UpdateAgentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateAgentStatusCommand) error {
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

	if err = targetAgent.UpdateStatus(cmd.Status()); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, targetAgent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
