package commands

import (
	"context"
)

// RateAgentCommandHandler folds a customer score into an agent's running
// rating average.
type RateAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewRateAgentCommandHandler creates a handler for rating operations.
func NewRateAgentCommandHandler(uowFactory AgentUoWFactory) RateAgentCommandHandler {
	return RateAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command.
func (h RateAgentCommandHandler) Handle(ctx context.Context, cmd RateAgentCommand) error {
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

	if err = targetAgent.UpdateRating(cmd.Score()); err != nil {
		return err
	}

	if err = agentRepo.Update(ctx, targetAgent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
