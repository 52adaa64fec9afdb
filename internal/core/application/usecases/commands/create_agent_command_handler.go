package commands

import (
	"context"

	"dispatch/internal/core/domain/model/agent"
)

// CreateAgentCommandHandler handles the business logic for agent registration.
// New agents start in the Available status with an empty workload.
type CreateAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewCreateAgentCommandHandler creates a handler for agent registration operations.
// Requires an AgentUoWFactory for transactional persistence.
func NewCreateAgentCommandHandler(uowFactory AgentUoWFactory) CreateAgentCommandHandler {
	return CreateAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent registration command.
func (h CreateAgentCommandHandler) Handle(ctx context.Context, cmd CreateAgentCommand) error {
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

	newAgent, err := agent.NewDeliveryAgent(
		cmd.AgentID(),
		cmd.Name(),
		cmd.VehicleType(),
		cmd.CurrentLocation(),
		cmd.ServiceArea(),
		cmd.Capacity(),
		cmd.MaxDistance(),
	)
	if err != nil {
		return err
	}

	if err = uow.AgentRepository().Add(ctx, newAgent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
