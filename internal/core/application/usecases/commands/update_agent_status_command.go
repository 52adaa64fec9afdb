package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateAgentStatusCommandIsNotConstructed = errors.New(
	"UpdateAgentStatusCommand must be created via NewUpdateAgentStatusCommand constructor",
)

// UpdateAgentStatusCommand represents an external request to change an
// agent's working state, such as going on break or off shift.
type UpdateAgentStatusCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	status  agent.Status

	guard guard.ConstructorGuard
}

// NewUpdateAgentStatusCommand creates a command to change an agent's status.
func NewUpdateAgentStatusCommand(
	agentID kernel.UUID,
	status agent.Status,
) (UpdateAgentStatusCommand, error) {
	cmd := UpdateAgentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateAgentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAgentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAgentStatusCommandIsNotConstructed)
}

// AgentID returns the agent whose status changes.
func (c UpdateAgentStatusCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Status returns the requested working state.
func (c UpdateAgentStatusCommand) Status() agent.Status {
	return c.status
}

func (c *UpdateAgentStatusCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *UpdateAgentStatusCommand) setStatus(status agent.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
