package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateAgentLocationCommandIsNotConstructed = errors.New(
	"UpdateAgentLocationCommand must be created via NewUpdateAgentLocationCommand constructor",
)

// UpdateAgentLocationCommand represents a position report from an agent.
type UpdateAgentLocationCommand struct { //nolint:recvcheck //using for validation
	agentID  kernel.UUID
	location kernel.Location

	guard guard.ConstructorGuard
}

// NewUpdateAgentLocationCommand creates a command to record an agent's position.
func NewUpdateAgentLocationCommand(
	agentID kernel.UUID,
	location kernel.Location,
) (UpdateAgentLocationCommand, error) {
	cmd := UpdateAgentLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setLocation(location),
	); err != nil {
		return UpdateAgentLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAgentLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAgentLocationCommandIsNotConstructed)
}

// AgentID returns the reporting agent.
func (c UpdateAgentLocationCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Location returns the reported position.
func (c UpdateAgentLocationCommand) Location() kernel.Location {
	return c.location
}

func (c *UpdateAgentLocationCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *UpdateAgentLocationCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
