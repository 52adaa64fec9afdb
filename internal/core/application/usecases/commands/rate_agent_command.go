package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRateAgentCommandIsNotConstructed = errors.New(
	"RateAgentCommand must be created via NewRateAgentCommand constructor",
)

const (
	minAgentScore = 1
	maxAgentScore = 5
)

// RateAgentCommand represents a customer scoring an agent after a delivery.
type RateAgentCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	score   int

	guard guard.ConstructorGuard
}

// NewRateAgentCommand creates a command to score an agent. The score must
// fall within [1, 5].
func NewRateAgentCommand(agentID kernel.UUID, score int) (RateAgentCommand, error) {
	cmd := RateAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setScore(score),
	); err != nil {
		return RateAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateAgentCommand) Validate() error {
	return c.guard.Validate(ErrRateAgentCommandIsNotConstructed)
}

// AgentID returns the agent being scored.
func (c RateAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Score returns the customer's score.
func (c RateAgentCommand) Score() int {
	return c.score
}

func (c *RateAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *RateAgentCommand) setScore(score int) error {
	if score < minAgentScore || score > maxAgentScore {
		return errs.NewValueIsOutOfRangeError("rating", score, minAgentScore, maxAgentScore)
	}
	c.score = score
	return nil
}
