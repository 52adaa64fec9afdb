package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateAgentCommandIsNotConstructed = errors.New(
		"CreateAgentCommand must be created via NewCreateAgentCommand constructor",
	)
	ErrAgentNameIsRequired = errors.New("agent name is required")
)

// CreateAgentCommand represents a request to register a new delivery agent
// with their vehicle, working area, capacity, and travel radius.
type CreateAgentCommand struct { //nolint:recvcheck //using for validation
	agentID         kernel.UUID
	name            string
	vehicleType     kernel.VehicleType
	currentLocation kernel.Location
	serviceArea     kernel.ServiceArea
	capacity        agent.Capacity
	maxDistance     agent.MaxDistance

	guard guard.ConstructorGuard
}

// NewCreateAgentCommand creates a command to register a new delivery agent.
// All value-object arguments must be properly constructed; validation
// failures are joined into a single error.
func NewCreateAgentCommand(
	agentID kernel.UUID,
	name string,
	vehicleType kernel.VehicleType,
	currentLocation kernel.Location,
	serviceArea kernel.ServiceArea,
	capacity agent.Capacity,
	maxDistance agent.MaxDistance,
) (CreateAgentCommand, error) {
	cmd := CreateAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setName(name),
		cmd.setVehicleType(vehicleType),
		cmd.setCurrentLocation(currentLocation),
		cmd.setServiceArea(serviceArea),
		cmd.setCapacity(capacity),
		cmd.setMaxDistance(maxDistance),
	); err != nil {
		return CreateAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAgentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAgentCommandIsNotConstructed)
}

// AgentID returns the unique identifier for the new agent.
func (c CreateAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Name returns the agent's human-readable name.
func (c CreateAgentCommand) Name() string {
	return c.name
}

// VehicleType returns the vehicle the agent operates.
func (c CreateAgentCommand) VehicleType() kernel.VehicleType {
	return c.vehicleType
}

// CurrentLocation returns the agent's starting position.
func (c CreateAgentCommand) CurrentLocation() kernel.Location {
	return c.currentLocation
}

// ServiceArea returns the polygon the agent works inside.
func (c CreateAgentCommand) ServiceArea() kernel.ServiceArea {
	return c.serviceArea
}

// Capacity returns the agent's maximum concurrent workload.
func (c CreateAgentCommand) Capacity() agent.Capacity {
	return c.capacity
}

// MaxDistance returns how far the agent travels to a pickup point.
func (c CreateAgentCommand) MaxDistance() agent.MaxDistance {
	return c.maxDistance
}

func (c *CreateAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *CreateAgentCommand) setName(name string) error {
	if name == "" {
		return ErrAgentNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateAgentCommand) setVehicleType(vehicleType kernel.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	c.vehicleType = vehicleType
	return nil
}

func (c *CreateAgentCommand) setCurrentLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.currentLocation = location
	return nil
}

func (c *CreateAgentCommand) setServiceArea(area kernel.ServiceArea) error {
	if err := area.Validate(); err != nil {
		return err
	}
	c.serviceArea = area
	return nil
}

func (c *CreateAgentCommand) setCapacity(capacity agent.Capacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	c.capacity = capacity
	return nil
}

func (c *CreateAgentCommand) setMaxDistance(maxDistance agent.MaxDistance) error {
	if err := maxDistance.Validate(); err != nil {
		return err
	}
	c.maxDistance = maxDistance
	return nil
}
