package ports

import (
	"context"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agent
// aggregates, including their assigned-delivery sets and ratings.
type AgentRepository interface {
	// Add persists a new agent aggregate to storage.
	// The agent must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *agent.DeliveryAgent) error

	// Update persists changes to an existing agent aggregate.
	// The agent must exist in the repository and be valid. Fails with a
	// version conflict when the stored aggregate has moved on concurrently.
	Update(ctx context.Context, aggregate *agent.DeliveryAgent) error

	// Get retrieves an agent aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.DeliveryAgent, error)

	// GetAll retrieves every registered agent.
	GetAll(ctx context.Context) ([]*agent.DeliveryAgent, error)

	// GetAllAvailable retrieves all agents in the Available status whose
	// workload is under capacity. The result is a snapshot: availability may
	// change before the caller acts on it.
	GetAllAvailable(ctx context.Context) ([]*agent.DeliveryAgent, error)

	// GetAllInArea retrieves all agents whose current location lies inside
	// the given area, regardless of their status or workload.
	GetAllInArea(ctx context.Context, area kernel.ServiceArea) ([]*agent.DeliveryAgent, error)
}
