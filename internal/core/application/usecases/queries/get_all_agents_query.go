package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAllAgentsQueryIsNotConstructed = errors.New(
	"GetAllAgentsQuery must be created via NewGetAllAgentsQuery constructor",
)

// GetAllAgentsQuery retrieves every registered delivery agent with their
// current position, status, workload, and rating.
type GetAllAgentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllAgentsQuery creates a query to retrieve all agents.
// This is a parameterless query.
func NewGetAllAgentsQuery() GetAllAgentsQuery {
	return GetAllAgentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllAgentsQueryIsNotConstructed)
}

// GetAllAgentsQueryResponse is the read model for a delivery agent.
type GetAllAgentsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	VehicleType   kernel.VehicleType
	Location      kernel.Location
	Status        agent.Status
	Workload      int
	RatingAverage float64
	RatingCount   int
}
