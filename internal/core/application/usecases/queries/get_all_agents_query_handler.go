package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/kernel"
)

// GetAllAgentsQueryHandler reads agent read models straight from the
// database. Uses direct SQL for read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllAgentsQueryHandler(db)
//	agents, err := handler.Handle(ctx, NewGetAllAgentsQuery())
//	if err != nil {
//	    log.Printf("Failed to get agents: %v", err)
//	    return err
//	}
//	fmt.Printf("Found %d agents\n", len(agents))
type GetAllAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllAgentsQueryHandler creates a handler for agent retrieval queries.
// Requires a GORM database connection.
func NewGetAllAgentsQueryHandler(db *gorm.DB) GetAllAgentsQueryHandler {
	return GetAllAgentsQueryHandler{db: db}
}

// Handle executes the query. Returns agent read models sorted by name.
func (h GetAllAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllAgentsQuery,
) ([]GetAllAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	agents := make([]GetAllAgentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			vehicle_type,
			latitude,
			longitude,
			status,
			assigned_deliveries,
			rating_average,
			rating_count
		FROM agents
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp               GetAllAgentsQueryResponse
			id                 uuid.UUID
			vehicleType        string
			latitude           float64
			longitude          float64
			status             string
			assignedDeliveries pq.StringArray
		)

		if err = rows.Scan(
			&id,
			&resp.Name,
			&vehicleType,
			&latitude,
			&longitude,
			&status,
			&assignedDeliveries,
			&resp.RatingAverage,
			&resp.RatingCount,
		); err != nil {
			return nil, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = agentID

		vehicle, vtErr := kernel.VehicleTypeFromString(vehicleType)
		if vtErr != nil {
			return nil, vtErr
		}
		resp.VehicleType = vehicle

		location, locErr := kernel.NewLocation(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}
		resp.Location = location

		agentStatus, stErr := agent.StatusFromString(status)
		if stErr != nil {
			return nil, stErr
		}
		resp.Status = agentStatus
		resp.Workload = len(assignedDeliveries)

		agents = append(agents, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
