// Package agentrepo provides data transfer objects and mapping functions for
// delivery agent persistence. It implements the repository pattern for the
// agent aggregate, converting between the domain model and its relational
// representation.
package agentrepo

import (
	"encoding/json"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// AgentDTO represents the database structure for persisting agent aggregates.
// The service area polygon is stored as a jsonb vertex list and the assigned
// delivery set as a text array, keeping the aggregate in a single row.
type AgentDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name               string         `gorm:"type:varchar(255);not null"`
	VehicleType        string         `gorm:"type:varchar(32);not null"`
	Latitude           float64        `gorm:"type:double precision;not null"`
	Longitude          float64        `gorm:"type:double precision;not null"`
	ServiceArea        []byte         `gorm:"type:jsonb;not null"`
	Capacity           int            `gorm:"type:int;not null"`
	MaxDistanceKm      float64        `gorm:"type:double precision;not null"`
	Status             string         `gorm:"type:varchar(32);not null;index"`
	AssignedDeliveries pq.StringArray `gorm:"type:text[];not null"`
	RatingAverage      float64        `gorm:"type:double precision;not null"`
	RatingCount        int            `gorm:"type:int;not null"`
	Version            int            `gorm:"type:int;not null"`
}

// TableName specifies the database table name for agent entities.
// Overrides GORM's default naming convention to use "agents" instead of "agent_dtos".
func (AgentDTO) TableName() string {
	return "agents"
}

// areaVertexDTO is one polygon vertex inside the jsonb service area column.
type areaVertexDTO struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(aggregate *agent.DeliveryAgent) AgentDTO {
	vertices := aggregate.ServiceArea().Vertices()
	areaVertices := make([]areaVertexDTO, 0, len(vertices))
	for _, v := range vertices {
		areaVertices = append(areaVertices, areaVertexDTO{
			Latitude:  v.Latitude(),
			Longitude: v.Longitude(),
		})
	}

	// Marshalling a slice of plain float pairs cannot fail.
	area, _ := json.Marshal(areaVertices)

	assigned := make(pq.StringArray, 0, len(aggregate.AssignedDeliveries()))
	for _, deliveryID := range aggregate.AssignedDeliveries() {
		assigned = append(assigned, deliveryID.String())
	}

	return AgentDTO{
		ID:                 aggregate.ID().Bytes(),
		Name:               aggregate.Name(),
		VehicleType:        aggregate.VehicleType().String(),
		Latitude:           aggregate.CurrentLocation().Latitude(),
		Longitude:          aggregate.CurrentLocation().Longitude(),
		ServiceArea:        area,
		Capacity:           aggregate.Capacity().Value(),
		MaxDistanceKm:      aggregate.MaxDistance().Kilometers(),
		Status:             aggregate.Status().String(),
		AssignedDeliveries: assigned,
		RatingAverage:      aggregate.Rating().Average(),
		RatingCount:        aggregate.Rating().Count(),
		Version:            aggregate.Version(),
	}
}

// toDomain converts a database DTO to an agent domain aggregate.
// Reconstructs every value object and rehydrates the aggregate via RestoreDeliveryAgent.
func toDomain(dto AgentDTO) (*agent.DeliveryAgent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleType, err := kernel.VehicleTypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	serviceArea, err := areaToDomain(dto.ServiceArea)
	if err != nil {
		return nil, err
	}

	capacity, err := agent.NewCapacity(dto.Capacity)
	if err != nil {
		return nil, err
	}

	maxDistance, err := agent.NewMaxDistance(dto.MaxDistanceKm)
	if err != nil {
		return nil, err
	}

	status, err := agent.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	assigned := make([]kernel.UUID, 0, len(dto.AssignedDeliveries))
	for _, raw := range dto.AssignedDeliveries {
		deliveryID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		assigned = append(assigned, deliveryID)
	}

	rating, err := agent.RestoreRating(dto.RatingAverage, dto.RatingCount)
	if err != nil {
		return nil, err
	}

	return agent.RestoreDeliveryAgent(
		id,
		dto.Name,
		vehicleType,
		location,
		serviceArea,
		capacity,
		maxDistance,
		status,
		assigned,
		rating,
		dto.Version,
	)
}

// areaToDomain decodes the jsonb vertex list into a service area polygon.
func areaToDomain(raw []byte) (kernel.ServiceArea, error) {
	var areaVertices []areaVertexDTO
	if err := json.Unmarshal(raw, &areaVertices); err != nil {
		return kernel.ServiceArea{}, err
	}

	vertices := make([]kernel.Location, 0, len(areaVertices))
	for _, v := range areaVertices {
		vertex, err := kernel.NewLocation(v.Latitude, v.Longitude)
		if err != nil {
			return kernel.ServiceArea{}, err
		}
		vertices = append(vertices, vertex)
	}

	return kernel.NewServiceArea(vertices)
}
