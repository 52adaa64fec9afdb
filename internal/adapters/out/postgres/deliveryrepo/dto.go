// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. It implements the repository pattern for the
// delivery aggregate, converting between the domain model and its relational
// representation.
package deliveryrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Value objects are flattened into columns; enumerations are
// stored by name so rows stay readable in ad-hoc queries.
type DeliveryDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	PickupLatitude   float64    `gorm:"type:double precision;not null"`
	PickupLongitude  float64    `gorm:"type:double precision;not null"`
	DropoffLatitude  float64    `gorm:"type:double precision;not null"`
	DropoffLongitude float64    `gorm:"type:double precision;not null"`
	WindowStart      time.Time  `gorm:"not null"`
	WindowEnd        time.Time  `gorm:"not null"`
	WeightKg         float64    `gorm:"type:double precision;not null"`
	VolumeM3         float64    `gorm:"type:double precision;not null"`
	Priority         string     `gorm:"type:varchar(32);not null"`
	Status           string     `gorm:"type:varchar(32);not null;index"`
	AssignedAgentID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt        time.Time  `gorm:"not null"`
	PickupTime       *time.Time `gorm:""`
	DeliveryTime     *time.Time `gorm:""`
	Version          int        `gorm:"type:int;not null"`
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries" instead of "delivery_dtos".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var assignedAgentID *uuid.UUID
	if aggregate.AssignedAgent() != nil {
		raw := aggregate.AssignedAgent().Bytes()
		assignedAgentID = &raw
	}

	return DeliveryDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		PickupLatitude:   aggregate.PickupLocation().Latitude(),
		PickupLongitude:  aggregate.PickupLocation().Longitude(),
		DropoffLatitude:  aggregate.DropoffLocation().Latitude(),
		DropoffLongitude: aggregate.DropoffLocation().Longitude(),
		WindowStart:      aggregate.TimeWindow().Start(),
		WindowEnd:        aggregate.TimeWindow().End(),
		WeightKg:         aggregate.PackageSize().Weight(),
		VolumeM3:         aggregate.PackageSize().Volume(),
		Priority:         aggregate.Priority().String(),
		Status:           aggregate.Status().String(),
		AssignedAgentID:  assignedAgentID,
		CreatedAt:        aggregate.CreatedAt(),
		PickupTime:       aggregate.PickupTime(),
		DeliveryTime:     aggregate.DeliveryTime(),
		Version:          aggregate.Version(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs every value object and rehydrates the aggregate via RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewLocation(dto.PickupLatitude, dto.PickupLongitude)
	if err != nil {
		return nil, err
	}

	dropoff, err := kernel.NewLocation(dto.DropoffLatitude, dto.DropoffLongitude)
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewTimeWindow(dto.WindowStart, dto.WindowEnd)
	if err != nil {
		return nil, err
	}

	packageSize, err := delivery.NewPackageSize(dto.WeightKg, dto.VolumeM3)
	if err != nil {
		return nil, err
	}

	priority, err := delivery.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var assignedAgentID *kernel.UUID
	if dto.AssignedAgentID != nil {
		agentID, agentErr := kernel.UUIDFromBytes((*dto.AssignedAgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}
		assignedAgentID = &agentID
	}

	return delivery.RestoreDelivery(
		id,
		customerID,
		pickup,
		dropoff,
		window,
		packageSize,
		priority,
		status,
		assignedAgentID,
		dto.CreatedAt,
		dto.PickupTime,
		dto.DeliveryTime,
		dto.Version,
	)
}
