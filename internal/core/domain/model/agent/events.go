package agent

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// Event names recorded by the DeliveryAgent aggregate.
const (
	EventAgentCreated           = "agent.created"
	EventAgentDeliveryAssigned  = "agent.delivery_assigned"
	EventAgentDeliveryCompleted = "agent.delivery_completed"
	EventAgentLocationUpdated   = "agent.location_updated"
	EventAgentStatusUpdated     = "agent.status_updated"
	EventAgentRatingUpdated     = "agent.rating_updated"
)

// baseEvent carries the timestamp shared by all agent events.
type baseEvent struct {
	occurredAt time.Time
}

func newBaseEvent() baseEvent {
	return baseEvent{occurredAt: time.Now().UTC()}
}

// OccurredAt reports when the event was recorded.
func (e baseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// CreatedEvent records the registration of a new delivery agent.
type CreatedEvent struct {
	baseEvent
	AgentID     kernel.UUID
	VehicleType kernel.VehicleType
}

func (CreatedEvent) EventName() string { return EventAgentCreated }

// DeliveryAssignedEvent records that the agent took on a delivery.
type DeliveryAssignedEvent struct {
	baseEvent
	AgentID    kernel.UUID
	DeliveryID kernel.UUID
	NewStatus  Status
}

func (DeliveryAssignedEvent) EventName() string { return EventAgentDeliveryAssigned }

// DeliveryCompletedEvent records that the agent shed a delivery from their
// workload, whether it finished, failed or was canceled.
type DeliveryCompletedEvent struct {
	baseEvent
	AgentID    kernel.UUID
	DeliveryID kernel.UUID
	NewStatus  Status
}

func (DeliveryCompletedEvent) EventName() string { return EventAgentDeliveryCompleted }

// LocationUpdatedEvent records a position report from the agent.
type LocationUpdatedEvent struct {
	baseEvent
	AgentID     kernel.UUID
	OldLocation kernel.Location
	NewLocation kernel.Location
}

func (LocationUpdatedEvent) EventName() string { return EventAgentLocationUpdated }

// StatusUpdatedEvent records an externally requested status change.
type StatusUpdatedEvent struct {
	baseEvent
	AgentID   kernel.UUID
	OldStatus Status
	NewStatus Status
}

func (StatusUpdatedEvent) EventName() string { return EventAgentStatusUpdated }

// RatingUpdatedEvent records a new customer score folded into the agent's
// running average.
type RatingUpdatedEvent struct {
	baseEvent
	AgentID   kernel.UUID
	Score     int
	NewRating Rating
}

func (RatingUpdatedEvent) EventName() string { return EventAgentRatingUpdated }
