package delivery

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// Event names recorded by the Delivery aggregate. Consumers switch over these
// tags instead of inspecting event types at runtime.
const (
	EventDeliveryCreated            = "delivery.created"
	EventDeliveryAssigned           = "delivery.assigned"
	EventDeliveryPickedUp           = "delivery.picked_up"
	EventDeliveryCompleted          = "delivery.completed"
	EventDeliveryAssignmentCanceled = "delivery.assignment_canceled"
	EventDeliveryFailed             = "delivery.failed"
	EventDeliveryCanceled           = "delivery.canceled"
	EventDeliveryPriorityChanged    = "delivery.priority_changed"
)

// baseEvent carries the timestamp shared by all delivery events.
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

// CreatedEvent records the creation of a delivery request.
type CreatedEvent struct {
	baseEvent
	DeliveryID kernel.UUID
	CustomerID kernel.UUID
}

func (CreatedEvent) EventName() string { return EventDeliveryCreated }

// AssignedEvent records the assignment of an agent to the delivery.
type AssignedEvent struct {
	baseEvent
	DeliveryID kernel.UUID
	AgentID    kernel.UUID
}

func (AssignedEvent) EventName() string { return EventDeliveryAssigned }

// PickedUpEvent records the pickup of the package by the assigned agent.
type PickedUpEvent struct {
	baseEvent
	DeliveryID kernel.UUID
	AgentID    kernel.UUID
	PickupTime time.Time
}

func (PickedUpEvent) EventName() string { return EventDeliveryPickedUp }

// CompletedEvent records the successful completion of the delivery.
type CompletedEvent struct {
	baseEvent
	DeliveryID   kernel.UUID
	AgentID      kernel.UUID
	DeliveryTime time.Time
}

func (CompletedEvent) EventName() string { return EventDeliveryCompleted }

// AssignmentCanceledEvent records that the delivery lost its agent and went
// back to waiting for assignment.
type AssignmentCanceledEvent struct {
	baseEvent
	DeliveryID      kernel.UUID
	PreviousAgentID kernel.UUID
}

func (AssignmentCanceledEvent) EventName() string { return EventDeliveryAssignmentCanceled }

// FailedEvent records a terminal failure. AgentID is nil when the delivery
// was never assigned.
type FailedEvent struct {
	baseEvent
	DeliveryID kernel.UUID
	AgentID    *kernel.UUID
	Reason     string
}

func (FailedEvent) EventName() string { return EventDeliveryFailed }

// CanceledEvent records a terminal cancellation. AgentID is nil when the
// delivery was never assigned.
type CanceledEvent struct {
	baseEvent
	DeliveryID kernel.UUID
	AgentID    *kernel.UUID
	Reason     string
}

func (CanceledEvent) EventName() string { return EventDeliveryCanceled }

// PriorityChangedEvent records a priority update.
type PriorityChangedEvent struct {
	baseEvent
	DeliveryID  kernel.UUID
	OldPriority Priority
	NewPriority Priority
}

func (PriorityChangedEvent) EventName() string { return EventDeliveryPriorityChanged }
