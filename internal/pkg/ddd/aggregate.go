// Package ddd provides the domain-event plumbing shared by all aggregates.
// Aggregates embed BaseAggregate to record immutable domain events and to
// maintain the version counter used for optimistic concurrency at the
// persistence boundary.
package ddd

import "time"

// DomainEvent is an immutable record of something that happened to an aggregate.
// Events are kept for history/audit; they are not a communication channel.
// Each concrete event is a plain struct tagged by its EventName, dispatched by
// a switch over the name where needed rather than by runtime type inspection.
type DomainEvent interface {
	// EventName identifies the event kind, e.g. "delivery.assigned".
	EventName() string
	// OccurredAt reports when the event was recorded.
	OccurredAt() time.Time
}

// EventRecorder is the subset of aggregate behavior the persistence layer needs
// to drain recorded events after a successful commit.
type EventRecorder interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// BaseAggregate holds recorded domain events and the aggregate version.
// Embed it by value in aggregate roots. The version starts at zero and is
// incremented by every recorded event, so any event-producing mutation is
// visible to the optimistic-concurrency check at commit time.
type BaseAggregate struct {
	events  []DomainEvent
	version int
}

// RaiseDomainEvent appends an event to the aggregate's pending list and bumps
// the version counter.
func (a *BaseAggregate) RaiseDomainEvent(event DomainEvent) {
	a.events = append(a.events, event)
	a.version++
}

// DomainEvents returns a snapshot of the events recorded since the last clear.
// The returned slice is a copy; callers cannot mutate the aggregate's list.
func (a *BaseAggregate) DomainEvents() []DomainEvent {
	snapshot := make([]DomainEvent, len(a.events))
	copy(snapshot, a.events)
	return snapshot
}

// ClearDomainEvents drops all pending events. Called by the unit of work after
// a successful commit; the version counter is left untouched.
func (a *BaseAggregate) ClearDomainEvents() {
	a.events = nil
}

// Version returns the current aggregate version.
func (a *BaseAggregate) Version() int {
	return a.version
}

// RestoreVersion sets the version when rehydrating an aggregate from storage.
// It must not be used outside restore constructors.
func (a *BaseAggregate) RestoreVersion(version int) {
	a.version = version
}
