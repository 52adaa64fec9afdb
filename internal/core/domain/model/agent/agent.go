package agent

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/ddd"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for delivery agent operations.
var (
	// ErrAgentIsNotConstructed is returned when using an improperly initialized DeliveryAgent.
	ErrAgentIsNotConstructed = errors.New("DeliveryAgent must be created via NewDeliveryAgent constructor")
	// ErrAgentNotAvailable is returned when assigning a delivery to an agent who cannot take one.
	ErrAgentNotAvailable = errors.New("agent is not available for assignment")
	// ErrDeliveryAlreadyAssigned is returned when assigning a delivery the agent already carries.
	ErrDeliveryAlreadyAssigned = errors.New("delivery is already assigned to this agent")
	// ErrDeliveryNotAssignedToAgent is returned when completing a delivery the agent does not carry.
	ErrDeliveryNotAssignedToAgent = errors.New("delivery is not assigned to this agent")
	// ErrAgentBusyWithoutDeliveries is returned when requesting the Busy status with an empty workload.
	ErrAgentBusyWithoutDeliveries = errors.New("agent cannot be Busy with no assigned deliveries")
)

// DeliveryAgent is the aggregate root for a courier working the dispatch
// system. It owns the agent's availability state, the set of deliveries
// currently carried, and the eligibility rules used during assignment.
//
// Key responsibilities:
//   - Tracking the assigned-delivery set against the agent's capacity
//   - Flipping Available/Busy automatically as the workload crosses capacity
//   - Answering CanHandleDelivery during best-agent selection
//   - Accumulating the agent's customer rating
//
// Business rules:
//   - An agent is available iff their status is Available and the assigned
//     set is strictly under capacity.
//   - Assigning the delivery that reaches capacity flips the agent to Busy;
//     completing one below capacity flips them back to Available.
//   - OnBreak and Offline are set externally and never entered automatically.
type DeliveryAgent struct {
	ddd.BaseAggregate

	// id uniquely identifies the agent
	id kernel.UUID
	// name is the human-readable name of the agent
	name string
	// vehicleType bounds the package sizes the agent can carry
	vehicleType kernel.VehicleType
	// currentLocation is the agent's last reported position
	currentLocation kernel.Location
	// serviceArea is the polygon the agent works inside
	serviceArea kernel.ServiceArea
	// capacity is the maximum number of concurrent deliveries
	capacity Capacity
	// maxDistance is how far the agent travels to a pickup point
	maxDistance MaxDistance
	// status is the agent's current working state
	status Status
	// assignedDeliveries are the deliveries the agent currently carries
	assignedDeliveries []kernel.UUID
	// rating is the running average of customer scores
	rating Rating
	// guard ensures the agent was properly constructed
	guard guard.ConstructorGuard
}

// NewDeliveryAgent creates a new agent in the Available state with an empty
// workload and a fresh rating, and records a CreatedEvent. All parameters
// are validated; failures are joined into a single error.
func NewDeliveryAgent(
	id kernel.UUID,
	name string,
	vehicleType kernel.VehicleType,
	currentLocation kernel.Location,
	serviceArea kernel.ServiceArea,
	capacity Capacity,
	maxDistance MaxDistance,
) (*DeliveryAgent, error) {
	agent := &DeliveryAgent{
		status: StatusAvailable,
		rating: NewRating(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		agent.setID(id),
		agent.setName(name),
		agent.setVehicleType(vehicleType),
		agent.setCurrentLocation(currentLocation),
		agent.setServiceArea(serviceArea),
		agent.setCapacity(capacity),
		agent.setMaxDistance(maxDistance),
	); err != nil {
		return nil, err
	}

	agent.RaiseDomainEvent(CreatedEvent{
		baseEvent:   newBaseEvent(),
		AgentID:     agent.id,
		VehicleType: agent.vehicleType,
	})

	return agent, nil
}

// RestoreDeliveryAgent reconstructs an agent from persistent storage,
// including their status, assigned-delivery set, rating, and version.
// No event is recorded.
func RestoreDeliveryAgent(
	id kernel.UUID,
	name string,
	vehicleType kernel.VehicleType,
	currentLocation kernel.Location,
	serviceArea kernel.ServiceArea,
	capacity Capacity,
	maxDistance MaxDistance,
	status Status,
	assignedDeliveries []kernel.UUID,
	rating Rating,
	version int,
) (*DeliveryAgent, error) {
	agent := &DeliveryAgent{
		rating: rating,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		agent.setID(id),
		agent.setName(name),
		agent.setVehicleType(vehicleType),
		agent.setCurrentLocation(currentLocation),
		agent.setServiceArea(serviceArea),
		agent.setCapacity(capacity),
		agent.setMaxDistance(maxDistance),
		agent.setStatus(status, assignedDeliveries),
	); err != nil {
		return nil, err
	}

	agent.RestoreVersion(version)

	return agent, nil
}

// Validate checks if the DeliveryAgent was properly constructed.
// The zero value is invalid and fails this validation.
func (a *DeliveryAgent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

// IsEqual compares two agents by identity.
func (a *DeliveryAgent) IsEqual(other *DeliveryAgent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's unique identifier.
func (a *DeliveryAgent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's human-readable name.
func (a *DeliveryAgent) Name() string {
	return a.name
}

// VehicleType returns the vehicle the agent operates.
func (a *DeliveryAgent) VehicleType() kernel.VehicleType {
	return a.vehicleType
}

// CurrentLocation returns the agent's last reported position.
func (a *DeliveryAgent) CurrentLocation() kernel.Location {
	return a.currentLocation
}

// ServiceArea returns the polygon the agent works inside.
func (a *DeliveryAgent) ServiceArea() kernel.ServiceArea {
	return a.serviceArea
}

// Capacity returns the agent's maximum concurrent workload.
func (a *DeliveryAgent) Capacity() Capacity {
	return a.capacity
}

// MaxDistance returns how far the agent travels to a pickup point.
func (a *DeliveryAgent) MaxDistance() MaxDistance {
	return a.maxDistance
}

// Status returns the agent's current working state.
func (a *DeliveryAgent) Status() Status {
	return a.status
}

// Rating returns the agent's customer rating.
func (a *DeliveryAgent) Rating() Rating {
	return a.rating
}

// AssignedDeliveries returns the deliveries the agent currently carries.
// The returned slice is a copy to prevent external modification.
func (a *DeliveryAgent) AssignedDeliveries() []kernel.UUID {
	out := make([]kernel.UUID, len(a.assignedDeliveries))
	copy(out, a.assignedDeliveries)
	return out
}

// Workload returns the number of deliveries the agent currently carries.
func (a *DeliveryAgent) Workload() int {
	return len(a.assignedDeliveries)
}

// IsAvailable reports whether the agent can take a new delivery: status is
// Available and the assigned set is strictly under capacity.
func (a *DeliveryAgent) IsAvailable() bool {
	return a.status == StatusAvailable && len(a.assignedDeliveries) < a.capacity.Value()
}

// CanHandleDelivery reports whether the agent is eligible for the given
// delivery. All four checks must hold:
//   - the agent is available;
//   - both pickup and dropoff lie inside the agent's service area;
//   - the pickup point is within the agent's travel radius;
//   - the package fits the agent's vehicle type.
func (a *DeliveryAgent) CanHandleDelivery(d *delivery.Delivery) (bool, error) {
	if err := d.Validate(); err != nil {
		return false, err
	}

	if !a.IsAvailable() {
		return false, nil
	}

	pickupInArea, err := a.serviceArea.Contains(d.PickupLocation())
	if err != nil {
		return false, err
	}
	dropoffInArea, err := a.serviceArea.Contains(d.DropoffLocation())
	if err != nil {
		return false, err
	}
	if !pickupInArea || !dropoffInArea {
		return false, nil
	}

	distance, err := a.currentLocation.DistanceTo(d.PickupLocation())
	if err != nil {
		return false, err
	}
	if !a.maxDistance.Covers(distance) {
		return false, nil
	}

	return d.PackageSize().CanBeHandledBy(a.vehicleType), nil
}

// AssignDelivery adds a delivery to the agent's workload. Fails if the agent
// is not available or already carries the delivery. If the set reaches
// capacity, the agent transitions to Busy.
func (a *DeliveryAgent) AssignDelivery(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	if !a.IsAvailable() {
		return ErrAgentNotAvailable
	}

	if a.carriesDelivery(deliveryID) {
		return ErrDeliveryAlreadyAssigned
	}

	a.assignedDeliveries = append(a.assignedDeliveries, deliveryID)
	if len(a.assignedDeliveries) >= a.capacity.Value() {
		a.status = StatusBusy
	}

	a.RaiseDomainEvent(DeliveryAssignedEvent{
		baseEvent:  newBaseEvent(),
		AgentID:    a.id,
		DeliveryID: deliveryID,
		NewStatus:  a.status,
	})
	return nil
}

// CompleteDelivery removes a delivery from the agent's workload. Fails if the
// agent does not carry it. If the agent was Busy and is now under capacity,
// they transition back to Available.
func (a *DeliveryAgent) CompleteDelivery(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	idx := -1
	for i, id := range a.assignedDeliveries {
		if id.IsEqual(deliveryID) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrDeliveryNotAssignedToAgent
	}

	a.assignedDeliveries = append(a.assignedDeliveries[:idx], a.assignedDeliveries[idx+1:]...)
	if a.status == StatusBusy && len(a.assignedDeliveries) < a.capacity.Value() {
		a.status = StatusAvailable
	}

	a.RaiseDomainEvent(DeliveryCompletedEvent{
		baseEvent:  newBaseEvent(),
		AgentID:    a.id,
		DeliveryID: deliveryID,
		NewStatus:  a.status,
	})
	return nil
}

// UpdateLocation records a new position report for the agent.
func (a *DeliveryAgent) UpdateLocation(location kernel.Location) error {
	old := a.currentLocation
	if err := a.setCurrentLocation(location); err != nil {
		return err
	}

	a.RaiseDomainEvent(LocationUpdatedEvent{
		baseEvent:   newBaseEvent(),
		AgentID:     a.id,
		OldLocation: old,
		NewLocation: location,
	})
	return nil
}

// UpdateStatus sets the agent's working state externally. The only rejected
// request is Busy with an empty workload; any other transition, including
// going Offline while carrying deliveries, is allowed.
func (a *DeliveryAgent) UpdateStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if status == StatusBusy && len(a.assignedDeliveries) == 0 {
		return ErrAgentBusyWithoutDeliveries
	}

	old := a.status
	a.status = status

	a.RaiseDomainEvent(StatusUpdatedEvent{
		baseEvent: newBaseEvent(),
		AgentID:   a.id,
		OldStatus: old,
		NewStatus: status,
	})
	return nil
}

// UpdateRating folds a new customer score into the agent's running average.
// Fails if the score falls outside [1, 5].
func (a *DeliveryAgent) UpdateRating(score int) error {
	newRating, err := a.rating.AddRating(score)
	if err != nil {
		return err
	}

	a.rating = newRating

	a.RaiseDomainEvent(RatingUpdatedEvent{
		baseEvent: newBaseEvent(),
		AgentID:   a.id,
		Score:     score,
		NewRating: newRating,
	})
	return nil
}

// carriesDelivery reports whether the delivery is in the assigned set.
func (a *DeliveryAgent) carriesDelivery(deliveryID kernel.UUID) bool {
	for _, id := range a.assignedDeliveries {
		if id.IsEqual(deliveryID) {
			return true
		}
	}
	return false
}

// setID sets the agent's unique identifier with validation.
func (a *DeliveryAgent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

// setName sets the agent's name with validation.
func (a *DeliveryAgent) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

// setVehicleType sets the agent's vehicle type with validation.
func (a *DeliveryAgent) setVehicleType(vehicleType kernel.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	a.vehicleType = vehicleType
	return nil
}

// setCurrentLocation sets the agent's position with validation.
func (a *DeliveryAgent) setCurrentLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	a.currentLocation = location
	return nil
}

// setServiceArea sets the agent's working polygon with validation.
func (a *DeliveryAgent) setServiceArea(area kernel.ServiceArea) error {
	if err := area.Validate(); err != nil {
		return err
	}
	a.serviceArea = area
	return nil
}

// setCapacity sets the agent's maximum workload with validation.
func (a *DeliveryAgent) setCapacity(capacity Capacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	a.capacity = capacity
	return nil
}

// setMaxDistance sets the agent's travel radius with validation.
func (a *DeliveryAgent) setMaxDistance(maxDistance MaxDistance) error {
	if err := maxDistance.Validate(); err != nil {
		return err
	}
	a.maxDistance = maxDistance
	return nil
}

// setStatus restores the persisted status together with the assigned set,
// enforcing the status/workload consistency invariant.
func (a *DeliveryAgent) setStatus(status Status, assignedDeliveries []kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	for _, id := range assignedDeliveries {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	if status == StatusBusy && len(assignedDeliveries) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", ErrAgentBusyWithoutDeliveries)
	}
	if len(assignedDeliveries) > a.capacity.Value() {
		return errs.NewValueIsInvalidErrorWithCause("assigned deliveries are invalid",
			fmt.Errorf("%d deliveries exceed capacity %d", len(assignedDeliveries), a.capacity.Value()))
	}

	a.status = status
	a.assignedDeliveries = make([]kernel.UUID, len(assignedDeliveries))
	copy(a.assignedDeliveries, assignedDeliveries)
	return nil
}
