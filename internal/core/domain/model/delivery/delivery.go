package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/ddd"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through the NewDelivery or RestoreDelivery constructors.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrDeliveryNotAssigned is returned when an operation requires an assigned
	// agent but the delivery has none.
	ErrDeliveryNotAssigned = errors.New("delivery is not assigned to an agent")
)

// Delivery is the aggregate root for a single delivery request. It owns the
// lifecycle state machine and records a domain event for every state change.
//
// Invariants:
//   - AssignedAgent is present exactly in the Assigned, InTransit, and
//     Completed states; Failed and Canceled preserve it as history.
//   - PickupTime is set when the delivery enters InTransit, DeliveryTime when
//     it completes.
//   - All mutation goes through the lifecycle methods; illegal transitions
//     leave the aggregate untouched.
type Delivery struct {
	ddd.BaseAggregate

	id              kernel.UUID
	customerID      kernel.UUID
	pickupLocation  kernel.Location
	dropoffLocation kernel.Location
	timeWindow      kernel.TimeWindow
	packageSize     PackageSize
	priority        Priority
	assignedAgentID *kernel.UUID
	status          Status
	createdAt       time.Time
	pickupTime      *time.Time
	deliveryTime    *time.Time

	isConstructed bool
}

// NewDelivery creates a delivery in the Created state and records a
// CreatedEvent. All value-object arguments must be properly constructed;
// validation failures are joined into a single error.
func NewDelivery(
	id kernel.UUID,
	customerID kernel.UUID,
	pickupLocation kernel.Location,
	dropoffLocation kernel.Location,
	timeWindow kernel.TimeWindow,
	packageSize PackageSize,
	priority Priority,
) (*Delivery, error) {
	d := &Delivery{
		status:        StatusCreated,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setCustomerID(customerID),
		d.setPickupLocation(pickupLocation),
		d.setDropoffLocation(dropoffLocation),
		d.setTimeWindow(timeWindow),
		d.setPackageSize(packageSize),
		d.setPriority(priority),
	); err != nil {
		return nil, err
	}

	d.RaiseDomainEvent(CreatedEvent{
		baseEvent:  newBaseEvent(),
		DeliveryID: d.id,
		CustomerID: d.customerID,
	})

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistent storage, including
// its status, assignment history, timestamps, and version. No event is
// recorded; the restored aggregate behaves identically to one that reached
// the same state through domain operations.
func RestoreDelivery(
	id kernel.UUID,
	customerID kernel.UUID,
	pickupLocation kernel.Location,
	dropoffLocation kernel.Location,
	timeWindow kernel.TimeWindow,
	packageSize PackageSize,
	priority Priority,
	status Status,
	assignedAgentID *kernel.UUID,
	createdAt time.Time,
	pickupTime *time.Time,
	deliveryTime *time.Time,
	version int,
) (*Delivery, error) {
	d := &Delivery{
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setCustomerID(customerID),
		d.setPickupLocation(pickupLocation),
		d.setDropoffLocation(dropoffLocation),
		d.setTimeWindow(timeWindow),
		d.setPackageSize(packageSize),
		d.setPriority(priority),
		d.setStatus(status, assignedAgentID),
	); err != nil {
		return nil, err
	}

	d.createdAt = createdAt
	d.pickupTime = pickupTime
	d.deliveryTime = deliveryTime
	d.RestoreVersion(version)

	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by identity.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// CustomerID returns the requesting customer's identifier.
func (d *Delivery) CustomerID() kernel.UUID {
	return d.customerID
}

// PickupLocation returns where the package is collected.
func (d *Delivery) PickupLocation() kernel.Location {
	return d.pickupLocation
}

// DropoffLocation returns where the package is delivered.
func (d *Delivery) DropoffLocation() kernel.Location {
	return d.dropoffLocation
}

// TimeWindow returns the interval in which the delivery must happen.
func (d *Delivery) TimeWindow() kernel.TimeWindow {
	return d.timeWindow
}

// PackageSize returns the package's physical size.
func (d *Delivery) PackageSize() PackageSize {
	return d.packageSize
}

// Priority returns the delivery's current priority.
func (d *Delivery) Priority() Priority {
	return d.priority
}

// Status returns the current lifecycle state.
func (d *Delivery) Status() Status {
	return d.status
}

// AssignedAgent returns the assigned agent's ID, or nil when unassigned.
// In the Failed and Canceled states the last assigned agent is preserved
// as history.
func (d *Delivery) AssignedAgent() *kernel.UUID {
	return d.assignedAgentID
}

// CreatedAt returns the creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// PickupTime returns when the package was picked up, or nil.
func (d *Delivery) PickupTime() *time.Time {
	return d.pickupTime
}

// DeliveryTime returns when the package was delivered, or nil.
func (d *Delivery) DeliveryTime() *time.Time {
	return d.deliveryTime
}

// IsEligibleForAssignment reports whether the delivery may receive an agent:
// true exactly in the Created and PendingAssignment states.
func (d *Delivery) IsEligibleForAssignment() bool {
	return d.status.IsEligibleForAssignment()
}

// AssignToAgent assigns the delivery to the given agent and moves it to
// Assigned. Legal from Created and PendingAssignment only.
func (d *Delivery) AssignToAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Assign()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.assignedAgentID = &agentID

	d.RaiseDomainEvent(AssignedEvent{
		baseEvent:  newBaseEvent(),
		DeliveryID: d.id,
		AgentID:    agentID,
	})
	return nil
}

// MarkAsPickedUp records the pickup timestamp and moves the delivery to
// InTransit. Requires an assigned agent and the Assigned state.
func (d *Delivery) MarkAsPickedUp() error {
	if d.assignedAgentID == nil {
		return ErrDeliveryNotAssigned
	}

	newStatus, err := d.status.PickUp()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	d.status = newStatus
	d.pickupTime = &now

	d.RaiseDomainEvent(PickedUpEvent{
		baseEvent:  newBaseEvent(),
		DeliveryID: d.id,
		AgentID:    *d.assignedAgentID,
		PickupTime: now,
	})
	return nil
}

// MarkAsCompleted records the delivery timestamp and moves the delivery to
// Completed. Requires an assigned agent and the InTransit state.
func (d *Delivery) MarkAsCompleted() error {
	if d.assignedAgentID == nil {
		return ErrDeliveryNotAssigned
	}

	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	d.status = newStatus
	d.deliveryTime = &now

	d.RaiseDomainEvent(CompletedEvent{
		baseEvent:    newBaseEvent(),
		DeliveryID:   d.id,
		AgentID:      *d.assignedAgentID,
		DeliveryTime: now,
	})
	return nil
}

// CancelAssignment clears the assigned agent and reverts the delivery to
// PendingAssignment. Legal from Assigned only.
func (d *Delivery) CancelAssignment() error {
	newStatus, err := d.status.CancelAssignment()
	if err != nil {
		return err
	}

	previousAgent := *d.assignedAgentID
	d.status = newStatus
	d.assignedAgentID = nil

	d.RaiseDomainEvent(AssignmentCanceledEvent{
		baseEvent:       newBaseEvent(),
		DeliveryID:      d.id,
		PreviousAgentID: previousAgent,
	})
	return nil
}

// MarkAsFailed moves the delivery to Failed, preserving the (possibly nil)
// assigned agent for the event record. Legal from any state except Completed
// and Canceled.
func (d *Delivery) MarkAsFailed(reason string) error {
	newStatus, err := d.status.Fail()
	if err != nil {
		return err
	}

	d.status = newStatus

	d.RaiseDomainEvent(FailedEvent{
		baseEvent:  newBaseEvent(),
		DeliveryID: d.id,
		AgentID:    d.assignedAgentID,
		Reason:     reason,
	})
	return nil
}

// Cancel moves the delivery to Canceled, preserving the (possibly nil)
// assigned agent for the event record. Legal from any state except Completed
// and Failed.
func (d *Delivery) Cancel(reason string) error {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return err
	}

	d.status = newStatus

	d.RaiseDomainEvent(CanceledEvent{
		baseEvent:  newBaseEvent(),
		DeliveryID: d.id,
		AgentID:    d.assignedAgentID,
		Reason:     reason,
	})
	return nil
}

// UpdatePriority changes the delivery's priority. Always legal; no lifecycle
// state changes.
func (d *Delivery) UpdatePriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	old := d.priority
	d.priority = priority

	d.RaiseDomainEvent(PriorityChangedEvent{
		baseEvent:   newBaseEvent(),
		DeliveryID:  d.id,
		OldPriority: old,
		NewPriority: priority,
	})
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id", err)
	}
	d.customerID = customerID
	return nil
}

func (d *Delivery) setPickupLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickup location", err)
	}
	d.pickupLocation = location
	return nil
}

func (d *Delivery) setDropoffLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("dropoff location", err)
	}
	d.dropoffLocation = location
	return nil
}

func (d *Delivery) setTimeWindow(window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}
	d.timeWindow = window
	return nil
}

func (d *Delivery) setPackageSize(size PackageSize) error {
	if err := size.Validate(); err != nil {
		return err
	}
	d.packageSize = size
	return nil
}

func (d *Delivery) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	d.priority = priority
	return nil
}

// setStatus restores the persisted status together with the agent reference,
// enforcing the status/agent consistency invariant.
func (d *Delivery) setStatus(status Status, assignedAgentID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if assignedAgentID != nil {
		if err := assignedAgentID.Validate(); err != nil {
			return err
		}
	}

	if err := status.ValidateCanHaveAgent(assignedAgentID != nil); err != nil {
		return err
	}

	d.status = status
	d.assignedAgentID = assignedAgentID
	return nil
}
