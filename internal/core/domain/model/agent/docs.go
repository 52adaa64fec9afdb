// Package agent implements the DeliveryAgent aggregate: the availability and
// capability state of a single delivery agent, including the capacity-bounded
// set of deliveries currently assigned to them.
//
// An agent oscillates between Available and Busy as their workload reaches and
// leaves capacity; OnBreak and Offline are set externally and never entered
// automatically. The CanHandleDelivery predicate combines availability,
// service-area containment, pickup distance, and vehicle/package compatibility
// into the single eligibility decision used by the assignment service.
package agent
