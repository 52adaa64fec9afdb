// Package delivery implements the Delivery aggregate root: the lifecycle state
// machine of a single delivery request, its package-size and priority value
// objects, and the domain events recorded by every state transition.
//
// A delivery moves Created → PendingAssignment → Assigned → InTransit →
// Completed, with Failed and Canceled as absorbing states reachable from the
// intermediate ones. All mutation goes through the aggregate's methods; illegal
// transitions are rejected with state-transition errors and leave the aggregate
// untouched.
package delivery
