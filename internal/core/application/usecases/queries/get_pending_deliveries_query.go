// Package queries contains read-only operations over the dispatch state.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return flat read models, bypassing the aggregates.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetPendingDeliveriesQueryIsNotConstructed = errors.New(
	"GetPendingDeliveriesQuery must be created via NewGetPendingDeliveriesQuery constructor",
)

// GetPendingDeliveriesQuery retrieves all deliveries still waiting for an
// agent: those in the Created and PendingAssignment statuses.
//
// Example:
//
//	query := NewGetPendingDeliveriesQuery()
//	handler := NewGetPendingDeliveriesQueryHandler(db)
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending deliveries: %w", err)
//	}
//	fmt.Printf("%d deliveries awaiting assignment\n", len(pending))
type GetPendingDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingDeliveriesQuery creates a query to retrieve pending deliveries.
// This is a parameterless query.
func NewGetPendingDeliveriesQuery() GetPendingDeliveriesQuery {
	return GetPendingDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingDeliveriesQueryIsNotConstructed)
}

// GetPendingDeliveriesQueryResponse is the read model for a pending delivery.
type GetPendingDeliveriesQueryResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	PickupLocation  kernel.Location
	DropoffLocation kernel.Location
	Priority        delivery.Priority
	Status          delivery.Status
	CreatedAt       time.Time
}
