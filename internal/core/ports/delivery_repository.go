// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Provides methods for storing, retrieving, and querying delivery entities
// with their complete lifecycle state.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	// The delivery must exist in the repository and be valid. Fails with a
	// version conflict when the stored aggregate has moved on concurrently.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns the complete delivery with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAllPending retrieves all deliveries waiting for an agent: those in
	// the Created and PendingAssignment statuses, oldest first.
	GetAllPending(ctx context.Context) ([]*delivery.Delivery, error)
}
