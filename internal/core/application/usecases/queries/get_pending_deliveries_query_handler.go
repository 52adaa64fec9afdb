package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// GetPendingDeliveriesQueryHandler reads pending deliveries straight from
// the database, bypassing the aggregate layer for read performance.
type GetPendingDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingDeliveriesQueryHandler creates a handler for pending delivery
// queries. Requires a GORM database connection.
func NewGetPendingDeliveriesQueryHandler(db *gorm.DB) GetPendingDeliveriesQueryHandler {
	return GetPendingDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Returns deliveries in the Created and
// PendingAssignment statuses, oldest first.
func (h GetPendingDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetPendingDeliveriesQuery,
) ([]GetPendingDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetPendingDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			pickup_latitude,
			pickup_longitude,
			dropoff_latitude,
			dropoff_longitude,
			priority,
			status,
			created_at
		FROM deliveries
		WHERE status IN (?, ?)
		ORDER BY created_at
	`, delivery.StatusCreated.String(), delivery.StatusPendingAssignment.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, customerID         uuid.UUID
			pickupLat, pickupLon   float64
			dropoffLat, dropoffLon float64
			priority, status       string
			createdAt              time.Time
		)

		if err = rows.Scan(
			&id,
			&customerID,
			&pickupLat,
			&pickupLon,
			&dropoffLat,
			&dropoffLon,
			&priority,
			&status,
			&createdAt,
		); err != nil {
			return nil, err
		}

		resp, convErr := buildPendingDeliveryResponse(
			id, customerID, pickupLat, pickupLon, dropoffLat, dropoffLon, priority, status, createdAt)
		if convErr != nil {
			return nil, convErr
		}
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

// buildPendingDeliveryResponse converts raw row values into the read model,
// re-validating through the kernel value objects.
func buildPendingDeliveryResponse(
	id, customerID uuid.UUID,
	pickupLat, pickupLon, dropoffLat, dropoffLon float64,
	priority, status string,
	createdAt time.Time,
) (GetPendingDeliveriesQueryResponse, error) {
	deliveryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetPendingDeliveriesQueryResponse{}, err
	}

	customer, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetPendingDeliveriesQueryResponse{}, err
	}

	pickup, err := kernel.NewLocation(pickupLat, pickupLon)
	if err != nil {
		return GetPendingDeliveriesQueryResponse{}, err
	}

	dropoff, err := kernel.NewLocation(dropoffLat, dropoffLon)
	if err != nil {
		return GetPendingDeliveriesQueryResponse{}, err
	}

	deliveryPriority, err := delivery.PriorityFromString(priority)
	if err != nil {
		return GetPendingDeliveriesQueryResponse{}, err
	}

	deliveryStatus, err := delivery.StatusFromString(status)
	if err != nil {
		return GetPendingDeliveriesQueryResponse{}, err
	}

	return GetPendingDeliveriesQueryResponse{
		ID:              deliveryID,
		CustomerID:      customer,
		PickupLocation:  pickup,
		DropoffLocation: dropoff,
		Priority:        deliveryPriority,
		Status:          deliveryStatus,
		CreatedAt:       createdAt,
	}, nil
}
