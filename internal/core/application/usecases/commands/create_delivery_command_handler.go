package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
)

// CreateDeliveryCommandHandler handles the business logic for delivery creation.
// Creates new deliveries in the Created status, ready for agent assignment.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation operations.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery creation command.
// Uses a transaction to ensure the delivery is properly persisted or rolled back on error.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newDelivery, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.CustomerID(),
		cmd.PickupLocation(),
		cmd.DropoffLocation(),
		cmd.TimeWindow(),
		cmd.PackageSize(),
		cmd.Priority(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
