package queries

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// FindSuitableAgentsQueryHandler matches a delivery against the currently
// available agents using the domain's eligibility predicate. Unlike the
// SQL-backed read models, this query needs full aggregates to evaluate
// service areas and vehicle ceilings, so it goes through the repositories.
type FindSuitableAgentsQueryHandler struct {
	deliveryRepo ports.DeliveryRepository
	agentRepo    ports.AgentRepository
}

// NewFindSuitableAgentsQueryHandler creates a handler for agent matching
// queries. The repositories are used read-only.
func NewFindSuitableAgentsQueryHandler(
	deliveryRepo ports.DeliveryRepository,
	agentRepo ports.AgentRepository,
) FindSuitableAgentsQueryHandler {
	return FindSuitableAgentsQueryHandler{
		deliveryRepo: deliveryRepo,
		agentRepo:    agentRepo,
	}
}

// Handle executes the query. An unknown delivery yields an empty set, not an
// error. The returned identifiers are unranked.
func (h FindSuitableAgentsQueryHandler) Handle(
	ctx context.Context,
	query FindSuitableAgentsQuery,
) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	targetDelivery, err := h.deliveryRepo.Get(ctx, query.DeliveryID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return []kernel.UUID{}, nil
	}
	if err != nil {
		return nil, err
	}

	candidates, err := h.agentRepo.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	suitable := make([]kernel.UUID, 0, len(candidates))
	for _, candidate := range candidates {
		canHandle, handleErr := candidate.CanHandleDelivery(targetDelivery)
		if handleErr != nil {
			return nil, handleErr
		}
		if canHandle {
			suitable = append(suitable, candidate.ID())
		}
	}

	return suitable, nil
}
