package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrFindSuitableAgentsQueryIsNotConstructed = errors.New(
	"FindSuitableAgentsQuery must be created via NewFindSuitableAgentsQuery constructor",
)

// FindSuitableAgentsQuery asks which currently available agents could handle
// a given delivery. The result is an unranked set of agent identifiers;
// ranking is the best-agent selector's job.
type FindSuitableAgentsQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFindSuitableAgentsQuery creates a query for a delivery's eligible agents.
func NewFindSuitableAgentsQuery(deliveryID kernel.UUID) (FindSuitableAgentsQuery, error) {
	query := FindSuitableAgentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setDeliveryID(deliveryID); err != nil {
		return FindSuitableAgentsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q FindSuitableAgentsQuery) Validate() error {
	return q.guard.Validate(ErrFindSuitableAgentsQueryIsNotConstructed)
}

// DeliveryID returns the delivery to match agents against.
func (q FindSuitableAgentsQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

func (q *FindSuitableAgentsQuery) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	q.deliveryID = deliveryID
	return nil
}
