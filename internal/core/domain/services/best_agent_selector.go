package services

import (
	"errors"
	"math"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/delivery"
)

// ErrAgentNotFound is returned when no suitable agent exists for a delivery.
// This occurs when either no agents are provided or none of the provided
// agents can handle the delivery due to availability, service-area, distance,
// or vehicle constraints.
var ErrAgentNotFound = errors.New("no eligible agent found")

// BestAgentSelector is a domain service that picks exactly one agent for a
// delivery out of a candidate pool.
//
// The selection order is deterministic:
//  1. Ascending distance from the agent's current location to the delivery's
//     pickup point.
//  2. Ties broken by ascending current workload (least-loaded agent wins).
//  3. Remaining ties resolved by pool iteration order: the first agent
//     encountered keeps the win. Callers that need reproducible results must
//     pass the pool in a stable order.
//
// The selector is purely advisory: it never mutates the delivery or the
// winning agent. Committing the assignment is the caller's responsibility.
type BestAgentSelector struct{}

// NewBestAgentSelector creates a new BestAgentSelector instance.
func NewBestAgentSelector() BestAgentSelector {
	return BestAgentSelector{}
}

// SelectBestAgent evaluates the candidate pool against the delivery and
// returns the winner.
//
// Candidates that fail CanHandleDelivery are skipped silently; hard errors
// from geometry or validation abort the selection. Returns ErrAgentNotFound
// when no candidate survives filtering.
func (s BestAgentSelector) SelectBestAgent(
	d *delivery.Delivery,
	candidates []*agent.DeliveryAgent,
) (*agent.DeliveryAgent, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if err := d.Status().ValidateAssign(); err != nil {
		return nil, err
	}

	var (
		best         *agent.DeliveryAgent
		bestDistance = math.MaxFloat64
		bestWorkload = math.MaxInt
	)

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		canHandle, err := candidate.CanHandleDelivery(d)
		if err != nil {
			return nil, err
		}
		if !canHandle {
			continue
		}

		distance, err := candidate.CurrentLocation().DistanceTo(d.PickupLocation())
		if err != nil {
			return nil, err
		}

		workload := candidate.Workload()
		if distance < bestDistance || (distance == bestDistance && workload < bestWorkload) {
			best = candidate
			bestDistance = distance
			bestWorkload = workload
		}
	}

	if best == nil {
		return nil, ErrAgentNotFound
	}

	return best, nil
}
