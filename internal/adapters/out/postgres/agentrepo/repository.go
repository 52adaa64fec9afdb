package agentrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAgentRepository implements AgentRepository using GORM.
type GormAgentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAgentRepository creates a new GORM agent repository.
func NewGormAgentRepository(db *gorm.DB, tracker aggregateTracker) *GormAgentRepository {
	return &GormAgentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new agent to the database.
func (r *GormAgentRepository) Add(ctx context.Context, aggregate *agent.DeliveryAgent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing agent to the database with an optimistic
// concurrency guard. Every domain mutation bumps the aggregate version, so
// the write only lands when the stored row is older than the in-memory
// aggregate; a stale row means another transaction got there first.
func (r *GormAgentRepository) Update(ctx context.Context, aggregate *agent.DeliveryAgent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&AgentDTO{}).
		Where("id = ? AND version < ?", dto.ID, dto.Version).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause(
			"agent "+aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an agent by ID.
func (r *GormAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.DeliveryAgent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AgentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agent", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every registered agent ordered by name.
func (r *GormAgentRepository) GetAll(ctx context.Context) ([]*agent.DeliveryAgent, error) {
	var dtos []AgentDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllAvailable retrieves all agents in the Available status whose workload
// is under capacity. Ordered by name so repeated snapshots of an unchanged
// pool come back in the same order.
func (r *GormAgentRepository) GetAllAvailable(ctx context.Context) ([]*agent.DeliveryAgent, error) {
	var dtos []AgentDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND cardinality(assigned_deliveries) < capacity", agent.StatusAvailable.String()).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllInArea retrieves all agents whose current location lies inside the
// given area, ordered by name. Containment runs in memory over the restored
// aggregates: the polygon vertices live in a jsonb blob, so the predicate has
// no SQL form.
func (r *GormAgentRepository) GetAllInArea(ctx context.Context, area kernel.ServiceArea) ([]*agent.DeliveryAgent, error) {
	if err := area.Validate(); err != nil {
		return nil, err
	}

	var dtos []AgentDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	agents := make([]*agent.DeliveryAgent, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}

		inside, err := area.Contains(a.CurrentLocation())
		if err != nil {
			return nil, err
		}
		if inside {
			agents = append(agents, a)
		}
	}

	return agents, nil
}

func toDomainSlice(dtos []AgentDTO) ([]*agent.DeliveryAgent, error) {
	agents := make([]*agent.DeliveryAgent, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}

	return agents, nil
}
