package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockDeliveryReader stubs the delivery repository for matching tests.
type mockDeliveryReader struct {
	mock.Mock
}

func (m *mockDeliveryReader) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *mockDeliveryReader) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *mockDeliveryReader) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *mockDeliveryReader) GetAllPending(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

// mockAgentReader stubs the agent repository for matching tests.
type mockAgentReader struct {
	mock.Mock
}

func (m *mockAgentReader) Add(ctx context.Context, aggregate *agent.DeliveryAgent) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *mockAgentReader) Update(ctx context.Context, aggregate *agent.DeliveryAgent) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *mockAgentReader) Get(ctx context.Context, id kernel.UUID) (*agent.DeliveryAgent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.DeliveryAgent), args.Error(1)
}

func (m *mockAgentReader) GetAll(ctx context.Context) ([]*agent.DeliveryAgent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*agent.DeliveryAgent), args.Error(1)
}

func (m *mockAgentReader) GetAllAvailable(ctx context.Context) ([]*agent.DeliveryAgent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*agent.DeliveryAgent), args.Error(1)
}

func (m *mockAgentReader) GetAllInArea(ctx context.Context, area kernel.ServiceArea) ([]*agent.DeliveryAgent, error) {
	args := m.Called(ctx, area)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*agent.DeliveryAgent), args.Error(1)
}

func matchingDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	pickup, err := kernel.NewLocation(52.52, 13.40)
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation(52.53, 13.41)
	require.NoError(t, err)
	window, err := kernel.NewTimeWindow(time.Now().UTC(), time.Now().UTC().Add(4*time.Hour))
	require.NoError(t, err)
	size, err := delivery.NewPackageSize(2, 0.01)
	require.NoError(t, err)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), pickup, dropoff, window, size, delivery.PriorityStandard)
	require.NoError(t, err)
	return d
}

func matchingAgent(t *testing.T, name string, vehicleType kernel.VehicleType) *agent.DeliveryAgent {
	t.Helper()

	location, err := kernel.NewLocation(52.521, 13.401)
	require.NoError(t, err)

	vertices := make([]kernel.Location, 0, 4)
	for _, coords := range [][2]float64{{52, 13}, {52, 14}, {53, 14}, {53, 13}} {
		v, vErr := kernel.NewLocation(coords[0], coords[1])
		require.NoError(t, vErr)
		vertices = append(vertices, v)
	}
	area, err := kernel.NewServiceArea(vertices)
	require.NoError(t, err)

	capacity, err := agent.NewCapacity(2)
	require.NoError(t, err)
	maxDistance, err := agent.NewMaxDistance(50)
	require.NoError(t, err)

	a, err := agent.NewDeliveryAgent(
		kernel.NewUUID(), name, vehicleType, location, area, capacity, maxDistance)
	require.NoError(t, err)
	return a
}

func TestFindSuitableAgentsQueryHandler_FiltersByEligibility(t *testing.T) {
	ctx := context.Background()
	targetDelivery := matchingDelivery(t)

	eligible := matchingAgent(t, "Eligible", kernel.VehicleCar)
	cyclist := matchingAgent(t, "Cyclist", kernel.VehicleBicycle)
	offline := matchingAgent(t, "Offline", kernel.VehicleCar)
	require.NoError(t, offline.UpdateStatus(agent.StatusOffline))

	deliveryRepo := &mockDeliveryReader{}
	agentRepo := &mockAgentReader{}

	deliveryRepo.On("Get", ctx, targetDelivery.ID()).Return(targetDelivery, nil)
	agentRepo.On("GetAllAvailable", ctx).
		Return([]*agent.DeliveryAgent{eligible, cyclist, offline}, nil)

	handler := queries.NewFindSuitableAgentsQueryHandler(deliveryRepo, agentRepo)

	query, err := queries.NewFindSuitableAgentsQuery(targetDelivery.ID())
	require.NoError(t, err)

	result, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[0].IsEqual(eligible.ID()))
	assert.True(t, result[1].IsEqual(cyclist.ID()))
	deliveryRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
}

func TestFindSuitableAgentsQueryHandler_ExcludesUndersizedVehicle(t *testing.T) {
	ctx := context.Background()

	pickup, err := kernel.NewLocation(52.52, 13.40)
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation(52.53, 13.41)
	require.NoError(t, err)
	window, err := kernel.NewTimeWindow(time.Now().UTC(), time.Now().UTC().Add(4*time.Hour))
	require.NoError(t, err)
	heavy, err := delivery.NewPackageSize(50, 0.3)
	require.NoError(t, err)

	heavyDelivery, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), pickup, dropoff, window, heavy, delivery.PriorityStandard)
	require.NoError(t, err)

	bicycle := matchingAgent(t, "Bicycle", kernel.VehicleBicycle)
	car := matchingAgent(t, "Car", kernel.VehicleCar)

	deliveryRepo := &mockDeliveryReader{}
	agentRepo := &mockAgentReader{}

	deliveryRepo.On("Get", ctx, heavyDelivery.ID()).Return(heavyDelivery, nil)
	agentRepo.On("GetAllAvailable", ctx).Return([]*agent.DeliveryAgent{bicycle, car}, nil)

	handler := queries.NewFindSuitableAgentsQueryHandler(deliveryRepo, agentRepo)

	query, err := queries.NewFindSuitableAgentsQuery(heavyDelivery.ID())
	require.NoError(t, err)

	result, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].IsEqual(car.ID()))
}

func TestFindSuitableAgentsQueryHandler_UnknownDeliveryReturnsEmptySet(t *testing.T) {
	ctx := context.Background()
	deliveryID := kernel.NewUUID()

	deliveryRepo := &mockDeliveryReader{}
	agentRepo := &mockAgentReader{}

	deliveryRepo.On("Get", ctx, deliveryID).
		Return(nil, errs.NewObjectNotFoundError("delivery", deliveryID.String()))

	handler := queries.NewFindSuitableAgentsQueryHandler(deliveryRepo, agentRepo)

	query, err := queries.NewFindSuitableAgentsQuery(deliveryID)
	require.NoError(t, err)

	result, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
	agentRepo.AssertNotCalled(t, "GetAllAvailable", mock.Anything)
}

func TestFindSuitableAgentsQueryHandler_InvalidQueryReturnsError(t *testing.T) {
	handler := queries.NewFindSuitableAgentsQueryHandler(&mockDeliveryReader{}, &mockAgentReader{})

	result, err := handler.Handle(context.Background(), queries.FindSuitableAgentsQuery{})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, queries.ErrFindSuitableAgentsQueryIsNotConstructed)
}

func TestNewFindSuitableAgentsQuery_RequiresDeliveryID(t *testing.T) {
	_, err := queries.NewFindSuitableAgentsQuery(kernel.UUID{})

	require.Error(t, err)
}
