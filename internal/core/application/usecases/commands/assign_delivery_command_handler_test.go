package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

func TestAssignDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := testDelivery(t)
	a := testAgent(t)
	cmd, err := commands.NewAssignDeliveryCommand(d.ID(), a.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("AgentRepository").Return(agentRepo).Once()
	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	agentRepo.On("Get", mock.Anything, a.ID()).Return(a, nil).Once()
	deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once()
	agentRepo.On("Update", mock.Anything, a).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, delivery.StatusAssigned, d.Status())
	require.NotNil(t, d.AssignedAgent())
	assert.True(t, d.AssignedAgent().IsEqual(a.ID()))
	assert.Contains(t, a.AssignedDeliveries(), d.ID())
	uow.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
}

func TestAssignDeliveryCommandHandler_Handle_AgentCannotHandle(t *testing.T) {
	ctx := t.Context()

	// Available agent, but the package exceeds the car's weight ceiling.
	window, err := kernel.NewTimeWindow(
		time.Now().UTC().Add(time.Hour),
		time.Now().UTC().Add(4*time.Hour),
	)
	require.NoError(t, err)
	oversized, err := delivery.NewPackageSize(300, 1.0)
	require.NoError(t, err)
	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		testLocation(t, 52.52, 13.40),
		testLocation(t, 52.53, 13.41),
		window,
		oversized,
		delivery.PriorityStandard,
	)
	require.NoError(t, err)

	a := testAgent(t)
	cmd, err := commands.NewAssignDeliveryCommand(d.ID(), a.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("AgentRepository").Return(agentRepo).Once()
	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	agentRepo.On("Get", mock.Anything, a.ID()).Return(a, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAgentCannotHandleDelivery)
	assert.Equal(t, delivery.StatusCreated, d.Status())
	assert.Empty(t, a.AssignedDeliveries())
}

func TestAssignDeliveryCommandHandler_Handle_AgentNotAvailable(t *testing.T) {
	ctx := t.Context()
	d := testDelivery(t)
	a := testAgent(t)
	require.NoError(t, a.UpdateStatus(agent.StatusOffline))
	cmd, err := commands.NewAssignDeliveryCommand(d.ID(), a.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("AgentRepository").Return(agentRepo).Once()
	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	agentRepo.On("Get", mock.Anything, a.ID()).Return(a, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	// An unavailable agent is reported as such, not as a generic
	// eligibility failure.
	require.ErrorIs(t, err, agent.ErrAgentNotAvailable)
	assert.NotErrorIs(t, err, commands.ErrAgentCannotHandleDelivery)
	assert.Equal(t, delivery.StatusCreated, d.Status())
	assert.Empty(t, a.AssignedDeliveries())
}

func TestAssignDeliveryCommandHandler_Handle_DeliveryNotFound(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewAssignDeliveryCommand(deliveryID, kernel.NewUUID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("AgentRepository").Return(agentRepo).Once()
	deliveryRepo.On("Get", mock.Anything, deliveryID).
		Return(nil, errs.NewObjectNotFoundError("deliveryId", deliveryID)).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
