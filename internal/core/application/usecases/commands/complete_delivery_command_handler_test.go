package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/delivery"
)

// assignedPair returns a delivery in InTransit carried by the agent,
// ready for completion.
func assignedPair(t *testing.T) (*delivery.Delivery, *agent.DeliveryAgent) {
	t.Helper()

	d := testDelivery(t)
	a := testAgent(t)
	require.NoError(t, d.AssignToAgent(a.ID()))
	require.NoError(t, a.AssignDelivery(d.ID()))
	require.NoError(t, d.MarkAsPickedUp())
	return d, a
}

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d, a := assignedPair(t)
	cmd, err := commands.NewCompleteDeliveryCommand(d.ID())
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

	h := commands.NewCompleteDeliveryCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, delivery.StatusCompleted, d.Status())
	assert.NotNil(t, d.DeliveryTime())
	assert.Empty(t, a.AssignedDeliveries())
	assert.Equal(t, agent.StatusAvailable, a.Status())
}

func TestCompleteDeliveryCommandHandler_Handle_NotInTransit(t *testing.T) {
	ctx := t.Context()
	d := testDelivery(t)
	cmd, err := commands.NewCompleteDeliveryCommand(d.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo).Once()
	uow.On("AgentRepository").Return(agentRepo).Once()
	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, delivery.StatusCreated, d.Status())
}
