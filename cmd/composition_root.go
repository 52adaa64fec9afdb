package cmd

import (
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

// CompositionRoot wires infrastructure into use-case handlers. Each
// Create* method hands out a fresh handler bound to the shared database.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) agentUoWFactory() commands.AgentUoWFactory {
	return FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCreateAgentCommandHandler() commands.CreateAgentCommandHandler {
	return commands.NewCreateAgentCommandHandler(c.agentUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateAssignBestAgentCommandHandler() commands.AssignBestAgentCommandHandler {
	return commands.NewAssignBestAgentCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreatePickUpDeliveryCommandHandler() commands.PickUpDeliveryCommandHandler {
	return commands.NewPickUpDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	return commands.NewCancelDeliveryCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateFailDeliveryCommandHandler() commands.FailDeliveryCommandHandler {
	return commands.NewFailDeliveryCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateChangeDeliveryPriorityCommandHandler() commands.ChangeDeliveryPriorityCommandHandler {
	return commands.NewChangeDeliveryPriorityCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAgentLocationCommandHandler() commands.UpdateAgentLocationCommandHandler {
	return commands.NewUpdateAgentLocationCommandHandler(c.agentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateAgentStatusCommandHandler() commands.UpdateAgentStatusCommandHandler {
	return commands.NewUpdateAgentStatusCommandHandler(c.agentUoWFactory())
}

func (c *CompositionRoot) CreateRateAgentCommandHandler() commands.RateAgentCommandHandler {
	return commands.NewRateAgentCommandHandler(c.agentUoWFactory())
}

func (c *CompositionRoot) CreateGetPendingDeliveriesQueryHandler() queries.GetPendingDeliveriesQueryHandler {
	return queries.NewGetPendingDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllAgentsQueryHandler() queries.GetAllAgentsQueryHandler {
	return queries.NewGetAllAgentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindSuitableAgentsQueryHandler() queries.FindSuitableAgentsQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewFindSuitableAgentsQueryHandler(uow.DeliveryRepository(), uow.AgentRepository())
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
