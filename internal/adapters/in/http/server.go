// Package http exposes the dispatch use cases over a REST API. The server
// translates request bodies into command and query objects, delegates to the
// application layer, and maps domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/agent"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createDeliveryHandler commands.CreateDeliveryCommandHandler
	createAgentHandler    commands.CreateAgentCommandHandler
	assignDeliveryHandler commands.AssignDeliveryCommandHandler
	assignBestHandler     commands.AssignBestAgentCommandHandler
	pickUpHandler         commands.PickUpDeliveryCommandHandler
	completeHandler       commands.CompleteDeliveryCommandHandler
	cancelHandler         commands.CancelDeliveryCommandHandler
	failHandler           commands.FailDeliveryCommandHandler
	changePriorityHandler commands.ChangeDeliveryPriorityCommandHandler
	updateLocationHandler commands.UpdateAgentLocationCommandHandler
	updateStatusHandler   commands.UpdateAgentStatusCommandHandler
	rateAgentHandler      commands.RateAgentCommandHandler

	pendingDeliveriesHandler queries.GetPendingDeliveriesQueryHandler
	allAgentsHandler         queries.GetAllAgentsQueryHandler
	suitableAgentsHandler    queries.FindSuitableAgentsQueryHandler

	validate *validator.Validate
}

// NewServer creates an HTTP server wired to the given command and query
// handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	createAgentHandler commands.CreateAgentCommandHandler,
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	assignBestHandler commands.AssignBestAgentCommandHandler,
	pickUpHandler commands.PickUpDeliveryCommandHandler,
	completeHandler commands.CompleteDeliveryCommandHandler,
	cancelHandler commands.CancelDeliveryCommandHandler,
	failHandler commands.FailDeliveryCommandHandler,
	changePriorityHandler commands.ChangeDeliveryPriorityCommandHandler,
	updateLocationHandler commands.UpdateAgentLocationCommandHandler,
	updateStatusHandler commands.UpdateAgentStatusCommandHandler,
	rateAgentHandler commands.RateAgentCommandHandler,
	pendingDeliveriesHandler queries.GetPendingDeliveriesQueryHandler,
	allAgentsHandler queries.GetAllAgentsQueryHandler,
	suitableAgentsHandler queries.FindSuitableAgentsQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:    createDeliveryHandler,
		createAgentHandler:       createAgentHandler,
		assignDeliveryHandler:    assignDeliveryHandler,
		assignBestHandler:        assignBestHandler,
		pickUpHandler:            pickUpHandler,
		completeHandler:          completeHandler,
		cancelHandler:            cancelHandler,
		failHandler:              failHandler,
		changePriorityHandler:    changePriorityHandler,
		updateLocationHandler:    updateLocationHandler,
		updateStatusHandler:      updateStatusHandler,
		rateAgentHandler:         rateAgentHandler,
		pendingDeliveriesHandler: pendingDeliveriesHandler,
		allAgentsHandler:         allAgentsHandler,
		suitableAgentsHandler:    suitableAgentsHandler,
		validate:                 validator.New(),
	}
}

// RegisterRoutes mounts all endpoints under /api/v1 plus the health probe.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/deliveries", s.CreateDelivery)
	v1.GET("/deliveries/pending", s.GetPendingDeliveries)
	v1.POST("/deliveries/:id/assign", s.AssignDelivery)
	v1.POST("/deliveries/:id/assign-best", s.AssignBestAgent)
	v1.POST("/deliveries/:id/pickup", s.PickUpDelivery)
	v1.POST("/deliveries/:id/complete", s.CompleteDelivery)
	v1.POST("/deliveries/:id/cancel", s.CancelDelivery)
	v1.POST("/deliveries/:id/fail", s.FailDelivery)
	v1.POST("/deliveries/:id/priority", s.ChangeDeliveryPriority)
	v1.GET("/deliveries/:id/suitable-agents", s.FindSuitableAgents)

	v1.POST("/agents", s.CreateAgent)
	v1.GET("/agents", s.GetAllAgents)
	v1.POST("/agents/:id/location", s.UpdateAgentLocation)
	v1.POST("/agents/:id/status", s.UpdateAgentStatus)
	v1.POST("/agents/:id/rating", s.RateAgent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var req CreateDeliveryRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, err)
	}

	pickup, err := kernel.NewLocation(req.Pickup.Latitude, req.Pickup.Longitude)
	if err != nil {
		return badRequest(ctx, err)
	}

	dropoff, err := kernel.NewLocation(req.Dropoff.Latitude, req.Dropoff.Longitude)
	if err != nil {
		return badRequest(ctx, err)
	}

	window, err := kernel.NewTimeWindow(req.WindowStart, req.WindowEnd)
	if err != nil {
		return badRequest(ctx, err)
	}

	size, err := delivery.NewPackageSize(req.WeightKg, req.VolumeM3)
	if err != nil {
		return badRequest(ctx, err)
	}

	priority := delivery.PriorityStandard
	if req.Priority != "" {
		priority, err = delivery.PriorityFromString(req.Priority)
		if err != nil {
			return badRequest(ctx, err)
		}
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(
		deliveryID, customerID, pickup, dropoff, window, size, priority)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

// CreateAgent handles POST /api/v1/agents.
func (s *Server) CreateAgent(ctx echo.Context) error {
	var req CreateAgentRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	vehicleType, err := kernel.VehicleTypeFromString(req.VehicleType)
	if err != nil {
		return badRequest(ctx, err)
	}

	location, err := kernel.NewLocation(req.Location.Latitude, req.Location.Longitude)
	if err != nil {
		return badRequest(ctx, err)
	}

	vertices := make([]kernel.Location, 0, len(req.ServiceArea))
	for _, v := range req.ServiceArea {
		vertex, vErr := kernel.NewLocation(v.Latitude, v.Longitude)
		if vErr != nil {
			return badRequest(ctx, vErr)
		}
		vertices = append(vertices, vertex)
	}

	area, err := kernel.NewServiceArea(vertices)
	if err != nil {
		return badRequest(ctx, err)
	}

	capacity, err := agent.NewCapacity(req.Capacity)
	if err != nil {
		return badRequest(ctx, err)
	}

	maxDistance, err := agent.NewMaxDistance(req.MaxDistanceKm)
	if err != nil {
		return badRequest(ctx, err)
	}

	agentID := kernel.NewUUID()
	cmd, err := commands.NewCreateAgentCommand(
		agentID, req.Name, vehicleType, location, area, capacity, maxDistance)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err := s.createAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: agentID.String()})
}

// AssignDelivery handles POST /api/v1/deliveries/:id/assign.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	deliveryID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req AssignDeliveryRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignDeliveryCommand(deliveryID, agentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignBestAgent handles POST /api/v1/deliveries/:id/assign-best.
func (s *Server) AssignBestAgent(ctx echo.Context) error {
	deliveryID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignBestAgentCommand(deliveryID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.assignBestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// PickUpDelivery handles POST /api/v1/deliveries/:id/pickup.
func (s *Server) PickUpDelivery(ctx echo.Context) error {
	deliveryID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewPickUpDeliveryCommand(deliveryID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.pickUpHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CompleteDelivery handles POST /api/v1/deliveries/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	deliveryID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.completeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelDelivery handles POST /api/v1/deliveries/:id/cancel.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req CancelDeliveryRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, req.Reason)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.cancelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// FailDelivery handles POST /api/v1/deliveries/:id/fail.
func (s *Server) FailDelivery(ctx echo.Context) error {
	deliveryID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req FailDeliveryRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewFailDeliveryCommand(deliveryID, req.Reason)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.failHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangeDeliveryPriority handles POST /api/v1/deliveries/:id/priority.
func (s *Server) ChangeDeliveryPriority(ctx echo.Context) error {
	deliveryID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req ChangePriorityRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	priority, err := delivery.PriorityFromString(req.Priority)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewChangeDeliveryPriorityCommand(deliveryID, priority)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.changePriorityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateAgentLocation handles POST /api/v1/agents/:id/location.
func (s *Server) UpdateAgentLocation(ctx echo.Context) error {
	agentID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateAgentLocationRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	location, err := kernel.NewLocation(req.Latitude, req.Longitude)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateAgentLocationCommand(agentID, location)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.updateLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UpdateAgentStatus handles POST /api/v1/agents/:id/status.
func (s *Server) UpdateAgentStatus(ctx echo.Context) error {
	agentID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateAgentStatusRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	status, err := agent.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateAgentStatusCommand(agentID, status)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RateAgent handles POST /api/v1/agents/:id/rating.
func (s *Server) RateAgent(ctx echo.Context) error {
	agentID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req RateAgentRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRateAgentCommand(agentID, req.Score)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.rateAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetPendingDeliveries handles GET /api/v1/deliveries/pending.
func (s *Server) GetPendingDeliveries(ctx echo.Context) error {
	pending, err := s.pendingDeliveriesHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingDeliveriesQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]PendingDeliveryResponse, len(pending))
	for i, d := range pending {
		response[i] = PendingDeliveryResponse{
			ID:         d.ID.String(),
			CustomerID: d.CustomerID.String(),
			Pickup: LocationDTO{
				Latitude:  d.PickupLocation.Latitude(),
				Longitude: d.PickupLocation.Longitude(),
			},
			Dropoff: LocationDTO{
				Latitude:  d.DropoffLocation.Latitude(),
				Longitude: d.DropoffLocation.Longitude(),
			},
			Priority:  d.Priority.String(),
			Status:    d.Status.String(),
			CreatedAt: d.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAllAgents handles GET /api/v1/agents.
func (s *Server) GetAllAgents(ctx echo.Context) error {
	agents, err := s.allAgentsHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllAgentsQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]AgentResponse, len(agents))
	for i, a := range agents {
		response[i] = AgentResponse{
			ID:          a.ID.String(),
			Name:        a.Name,
			VehicleType: a.VehicleType.String(),
			Location: LocationDTO{
				Latitude:  a.Location.Latitude(),
				Longitude: a.Location.Longitude(),
			},
			Status:        a.Status.String(),
			Workload:      a.Workload,
			RatingAverage: a.RatingAverage,
			RatingCount:   a.RatingCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// FindSuitableAgents handles GET /api/v1/deliveries/:id/suitable-agents.
func (s *Server) FindSuitableAgents(ctx echo.Context) error {
	deliveryID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewFindSuitableAgentsQuery(deliveryID)
	if err != nil {
		return badRequest(ctx, err)
	}

	suitable, err := s.suitableAgentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	agentIDs := make([]string, len(suitable))
	for i, id := range suitable {
		agentIDs[i] = id.String()
	}

	return ctx.JSON(http.StatusOK, SuitableAgentsResponse{AgentIDs: agentIDs})
}

// bind decodes the request body and validates it against the DTO's tags.
func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return s.validate.Struct(req)
}

// pathID parses the :id path parameter as a UUID.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// badRequest reports a malformed or invalid request body.
func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// domainError maps application-layer failures onto HTTP status codes:
// missing aggregates become 404, business-rule conflicts 409, and anything
// else an opaque 500.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, commands.ErrNoAvailableAgents),
		errors.Is(err, commands.ErrAgentCannotHandleDelivery),
		errors.Is(err, services.ErrAgentNotFound),
		errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, agent.ErrAgentNotAvailable),
		errors.Is(err, agent.ErrAgentBusyWithoutDeliveries),
		errors.Is(err, agent.ErrDeliveryAlreadyAssigned),
		errors.Is(err, agent.ErrDeliveryNotAssignedToAgent):
		code = http.StatusConflict
		message = err.Error()
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
