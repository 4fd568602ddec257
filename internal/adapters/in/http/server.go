// Package http exposes the delivery lifecycle over a REST API.
//
// The acting user is identified by the X-User-Id and X-User-Role request
// headers. Role checks themselves live in the domain access policy; the
// server only parses the headers into an Actor and maps domain errors
// onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler commands.CreateDeliveryCommandHandler
	assignDriverHandler   commands.AssignDriverCommandHandler
	updateStatusHandler   commands.UpdateStatusCommandHandler

	// Query handlers
	getDeliveryHandler      queries.GetDeliveryQueryHandler
	listDeliveriesHandler   queries.ListDeliveriesQueryHandler
	getStatusHistoryHandler queries.GetStatusHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	updateStatusHandler commands.UpdateStatusCommandHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	listDeliveriesHandler queries.ListDeliveriesQueryHandler,
	getStatusHistoryHandler queries.GetStatusHistoryQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:   createDeliveryHandler,
		assignDriverHandler:     assignDriverHandler,
		updateStatusHandler:     updateStatusHandler,
		getDeliveryHandler:      getDeliveryHandler,
		listDeliveriesHandler:   listDeliveriesHandler,
		getStatusHistoryHandler: getStatusHistoryHandler,
	}
}

// RegisterRoutes attaches all delivery endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/deliveries", s.CreateDelivery)
	e.GET("/api/deliveries", s.GetDeliveries)
	e.GET("/api/deliveries/:deliveryId", s.GetDelivery)
	e.PUT("/api/deliveries/:deliveryId/assign-driver/:driverId", s.AssignDriver)
	e.PUT("/api/deliveries/:deliveryId/status", s.UpdateStatus)
	e.GET("/api/deliveries/:deliveryId/history", s.GetStatusHistory)
}

// CreateDelivery handles POST /api/deliveries - creates a new delivery
// owned by the acting user.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var req CreateDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	// An omitted priority defaults to MEDIUM
	priority := delivery.Medium
	if req.Priority != "" {
		priority, err = delivery.PriorityFromString(req.Priority)
		if err != nil {
			return s.errorResponse(ctx, err)
		}
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		kernel.NewUUID(), actor.ID(),
		req.PickupAddress, req.DropAddress,
		req.CustomerName, req.CustomerPhone,
		req.Weight, priority, req.Notes,
	)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	created, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, deliveryFromAggregate(created))
}

// GetDeliveries handles GET /api/deliveries - lists the deliveries visible
// to the acting user's role.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewListDeliveriesQuery(actor)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	deliveries, err := s.listDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]Delivery, len(deliveries))
	for i, row := range deliveries {
		response[i] = deliveryFromResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDelivery handles GET /api/deliveries/:deliveryId - retrieves one delivery.
func (s *Server) GetDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewGetDeliveryQuery(deliveryID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	resp, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryFromResponse(resp))
}

// AssignDriver handles PUT /api/deliveries/:deliveryId/assign-driver/:driverId -
// binds a driver to a delivery. Only admins may assign drivers.
func (s *Server) AssignDriver(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	driverID, err := kernel.UUIDFromString(ctx.Param("driverId"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(deliveryID, driverID, actor)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	updated, err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryFromAggregate(updated))
}

// UpdateStatus handles PUT /api/deliveries/:deliveryId/status - applies a
// status transition and appends a history entry.
func (s *Server) UpdateStatus(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	newStatus, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateStatusCommand(
		deliveryID, newStatus, req.ActualDistanceKm, req.ActualCost, actor.ID(),
	)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveryFromAggregate(updated))
}

// GetStatusHistory handles GET /api/deliveries/:deliveryId/history -
// returns the delivery's status history, most recent change first.
func (s *Server) GetStatusHistory(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryId"))
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewGetStatusHistoryQuery(deliveryID)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	history, err := s.getStatusHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response := make([]StatusChange, len(history))
	for i, row := range history {
		response[i] = statusChangeFromResponse(row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// actorFromRequest builds the acting user from the identity headers.
func (s *Server) actorFromRequest(ctx echo.Context) (account.Actor, error) {
	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return account.Actor{}, err
	}

	role, err := account.RoleFromString(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return account.Actor{}, err
	}

	return account.NewActor(userID, role)
}

// errorResponse maps domain errors onto HTTP status codes.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrActionNotAllowed):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrInvalidRole):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
