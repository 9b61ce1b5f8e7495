// Package http exposes the fleet simulation over a REST API.
// Handlers translate HTTP requests into commands and queries and map domain
// errors onto status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"fleetsim/internal/core/application/usecases/commands"
	"fleetsim/internal/core/application/usecases/queries"
	"fleetsim/internal/core/domain/model/courier"
	"fleetsim/internal/core/domain/services"
	"fleetsim/internal/pkg/errs"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addCourierHandler   commands.AddCourierCommandHandler
	seedFleetHandler    commands.SeedFleetCommandHandler
	simulateTickHandler commands.SimulateTickCommandHandler

	// Query handlers
	getFleetHandler           queries.GetFleetQueryHandler
	getFleetStatisticsHandler queries.GetFleetStatisticsQueryHandler
	findNearestHandler        queries.FindNearestCourierQueryHandler
	findWithinRadiusHandler   queries.FindCouriersWithinRadiusQueryHandler

	// Stateless sanitization engine for externally supplied records.
	validator services.Validator
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addCourierHandler commands.AddCourierCommandHandler,
	seedFleetHandler commands.SeedFleetCommandHandler,
	simulateTickHandler commands.SimulateTickCommandHandler,
	getFleetHandler queries.GetFleetQueryHandler,
	getFleetStatisticsHandler queries.GetFleetStatisticsQueryHandler,
	findNearestHandler queries.FindNearestCourierQueryHandler,
	findWithinRadiusHandler queries.FindCouriersWithinRadiusQueryHandler,
	validator services.Validator,
) *Server {
	return &Server{
		addCourierHandler:         addCourierHandler,
		seedFleetHandler:          seedFleetHandler,
		simulateTickHandler:       simulateTickHandler,
		getFleetHandler:           getFleetHandler,
		getFleetStatisticsHandler: getFleetStatisticsHandler,
		findNearestHandler:        findNearestHandler,
		findWithinRadiusHandler:   findWithinRadiusHandler,
		validator:                 validator,
	}
}

// RegisterRoutes attaches all API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)

	api := e.Group("/api/v1")
	api.GET("/fleet", s.GetFleet)
	api.GET("/fleet/statistics", s.GetFleetStatistics)
	api.GET("/fleet/nearest", s.FindNearestCourier)
	api.GET("/fleet/radius", s.FindCouriersWithinRadius)
	api.POST("/fleet/couriers", s.AddCourier)
	api.POST("/fleet/seed", s.SeedFleet)
	api.POST("/fleet/validate", s.ValidateFleet)
	api.POST("/simulation/tick", s.SimulateTick)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetFleet handles GET /api/v1/fleet - retrieves all couriers.
func (s *Server) GetFleet(ctx echo.Context) error {
	query := queries.NewGetFleetQuery()

	fleet, err := s.getFleetHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve fleet")
	}

	return ctx.JSON(http.StatusOK, fleet)
}

// GetFleetStatistics handles GET /api/v1/fleet/statistics - fleet summary.
func (s *Server) GetFleetStatistics(ctx echo.Context) error {
	query := queries.NewGetFleetStatisticsQuery()

	stats, err := s.getFleetStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve fleet statistics")
	}

	return ctx.JSON(http.StatusOK, stats)
}

// FindNearestCourier handles GET /api/v1/fleet/nearest?longitude=&latitude= -
// finds the courier closest to the given point.
func (s *Server) FindNearestCourier(ctx echo.Context) error {
	longitude, err := queryFloat(ctx, "longitude")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid longitude parameter")
	}
	latitude, err := queryFloat(ctx, "latitude")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid latitude parameter")
	}

	query, err := queries.NewFindNearestCourierQuery(longitude, latitude)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid target point: "+err.Error())
	}

	nearest, err := s.findNearestHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrValueIsRequired) {
			return errorJSON(ctx, http.StatusNotFound, "Fleet is empty")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to find nearest courier")
	}

	return ctx.JSON(http.StatusOK, nearest)
}

// FindCouriersWithinRadius handles GET /api/v1/fleet/radius?longitude=&latitude=&radiusKm= -
// lists couriers within the given great-circle radius.
func (s *Server) FindCouriersWithinRadius(ctx echo.Context) error {
	longitude, err := queryFloat(ctx, "longitude")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid longitude parameter")
	}
	latitude, err := queryFloat(ctx, "latitude")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid latitude parameter")
	}
	radiusKm, err := queryFloat(ctx, "radiusKm")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid radiusKm parameter")
	}

	query, err := queries.NewFindCouriersWithinRadiusQuery(longitude, latitude, radiusKm)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid radius query: "+err.Error())
	}

	couriers, err := s.findWithinRadiusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to search fleet")
	}

	return ctx.JSON(http.StatusOK, couriers)
}

// AddCourierRequest is the JSON body for POST /api/v1/fleet/couriers.
type AddCourierRequest struct {
	Name      string  `json:"name"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Status    string  `json:"status"`
}

// AddCourierResponse returns the id assigned to a newly registered courier.
type AddCourierResponse struct {
	ID string `json:"id"`
}

// AddCourier handles POST /api/v1/fleet/couriers - registers a new courier.
func (s *Server) AddCourier(ctx echo.Context) error {
	var request AddCourierRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := courier.ParseStatus(request.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewAddCourierCommand(request.Name, request.Longitude, request.Latitude, status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid courier data: "+err.Error())
	}

	if handleErr := s.addCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, http.StatusConflict, "Failed to register courier")
	}

	return ctx.JSON(http.StatusCreated, AddCourierResponse{ID: cmd.CourierID()})
}

// SeedFleetRequest is the JSON body for POST /api/v1/fleet/seed.
type SeedFleetRequest struct {
	Count int `json:"count"`
}

// SeedFleet handles POST /api/v1/fleet/seed - populates the fleet with
// couriers placed at known city landmarks.
func (s *Server) SeedFleet(ctx echo.Context) error {
	var request SeedFleetRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSeedFleetCommand(request.Count)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid seed request: "+err.Error())
	}

	if handleErr := s.seedFleetHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to seed fleet")
	}

	return ctx.NoContent(http.StatusCreated)
}

// ValidateFleet handles POST /api/v1/fleet/validate - checks and sanitizes a
// batch of externally supplied courier records without persisting anything.
// Results preserve input order; invalid records never abort the batch.
func (s *Server) ValidateFleet(ctx echo.Context) error {
	var records []courier.Courier
	if err := ctx.Bind(&records); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	return ctx.JSON(http.StatusOK, s.validator.ValidateFleet(records))
}

// SimulateTickRequest is the JSON body for POST /api/v1/simulation/tick.
type SimulateTickRequest struct {
	Timestamp             int64   `json:"timestamp"`
	TransitionProbability float64 `json:"transitionProbability"`
}

// SimulateTickResponse summarizes one completed simulation step.
type SimulateTickResponse struct {
	Timestamp         int64                    `json:"timestamp"`
	Statistics        services.FleetStatistics `json:"statistics"`
	PositionHash      uint32                   `json:"positionHash"`
	StateHash         uint32                   `json:"stateHash"`
	StatusTransitions uint32                   `json:"statusTransitions"`
	BoundsCorrections uint32                   `json:"boundsCorrections"`
}

// SimulateTick handles POST /api/v1/simulation/tick - advances the fleet one
// simulation step and returns the derived metrics.
func (s *Server) SimulateTick(ctx echo.Context) error {
	var request SimulateTickRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSimulateTickCommand(request.Timestamp, request.TransitionProbability)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid tick request: "+err.Error())
	}

	result, err := s.simulateTickHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Simulation tick failed")
	}

	return ctx.JSON(http.StatusOK, SimulateTickResponse{
		Timestamp:         result.Snapshot.Timestamp,
		Statistics:        result.Statistics,
		PositionHash:      result.PositionHash,
		StateHash:         result.StateHash,
		StatusTransitions: result.StatusTransitions,
		BoundsCorrections: result.BoundsCorrections,
	})
}

// queryFloat parses a required float query parameter.
func queryFloat(ctx echo.Context, name string) (float64, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, errs.NewValueIsRequiredError(name)
	}
	return strconv.ParseFloat(raw, 64)
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
