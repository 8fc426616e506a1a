package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/fleet"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListVehicles handles GET /api/v1/vehicles.
//
// @Summary  List fleet vehicles
// @Tags     fleet
// @Produce  json
// @Param    type   query string false "Vehicle type"
// @Param    status query string false "Vehicle status"
// @Param    page   query int    false "Page, from 1"
// @Param    limit  query int    false "Page size, at most 100"
// @Success  200 {object} VehicleListResponse
// @Failure  400 {object} ErrorResponse
// @Router   /api/v1/vehicles [get]
func (s *Server) ListVehicles(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return badRequest(c, err)
	}

	query := queries.NewListVehiclesQuery(c.QueryParam("type"), c.QueryParam("status"), page)
	result, err := s.handlers.ListVehicles.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to retrieve vehicles")
	}

	response := VehicleListResponse{
		Data:       make([]VehicleResponse, len(result.Items)),
		Pagination: paginationResponse(result),
	}
	for i, v := range result.Items {
		response.Data[i] = VehicleResponse{
			ID:                 v.ID.String(),
			RegistrationNumber: v.RegistrationNumber,
			Type:               v.Type,
			Capacity:           v.Capacity,
			Status:             v.Status,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// CreateVehicle handles POST /api/v1/vehicles.
//
// @Summary  Register a fleet vehicle
// @Tags     fleet
// @Accept   json
// @Produce  json
// @Param    request body CreateVehicleRequest true "Vehicle"
// @Success  201 {object} VehicleResponse
// @Failure  400 {object} ErrorResponse
// @Failure  409 {object} ErrorResponse
// @Router   /api/v1/vehicles [post]
func (s *Server) CreateVehicle(c echo.Context) error {
	var req CreateVehicleRequest
	if err := s.bind(c, &req); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewCreateVehicleCommand(
		req.RegistrationNumber,
		fleet.VehicleType(req.Type),
		req.Capacity,
		fleet.VehicleStatus(req.Status),
	)
	if err != nil {
		return badRequest(c, err)
	}

	v, err := s.handlers.CreateVehicle.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to create vehicle")
	}

	s.log.Info("vehicle registered",
		zap.String("vehicle_id", v.ID().String()),
		zap.String("registration_number", v.RegistrationNumber()))

	return c.JSON(http.StatusCreated, VehicleResponse{
		ID:                 v.ID().String(),
		RegistrationNumber: v.RegistrationNumber(),
		Type:               string(v.Type()),
		Capacity:           v.Capacity(),
		Status:             string(v.Status()),
	})
}
