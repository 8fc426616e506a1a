package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/fleet"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// PlanRoute handles POST /api/v1/routing.
// The end location defaults to the start location.
//
// @Summary  Sequence delivery stops into a vehicle route
// @Tags     routing
// @Accept   json
// @Produce  json
// @Param    request body PlanRouteRequest true "Vehicle and deliveries"
// @Success  200 {object} PlanRouteResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/v1/routing [post]
func (s *Server) PlanRoute(c echo.Context) error {
	var req PlanRouteRequest
	if err := s.bind(c, &req); err != nil {
		return badRequest(c, err)
	}

	vehicleID, err := kernel.UUIDFromString(req.VehicleID)
	if err != nil {
		return badRequest(c, err)
	}

	rawIDs := make([]string, len(req.Deliveries))
	for i, d := range req.Deliveries {
		rawIDs[i] = d.AppointmentID
	}
	appointmentIDs, err := kernel.UUIDsFromStrings(rawIDs)
	if err != nil {
		return badRequest(c, err)
	}

	start, err := req.StartLocation.toDomain()
	if err != nil {
		return badRequest(c, err)
	}
	end := start
	if req.EndLocation != nil {
		if end, err = req.EndLocation.toDomain(); err != nil {
			return badRequest(c, err)
		}
	}

	constraints := fleet.Constraints{
		MaxDistanceKm:      req.Constraints.MaxDistance,
		MaxDurationMin:     req.Constraints.MaxDuration,
		PrioritizeUrgent:   req.Constraints.PrioritizeUrgent,
		RespectTimeWindows: req.Constraints.RespectTimeWindows,
	}

	cmd, err := commands.NewPlanRouteCommand(vehicleID, appointmentIDs, start, end, constraints)
	if err != nil {
		return badRequest(c, err)
	}

	plan, err := s.handlers.PlanRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to calculate route")
	}

	return c.JSON(http.StatusOK, planResponse(plan))
}

func planResponse(plan *fleet.Plan) PlanRouteResponse {
	response := PlanRouteResponse{
		RouteID:          plan.ID().String(),
		VehicleID:        plan.VehicleID().String(),
		Deliveries:       make([]RouteStopResponse, 0, plan.Included()),
		Dropped:          make([]DroppedStopResponse, 0, plan.Dropped()),
		TotalDistanceKm:  plan.TotalDistanceKm(),
		TotalDurationMin: plan.TotalDurationMin(),
		StartTime:        plan.StartTime(),
		EndTime:          plan.EndTime(),
	}

	for _, stop := range plan.Stops() {
		response.Deliveries = append(response.Deliveries, RouteStopResponse{
			AppointmentID:    stop.StopID.String(),
			Location:         locationFromDomain(stop.Location),
			Type:             string(stop.Type),
			Priority:         stop.Priority,
			DistanceKm:       stop.LegDistanceKm,
			DurationMin:      stop.LegDurationMin,
			EstimatedArrival: stop.EstimatedArrival,
		})
	}
	for _, d := range plan.DroppedStops() {
		response.Dropped = append(response.Dropped, DroppedStopResponse{
			AppointmentID: d.StopID.String(),
			Reason:        string(d.Reason),
		})
	}

	return response
}
