package http

import (
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var errInvalidDate = errors.New("date must be RFC 3339 or YYYY-MM-DD")

// ListAppointments handles GET /api/v1/appointments.
//
// @Summary  List appointments by date
// @Tags     appointments
// @Produce  json
// @Param    status query string false "Appointment status"
// @Param    date   query string false "Only appointments on or after this date"
// @Param    page   query int    false "Page, from 1"
// @Param    limit  query int    false "Page size, at most 100"
// @Success  200 {object} AppointmentListResponse
// @Failure  400 {object} ErrorResponse
// @Router   /api/v1/appointments [get]
func (s *Server) ListAppointments(c echo.Context) error {
	page, err := pageParams(c)
	if err != nil {
		return badRequest(c, err)
	}
	from, err := parseDate(c.QueryParam("date"))
	if err != nil {
		return badRequest(c, err)
	}

	result, err := s.handlers.Appointments.List(c.Request().Context(),
		queries.NewListAppointmentsQuery(c.QueryParam("status"), from, page))
	if err != nil {
		return s.fail(c, err, "Failed to retrieve appointments")
	}

	response := AppointmentListResponse{
		Data:       make([]AppointmentResponse, len(result.Items)),
		Pagination: paginationResponse(result),
	}
	for i, row := range result.Items {
		response.Data[i] = appointmentRowResponse(row)
	}

	return c.JSON(http.StatusOK, response)
}

// GetAppointment handles GET /api/v1/appointments/:id.
//
// @Summary  Read one appointment
// @Tags     appointments
// @Produce  json
// @Param    id path string true "Appointment ID"
// @Success  200 {object} AppointmentResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/v1/appointments/{id} [get]
func (s *Server) GetAppointment(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}
	query, err := queries.NewGetAppointmentQuery(id)
	if err != nil {
		return badRequest(c, err)
	}

	row, err := s.handlers.Appointments.Get(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to retrieve appointment")
	}

	return c.JSON(http.StatusOK, appointmentRowResponse(*row))
}

// CreateAppointment handles POST /api/v1/appointments.
//
// @Summary  Book an appointment for a customer
// @Tags     appointments
// @Accept   json
// @Produce  json
// @Param    request body CreateAppointmentRequest true "Appointment"
// @Success  201 {object} AppointmentResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/v1/appointments [post]
func (s *Server) CreateAppointment(c echo.Context) error {
	var req CreateAppointmentRequest
	if err := s.bind(c, &req); err != nil {
		return badRequest(c, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(c, err)
	}
	details, err := req.toDetails()
	if err != nil {
		return badRequest(c, err)
	}
	cmd, err := commands.NewCreateAppointmentCommand(customerID, details)
	if err != nil {
		return badRequest(c, err)
	}

	a, err := s.handlers.CreateAppointment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to create appointment")
	}

	s.log.Info("appointment booked",
		zap.String("appointment_id", a.ID().String()),
		zap.String("customer_id", a.CustomerID().String()))

	return c.JSON(http.StatusCreated, appointmentResponse(a))
}

// UpdateAppointment handles PUT /api/v1/appointments/:id.
//
// @Summary  Reschedule an appointment
// @Tags     appointments
// @Accept   json
// @Produce  json
// @Param    id      path string                   true "Appointment ID"
// @Param    request body UpdateAppointmentRequest true "New details"
// @Success  200 {object} AppointmentResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/v1/appointments/{id} [put]
func (s *Server) UpdateAppointment(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	var req UpdateAppointmentRequest
	if err = s.bind(c, &req); err != nil {
		return badRequest(c, err)
	}
	details, err := req.toDetails()
	if err != nil {
		return badRequest(c, err)
	}
	cmd, err := commands.NewUpdateAppointmentCommand(id, details, appointment.Status(req.Status))
	if err != nil {
		return badRequest(c, err)
	}

	a, err := s.handlers.UpdateAppointment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to update appointment")
	}

	return c.JSON(http.StatusOK, appointmentResponse(a))
}

// ChangeAppointmentStatus handles PATCH /api/v1/appointments/:id.
//
// @Summary  Change the status of an appointment
// @Tags     appointments
// @Accept   json
// @Produce  json
// @Param    id      path string                         true "Appointment ID"
// @Param    request body ChangeAppointmentStatusRequest true "New status"
// @Success  200 {object} AppointmentResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/v1/appointments/{id} [patch]
func (s *Server) ChangeAppointmentStatus(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}

	var req ChangeAppointmentStatusRequest
	if err = s.bind(c, &req); err != nil {
		return badRequest(c, err)
	}
	cmd, err := commands.NewChangeAppointmentStatusCommand(id, appointment.Status(req.Status))
	if err != nil {
		return badRequest(c, err)
	}

	a, err := s.handlers.UpdateAppointment.ChangeStatus(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to update appointment status")
	}

	return c.JSON(http.StatusOK, appointmentResponse(a))
}

// DeleteAppointment handles DELETE /api/v1/appointments/:id.
//
// @Summary  Delete an appointment
// @Tags     appointments
// @Param    id path string true "Appointment ID"
// @Success  204
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/v1/appointments/{id} [delete]
func (s *Server) DeleteAppointment(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, err)
	}
	cmd, err := commands.NewDeleteAppointmentCommand(id)
	if err != nil {
		return badRequest(c, err)
	}

	if err = s.handlers.UpdateAppointment.Delete(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, "Failed to delete appointment")
	}

	return c.NoContent(http.StatusNoContent)
}

func (r AppointmentRequest) toDetails() (commands.AppointmentDetails, error) {
	loc, err := r.Location.toDomain()
	if err != nil {
		return commands.AppointmentDetails{}, err
	}
	return commands.AppointmentDetails{
		Date:     r.Date,
		Location: loc,
		Type:     appointment.Type(r.Type),
		Priority: r.Priority,
		Notes:    r.Notes,
	}, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return t, nil
}

func appointmentResponse(a *appointment.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:         a.ID().String(),
		CustomerID: a.CustomerID().String(),
		Date:       a.Date(),
		Location:   appointmentLocationFromDomain(a.Location()),
		Type:       string(a.Type()),
		Status:     a.Status().String(),
		Priority:   a.Priority(),
		Notes:      a.Notes(),
	}
}

func appointmentRowResponse(row queries.AppointmentRow) AppointmentResponse {
	return AppointmentResponse{
		ID:         row.ID.String(),
		CustomerID: row.CustomerID.String(),
		Date:       row.Date,
		Location:   appointmentLocationFromDomain(row.Location),
		Type:       row.Type,
		Status:     row.Status,
		Priority:   row.Priority,
		Notes:      row.Notes,
	}
}
