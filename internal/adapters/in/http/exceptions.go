package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/exception"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ReportException handles POST /api/v1/exceptions.
//
// @Summary  Record a delivery exception and apply its remedy
// @Tags     exceptions
// @Accept   json
// @Produce  json
// @Param    request body ReportExceptionRequest true "Exception"
// @Success  200 {object} ReportExceptionResponse
// @Failure  400 {object} ErrorResponse
// @Failure  404 {object} ErrorResponse
// @Router   /api/v1/exceptions [post]
func (s *Server) ReportException(c echo.Context) error {
	var req ReportExceptionRequest
	if err := s.bind(c, &req); err != nil {
		return badRequest(c, err)
	}

	appointmentID, err := kernel.UUIDFromString(req.AppointmentID)
	if err != nil {
		return badRequest(c, err)
	}
	severity, err := exception.ParseSeverity(req.Severity)
	if err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewReportExceptionCommand(appointmentID, exception.Type(req.Type), req.Description, severity)
	if err != nil {
		return badRequest(c, err)
	}

	result, err := s.handlers.ReportException.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to process exception")
	}

	exc := result.Exception
	s.log.Info("exception processed",
		zap.String("exception_id", exc.ID().String()),
		zap.String("status", exc.Status().String()),
		zap.Bool("failed", result.Resolution.Failed))

	return c.JSON(http.StatusOK, ReportExceptionResponse{
		ExceptionID: exc.ID().String(),
		Status:      exc.Status().String(),
		Resolution:  exc.Resolution(),
		Escalated:   result.Resolution.Escalated,
		HandledAt:   exc.HandledAt(),
	})
}
