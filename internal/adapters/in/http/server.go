// Package http exposes the dispatch use cases over a JSON REST API built on echo.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/fleet"
	"dispatch/internal/core/domain/model/notification"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type (
	SelectPartnerHandler interface {
		Handle(ctx context.Context, cmd commands.SelectPartnerCommand) (commands.SelectPartnerResult, error)
	}
	QuotePriceHandler interface {
		Handle(ctx context.Context, cmd commands.QuotePriceCommand) (*pricing.Quote, error)
	}
	PlanRouteHandler interface {
		Handle(ctx context.Context, cmd commands.PlanRouteCommand) (*fleet.Plan, error)
	}
	ReportExceptionHandler interface {
		Handle(ctx context.Context, cmd commands.ReportExceptionCommand) (commands.ReportExceptionResult, error)
	}
	SendNotificationHandler interface {
		Handle(ctx context.Context, cmd commands.SendNotificationCommand) (*notification.Notification, error)
	}
	UpdatePartnerStateHandler interface {
		Handle(ctx context.Context, cmd commands.UpdatePartnerStateCommand) (*partner.ServiceState, error)
	}
	GetPartnerStateHandler interface {
		Handle(ctx context.Context, query queries.GetPartnerStateQuery) (*queries.GetPartnerStateQueryResponse, error)
	}
	ListPartnersHandler interface {
		Handle(ctx context.Context, query queries.ListPartnersQuery) ([]queries.ListPartnersQueryResponse, error)
	}
	CreatePartnerHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePartnerCommand) (*partner.Partner, error)
	}
	UpdateRegionDemandHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateRegionDemandCommand) (pricing.RegionDemand, error)
	}
	CreateVehicleHandler interface {
		Handle(ctx context.Context, cmd commands.CreateVehicleCommand) (*fleet.Vehicle, error)
	}
	ListVehiclesHandler interface {
		Handle(ctx context.Context, query queries.ListVehiclesQuery) (queries.Paged[queries.VehicleRow], error)
	}
	CreateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) (*appointment.Customer, error)
	}
	ListCustomersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomersQuery) (queries.Paged[queries.CustomerRow], error)
	}
	CreateAppointmentHandler interface {
		Handle(ctx context.Context, cmd commands.CreateAppointmentCommand) (*appointment.Appointment, error)
	}
	UpdateAppointmentHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateAppointmentCommand) (*appointment.Appointment, error)
		ChangeStatus(ctx context.Context, cmd commands.ChangeAppointmentStatusCommand) (*appointment.Appointment, error)
		Delete(ctx context.Context, cmd commands.DeleteAppointmentCommand) error
	}
	AppointmentQueriesHandler interface {
		List(ctx context.Context, query queries.ListAppointmentsQuery) (queries.Paged[queries.AppointmentRow], error)
		Get(ctx context.Context, query queries.GetAppointmentQuery) (*queries.AppointmentRow, error)
	}

	// DatabasePinger is satisfied by *sql.DB.
	DatabasePinger interface {
		PingContext(ctx context.Context) error
	}
)

// Handlers groups the use cases served by Server.
type Handlers struct {
	SelectPartner      SelectPartnerHandler
	QuotePrice         QuotePriceHandler
	PlanRoute          PlanRouteHandler
	ReportException    ReportExceptionHandler
	SendNotification   SendNotificationHandler
	UpdatePartnerState UpdatePartnerStateHandler
	GetPartnerState    GetPartnerStateHandler
	ListPartners       ListPartnersHandler
	CreatePartner      CreatePartnerHandler
	UpdateRegionDemand UpdateRegionDemandHandler
	CreateVehicle      CreateVehicleHandler
	ListVehicles       ListVehiclesHandler
	CreateCustomer     CreateCustomerHandler
	ListCustomers      ListCustomersHandler
	CreateAppointment  CreateAppointmentHandler
	UpdateAppointment  UpdateAppointmentHandler
	Appointments       AppointmentQueriesHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	db       DatabasePinger
	validate *validator.Validate
	log      *zap.Logger
}

// NewServer creates a server; a nil logger discards output.
func NewServer(handlers Handlers, db DatabasePinger, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		handlers: handlers,
		db:       db,
		validate: validator.New(),
		log:      log.With(zap.String("component", "http")),
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")

	g.GET("/healthcheck", s.HealthCheck)

	g.GET("/partners", s.ListPartners)
	g.POST("/partners", s.CreatePartner)
	g.POST("/partners/selection", s.SelectPartner)
	g.GET("/partners/:id/state", s.GetPartnerState)
	g.PUT("/partners/:id/state", s.UpdatePartnerState)

	g.POST("/pricing", s.QuotePrice)
	g.PUT("/pricing/demand/:region", s.UpdateRegionDemand)
	g.POST("/routing", s.PlanRoute)
	g.POST("/exceptions", s.ReportException)
	g.POST("/notifications", s.SendNotification)

	g.GET("/vehicles", s.ListVehicles)
	g.POST("/vehicles", s.CreateVehicle)
	g.GET("/customers", s.ListCustomers)
	g.POST("/customers", s.CreateCustomer)

	g.GET("/appointments", s.ListAppointments)
	g.POST("/appointments", s.CreateAppointment)
	g.GET("/appointments/:id", s.GetAppointment)
	g.PUT("/appointments/:id", s.UpdateAppointment)
	g.PATCH("/appointments/:id", s.ChangeAppointmentStatus)
	g.DELETE("/appointments/:id", s.DeleteAppointment)
}

var errInvalidBody = errors.New("invalid request body")

// bind decodes the body into req and runs the struct validation.
func (s *Server) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errInvalidBody
	}
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// pageParams reads the page and limit query parameters. Absent values fall back to
// the listing defaults.
func pageParams(c echo.Context) (queries.Page, error) {
	var number, limit int
	err := echo.QueryParamsBinder(c).
		Int("page", &number).
		Int("limit", &limit).
		BindError()
	if err != nil {
		return queries.Page{}, errors.New("page and limit must be integers")
	}
	return queries.NewPage(number, limit), nil
}

func paginationResponse[T any](p queries.Paged[T]) PaginationResponse {
	return PaginationResponse{Total: p.Total, Page: p.Page, Limit: p.Limit, Pages: p.Pages()}
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// fail maps a use-case error onto a status code. Unexpected errors are logged and
// answered with fallback so storage details do not leak to clients.
func (s *Server) fail(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(c, err)
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConfigurationIsInvalid):
		s.log.Error("pricing configuration fault", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "pricing rules are misconfigured",
		})
	default:
		s.log.Error(fallback,
			zap.String("path", c.Path()),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}
