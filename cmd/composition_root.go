package cmd

import (
	"context"
	"fmt"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/notify"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/pricingrepo"
	"dispatch/internal/adapters/out/rediscache"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/exception"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	demand     ports.RegionDemandRepository
	sender     ports.NotificationSender
	redis      *redis.Client
	logger     *zap.Logger
}

// NewCompositionRoot wires the adapters around gormDB. The demand cache is enabled
// by REDIS_URL and the email channel by SES_FROM_ADDRESS.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	var demand ports.RegionDemandRepository = pricingrepo.NewGormRegionDemandRepository(gormDB)
	if cfg.RedisURL != "" {
		client, err := rediscache.NewClient(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		cache := rediscache.NewDemandCache(client, demand, cfg.DemandCacheTTL, logger.Named("demand_cache"))
		if err = cache.Ping(ctx); err != nil {
			logger.Warn("redis is unreachable, demand is read through to postgres", zap.Error(err))
		}
		c.redis = client
		demand = cache
	}
	c.demand = demand

	channels := []notify.Channel{notify.NewLogSMSChannel(logger.Named("sms"))}
	if cfg.SESFromAddress != "" {
		ses, err := notify.NewSESClient(ctx, cfg.AWSRegion)
		if err != nil {
			return nil, err
		}
		channels = append([]notify.Channel{notify.NewEmailChannel(ses, cfg.SESFromAddress)}, channels...)
	}
	c.sender = notify.NewMultiChannelSender(logger.Named("notify"), channels...)

	return c, nil
}

// Close releases connections opened by the root.
func (c *CompositionRoot) Close() error {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return fmt.Errorf("failed to close redis client: %w", err)
		}
	}
	return nil
}

func (c *CompositionRoot) CreateSelectPartnerCommandHandler() *commands.SelectPartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewSelectPartnerCommandHandler(f, nil)
	return &h
}

func (c *CompositionRoot) CreateUpdatePartnerStateCommandHandler() *commands.UpdatePartnerStateCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewUpdatePartnerStateCommandHandler(f, nil)
	return &h
}

func (c *CompositionRoot) CreateCreatePartnerCommandHandler() *commands.CreatePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreatePartnerCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateUpdateRegionDemandCommandHandler() *commands.UpdateRegionDemandCommandHandler {
	h := commands.NewUpdateRegionDemandCommandHandler(c.demand)
	return &h
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() *commands.CreateVehicleCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateVehicleCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() *commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCreateCustomerCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateCreateAppointmentCommandHandler() *commands.CreateAppointmentCommandHandler {
	h := commands.NewCreateAppointmentCommandHandler(c.appointmentUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateAppointmentCommandHandler() *commands.UpdateAppointmentCommandHandler {
	h := commands.NewUpdateAppointmentCommandHandler(c.appointmentUoWFactory())
	return &h
}

func (c *CompositionRoot) appointmentUoWFactory() commands.AppointmentUoWFactory {
	return FuncAppointmentUoWFactory(func() commands.AppointmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateQuotePriceCommandHandler() *commands.QuotePriceCommandHandler {
	var f commands.PricingUoWFactory = FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewQuotePriceCommandHandler(f, c.demand, services.NewPricingEngine(c.cfg.PricingCurrency), nil)
	return &h
}

func (c *CompositionRoot) CreatePlanRouteCommandHandler() *commands.PlanRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewPlanRouteCommandHandler(f, nil)
	return &h
}

func (c *CompositionRoot) CreateReportExceptionCommandHandler() *commands.ReportExceptionCommandHandler {
	var f commands.ExceptionUoWFactory = FuncExceptionUoWFactory(func() commands.ExceptionUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewReportExceptionCommandHandler(f, exception.DefaultPlaybook(), nil)
	return &h
}

func (c *CompositionRoot) CreateSendNotificationCommandHandler() *commands.SendNotificationCommandHandler {
	h := commands.NewSendNotificationCommandHandler(c.notificationUoWFactory(), c.sender, nil)
	return &h
}

func (c *CompositionRoot) CreateDispatchPendingNotificationsCommandHandler() *commands.DispatchPendingNotificationsCommandHandler {
	h := commands.NewDispatchPendingNotificationsCommandHandler(c.notificationUoWFactory(), c.sender, nil)
	return &h
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateGetPartnerStateQueryHandler() queries.GetPartnerStateQueryHandler {
	return queries.NewGetPartnerStateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPartnersQueryHandler() queries.ListPartnersQueryHandler {
	return queries.NewListPartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAppointmentQueriesHandler() queries.AppointmentQueriesHandler {
	return queries.NewAppointmentQueriesHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST adapter; db answers the health check.
func (c *CompositionRoot) CreateHTTPServer(db httpin.DatabasePinger) *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		SelectPartner:      c.CreateSelectPartnerCommandHandler(),
		QuotePrice:         c.CreateQuotePriceCommandHandler(),
		PlanRoute:          c.CreatePlanRouteCommandHandler(),
		ReportException:    c.CreateReportExceptionCommandHandler(),
		SendNotification:   c.CreateSendNotificationCommandHandler(),
		UpdatePartnerState: c.CreateUpdatePartnerStateCommandHandler(),
		GetPartnerState:    c.CreateGetPartnerStateQueryHandler(),
		ListPartners:       c.CreateListPartnersQueryHandler(),
		CreatePartner:      c.CreateCreatePartnerCommandHandler(),
		UpdateRegionDemand: c.CreateUpdateRegionDemandCommandHandler(),
		CreateVehicle:      c.CreateCreateVehicleCommandHandler(),
		ListVehicles:       c.CreateListVehiclesQueryHandler(),
		CreateCustomer:     c.CreateCreateCustomerCommandHandler(),
		ListCustomers:      c.CreateListCustomersQueryHandler(),
		CreateAppointment:  c.CreateCreateAppointmentCommandHandler(),
		UpdateAppointment:  c.CreateUpdateAppointmentCommandHandler(),
		Appointments:       c.CreateAppointmentQueriesHandler(),
	}, db, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.logger,
		jobs.NewNotificationDispatchJob(
			c.CreateDispatchPendingNotificationsCommandHandler(),
			c.cfg.NotificationDispatchSchedule,
			c.cfg.NotificationDispatchBatchSize,
			c.logger,
		),
	)
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncExceptionUoWFactory func() commands.ExceptionUoW

func (f FuncExceptionUoWFactory) Create() commands.ExceptionUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncAppointmentUoWFactory func() commands.AppointmentUoW

func (f FuncAppointmentUoWFactory) Create() commands.AppointmentUoW {
	return f()
}
