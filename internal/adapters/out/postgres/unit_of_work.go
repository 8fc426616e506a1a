// Package postgres provides the GORM-based Unit of Work of the dispatch service.
// The Unit of Work keeps the repositories of one business operation on a single
// transaction and records the aggregates they wrote.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx) // no-op error after Commit
//
//	if err := uow.ExceptionRepository().Add(ctx, exc); err != nil {
//	    return err
//	}
//	if err := uow.NotificationRepository().Add(ctx, n); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides isolated transactions
//   - Multiple goroutines should use separate UnitOfWork instances
//   - Repositories obtained before Begin run outside the transaction
package postgres

import (
	"context"

	"dispatch/internal/adapters/out/postgres/appointmentrepo"
	"dispatch/internal/adapters/out/postgres/exceptionrepo"
	"dispatch/internal/adapters/out/postgres/fleetrepo"
	"dispatch/internal/adapters/out/postgres/notificationrepo"
	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/adapters/out/postgres/pricingrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// Models lists every table the repositories of this package write to, for
// AutoMigrate at start-up and in integration tests.
func Models() []any {
	return []any{
		&partnerrepo.PartnerDTO{},
		&partnerrepo.ServiceAreaDTO{},
		&partnerrepo.ServiceStateDTO{},
		&partnerrepo.SelectionDTO{},
		&pricingrepo.RulesDTO{},
		&pricingrepo.RegionDemandDTO{},
		&pricingrepo.QuoteDTO{},
		&fleetrepo.VehicleDTO{},
		&fleetrepo.RouteDTO{},
		&fleetrepo.RouteStopDTO{},
		&appointmentrepo.AppointmentDTO{},
		&appointmentrepo.CustomerDTO{},
		&exceptionrepo.ExceptionDTO{},
		&exceptionrepo.EscalationDTO{},
		&notificationrepo.NotificationDTO{},
	}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Each business operation gets a fresh unit of work isolated from concurrent ones.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the dispatch
// repositories and tracks the aggregates they write.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active, which makes a
// deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the active transaction, or the plain connection outside one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) PartnerRepository() ports.PartnerRepository {
	return partnerrepo.NewGormPartnerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ServiceStateRepository() ports.ServiceStateRepository {
	return partnerrepo.NewGormServiceStateRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SelectionRepository() ports.SelectionRepository {
	return partnerrepo.NewGormSelectionRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PricingRulesRepository() ports.PricingRulesRepository {
	return pricingrepo.NewGormRulesRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RegionDemandRepository() ports.RegionDemandRepository {
	return pricingrepo.NewGormRegionDemandRepository(uow.conn())
}

func (uow *GormUnitOfWork) QuoteRepository() ports.QuoteRepository {
	return pricingrepo.NewGormQuoteRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return fleetrepo.NewGormVehicleRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return fleetrepo.NewGormRouteRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AppointmentRepository() ports.AppointmentRepository {
	return appointmentrepo.NewGormAppointmentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return appointmentrepo.NewGormCustomerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ExceptionRepository() ports.ExceptionRepository {
	return exceptionrepo.NewGormExceptionRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) EscalationRepository() ports.EscalationRepository {
	return exceptionrepo.NewGormEscalationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful Add, Update or Upsert.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount returns how many aggregate writes the unit of work recorded.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}
