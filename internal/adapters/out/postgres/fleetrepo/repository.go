package fleetrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/fleet"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormVehicleRepository implements VehicleRepository using GORM.
type GormVehicleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormVehicleRepository creates a new GORM vehicle repository.
func NewGormVehicleRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleRepository {
	return &GormVehicleRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vehicle.
func (r *GormVehicleRepository) Add(ctx context.Context, v *fleet.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := vehicleFromDomain(v)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(v.ID(), v)
	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*fleet.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, err
	}

	return vehicleToDomain(dto)
}

// ExistsByRegistrationNumber reports whether reg is already registered.
func (r *GormVehicleRepository) ExistsByRegistrationNumber(ctx context.Context, reg string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&VehicleDTO{}).
		Where("registration_number = ?", reg).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add records a planned route together with its stops.
func (r *GormRouteRepository) Add(ctx context.Context, plan *fleet.Plan) error {
	if plan == nil {
		return errs.NewValueIsRequiredError("route")
	}
	if err := errors.Join(plan.ID().Validate(), plan.VehicleID().Validate()); err != nil {
		return err
	}

	dto := routeFromDomain(plan)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(plan.ID(), plan)
	return nil
}
