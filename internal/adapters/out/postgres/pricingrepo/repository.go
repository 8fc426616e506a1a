package pricingrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormRulesRepository implements PricingRulesRepository using GORM.
type GormRulesRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormRulesRepository creates a new GORM pricing rules repository.
func NewGormRulesRepository(db *gorm.DB, tracker aggregateTracker) *GormRulesRepository {
	return &GormRulesRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a rule set.
func (r *GormRulesRepository) Add(ctx context.Context, rules *pricing.Rules) error {
	if err := rules.Validate(); err != nil {
		return err
	}

	dto := rulesFromDomain(rules)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(rules.ID(), rules)
	return nil
}

// GetActive retrieves the newest active rule set.
func (r *GormRulesRepository) GetActive(ctx context.Context) (*pricing.Rules, error) {
	var dto RulesDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", pricing.RulesStatusActive).
		Order("created_at DESC").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricing rules", pricing.RulesStatusActive)
		}
		return nil, err
	}

	return rulesToDomain(dto)
}

// GormRegionDemandRepository implements RegionDemandRepository using GORM.
type GormRegionDemandRepository struct {
	db *gorm.DB
}

// NewGormRegionDemandRepository creates a new GORM region demand repository.
func NewGormRegionDemandRepository(db *gorm.DB) *GormRegionDemandRepository {
	return &GormRegionDemandRepository{db: db}
}

// GetDemand returns the demand of region, or nil when none is recorded.
func (r *GormRegionDemandRepository) GetDemand(ctx context.Context, region string) (*pricing.RegionDemand, error) {
	if region == "" {
		return nil, nil
	}

	var dto RegionDemandDTO
	if err := r.db.WithContext(ctx).First(&dto, "region = ?", region).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &pricing.RegionDemand{Region: dto.Region, DemandFactor: dto.DemandFactor}, nil
}

// Upsert creates or replaces the demand factor of a region.
func (r *GormRegionDemandRepository) Upsert(ctx context.Context, demand pricing.RegionDemand) error {
	if demand.Region == "" {
		return errs.NewValueIsRequiredError("region")
	}
	if demand.DemandFactor < 0 {
		return errs.NewValueIsOutOfRangeError("demandFactor", demand.DemandFactor, 0, "+Inf")
	}

	dto := RegionDemandDTO{Region: demand.Region, DemandFactor: demand.DemandFactor}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "region"}},
		DoUpdates: clause.AssignmentColumns([]string{"demand_factor", "updated_at"}),
	}).Create(&dto).Error
}

// GormQuoteRepository implements QuoteRepository using GORM.
type GormQuoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormQuoteRepository creates a new GORM quote repository.
func NewGormQuoteRepository(db *gorm.DB, tracker aggregateTracker) *GormQuoteRepository {
	return &GormQuoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add records an issued quote.
func (r *GormQuoteRepository) Add(ctx context.Context, q *pricing.Quote) error {
	if q == nil {
		return errs.NewValueIsRequiredError("quote")
	}
	if err := q.ID().Validate(); err != nil {
		return err
	}

	dto := quoteFromDomain(q)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(q.ID(), q)
	return nil
}
