package exceptionrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/exception"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormExceptionRepository implements ExceptionRepository using GORM.
type GormExceptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormExceptionRepository creates a new GORM exception repository.
func NewGormExceptionRepository(db *gorm.DB, tracker aggregateTracker) *GormExceptionRepository {
	return &GormExceptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly reported exception.
func (r *GormExceptionRepository) Add(ctx context.Context, aggregate *exception.Exception) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the handling outcome of an existing exception.
func (r *GormExceptionRepository) Update(ctx context.Context, aggregate *exception.Exception) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ExceptionDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an exception by ID.
func (r *GormExceptionRepository) Get(ctx context.Context, id kernel.UUID) (*exception.Exception, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ExceptionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("exception", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GormEscalationRepository implements EscalationRepository using GORM.
type GormEscalationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormEscalationRepository creates a new GORM escalation repository.
func NewGormEscalationRepository(db *gorm.DB, tracker aggregateTracker) *GormEscalationRepository {
	return &GormEscalationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add records an escalation.
func (r *GormEscalationRepository) Add(ctx context.Context, e *exception.Escalation) error {
	if e == nil {
		return errs.NewValueIsRequiredError("escalation")
	}
	if err := errors.Join(e.ID().Validate(), e.ExceptionID().Validate()); err != nil {
		return err
	}

	dto := escalationFromDomain(e)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(e.ID(), e)
	return nil
}
