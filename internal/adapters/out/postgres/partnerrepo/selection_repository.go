package partnerrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSelectionRepository implements SelectionRepository using GORM.
type GormSelectionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormSelectionRepository creates a new GORM selection repository.
func NewGormSelectionRepository(db *gorm.DB, tracker aggregateTracker) *GormSelectionRepository {
	return &GormSelectionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add records a selection.
func (r *GormSelectionRepository) Add(ctx context.Context, s *partner.Selection) error {
	if s == nil {
		return errs.NewValueIsRequiredError("selection")
	}
	if err := errors.Join(s.ID().Validate(), s.Pickup().Validate()); err != nil {
		return err
	}

	dto := selectionFromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(s.ID(), s)
	return nil
}
