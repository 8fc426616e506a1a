package partnerrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormServiceStateRepository implements ServiceStateRepository using GORM.
// A partner has at most one state row; writes replace it.
type GormServiceStateRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormServiceStateRepository creates a new GORM service-state repository.
func NewGormServiceStateRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceStateRepository {
	return &GormServiceStateRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the state of one partner.
func (r *GormServiceStateRepository) Get(ctx context.Context, partnerID kernel.UUID) (*partner.ServiceState, error) {
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceStateDTO
	if err := r.db.WithContext(ctx).First(&dto, "partner_id = ?", partnerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partner service state", partnerID.String())
		}
		return nil, err
	}

	return stateToDomain(dto)
}

// GetMany retrieves the states of the given partners in one query.
func (r *GormServiceStateRepository) GetMany(ctx context.Context, partnerIDs []kernel.UUID) (map[kernel.UUID]*partner.ServiceState, error) {
	states := make(map[kernel.UUID]*partner.ServiceState, len(partnerIDs))
	if len(partnerIDs) == 0 {
		return states, nil
	}

	raw := make([]uuid.UUID, 0, len(partnerIDs))
	for _, id := range partnerIDs {
		raw = append(raw, id.Bytes())
	}

	var dtos []ServiceStateDTO
	if err := r.db.WithContext(ctx).Where("partner_id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		s, err := stateToDomain(dto)
		if err != nil {
			return nil, err
		}
		states[s.PartnerID()] = s
	}

	return states, nil
}

// Upsert creates or replaces the state of a partner.
func (r *GormServiceStateRepository) Upsert(ctx context.Context, state *partner.ServiceState) error {
	if err := state.Validate(); err != nil {
		return err
	}

	dto := stateFromDomain(state)
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "partner_id"}},
		UpdateAll: true,
	}).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(state.PartnerID(), state)
	return nil
}
