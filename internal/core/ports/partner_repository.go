package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for partner profiles.
type PartnerRepository interface {
	// Add persists a new partner.
	Add(ctx context.Context, p *partner.Partner) error

	// Get retrieves a partner by its identifier.
	// Returns errs.ErrObjectNotFound when no such partner exists.
	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// FindActiveByServiceType returns active partners offering serviceType, in a stable
	// fetch order (creation time, then id). Ties in scoring keep this order.
	FindActiveByServiceType(ctx context.Context, serviceType string) ([]*partner.Partner, error)
}

// ServiceStateRepository defines the persistence contract for partner service-state feeds.
type ServiceStateRepository interface {
	// Get retrieves the state of one partner.
	// Returns errs.ErrObjectNotFound when the partner never reported a state.
	Get(ctx context.Context, partnerID kernel.UUID) (*partner.ServiceState, error)

	// GetMany retrieves the states of the given partners. Partners without a recorded
	// state are absent from the result.
	GetMany(ctx context.Context, partnerIDs []kernel.UUID) (map[kernel.UUID]*partner.ServiceState, error)

	// Upsert creates or replaces the state of a partner.
	Upsert(ctx context.Context, state *partner.ServiceState) error
}

// SelectionRepository records partner selections.
type SelectionRepository interface {
	Add(ctx context.Context, s *partner.Selection) error
}
