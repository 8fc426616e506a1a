package ports

import (
	"context"

	"dispatch/internal/core/domain/model/pricing"
)

// PricingRulesRepository defines the persistence contract for pricing rule sets.
type PricingRulesRepository interface {
	// Add persists a rule set.
	Add(ctx context.Context, rules *pricing.Rules) error

	// GetActive returns the most recently created active rule set.
	// Returns errs.ErrObjectNotFound when no active rule set exists.
	GetActive(ctx context.Context) (*pricing.Rules, error)
}

// RegionDemandProvider looks up the demand factor of a region.
type RegionDemandProvider interface {
	// GetDemand returns the demand of region, or nil without error when the region
	// has no recorded factor. The caller treats nil as neutral demand.
	GetDemand(ctx context.Context, region string) (*pricing.RegionDemand, error)
}

// RegionDemandRepository is the writable store behind RegionDemandProvider.
type RegionDemandRepository interface {
	RegionDemandProvider

	// Upsert creates or replaces the demand factor of a region.
	Upsert(ctx context.Context, demand pricing.RegionDemand) error
}

// QuoteRepository records computed price quotes.
type QuoteRepository interface {
	Add(ctx context.Context, q *pricing.Quote) error
}
