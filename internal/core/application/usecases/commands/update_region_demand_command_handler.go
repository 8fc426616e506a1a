package commands

import (
	"context"

	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/core/ports"
)

// UpdateRegionDemandCommandHandler writes region demand factors. With the Redis
// cache in front of the store, the next quote for the region reads the new factor.
type UpdateRegionDemandCommandHandler struct {
	demand ports.RegionDemandRepository
}

func NewUpdateRegionDemandCommandHandler(demand ports.RegionDemandRepository) UpdateRegionDemandCommandHandler {
	return UpdateRegionDemandCommandHandler{demand: demand}
}

func (h *UpdateRegionDemandCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateRegionDemandCommand,
) (pricing.RegionDemand, error) {
	if err := cmd.Validate(); err != nil {
		return pricing.RegionDemand{}, err
	}

	demand := pricing.RegionDemand{Region: cmd.Region(), DemandFactor: cmd.DemandFactor()}
	if err := h.demand.Upsert(ctx, demand); err != nil {
		return pricing.RegionDemand{}, err
	}

	return demand, nil
}
