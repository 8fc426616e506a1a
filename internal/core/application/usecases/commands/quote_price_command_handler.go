package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// DefaultDemandRegion is looked up for locations that carry no region.
const DefaultDemandRegion = "default"

// QuotePriceCommandHandler prices a delivery from the active rule set and records
// the quote.
//
// Demand is read through a RegionDemandProvider outside the transaction, so a cached
// provider can serve it. Regions without a recorded factor count as neutral demand.
//
// Example:
//
//	handler := NewQuotePriceCommandHandler(uowFactory, demandCache, services.NewPricingEngine("EUR"), nil)
//	quote, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConfigurationIsInvalid) {
//	    // active rules lack a factor for this request
//	}
type QuotePriceCommandHandler struct {
	uowFactory PricingUoWFactory
	demand     ports.RegionDemandProvider
	engine     services.PricingEngine
	now        func() time.Time
}

// NewQuotePriceCommandHandler creates a handler for price quotes.
func NewQuotePriceCommandHandler(
	uowFactory PricingUoWFactory,
	demand ports.RegionDemandProvider,
	engine services.PricingEngine,
	now func() time.Time,
) QuotePriceCommandHandler {
	if now == nil {
		now = time.Now
	}
	return QuotePriceCommandHandler{
		uowFactory: uowFactory,
		demand:     demand,
		engine:     engine,
		now:        now,
	}
}

// Handle computes the quote and stores it. Returns errs.ErrObjectNotFound when no
// active rule set exists.
func (h *QuotePriceCommandHandler) Handle(ctx context.Context, cmd QuotePriceCommand) (*pricing.Quote, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	originDemand, err := h.demand.GetDemand(ctx, demandRegion(cmd.Origin()))
	if err != nil {
		return nil, err
	}
	destinationDemand := originDemand
	if demandRegion(cmd.Destination()) != demandRegion(cmd.Origin()) {
		destinationDemand, err = h.demand.GetDemand(ctx, demandRegion(cmd.Destination()))
		if err != nil {
			return nil, err
		}
	}

	requestedAt := cmd.RequestedAt()
	if requestedAt.IsZero() {
		requestedAt = h.now()
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rules, err := uow.PricingRulesRepository().GetActive(ctx)
	if err != nil {
		return nil, err
	}

	quote, err := h.engine.Quote(services.QuoteInput{
		ID:                kernel.NewUUID(),
		Origin:            cmd.Origin(),
		Destination:       cmd.Destination(),
		Size:              cmd.Size(),
		WeightKg:          cmd.WeightKg(),
		Urgency:           cmd.Urgency(),
		RequestedAt:       requestedAt,
		Rules:             rules,
		OriginDemand:      originDemand,
		DestinationDemand: destinationDemand,
	})
	if err != nil {
		return nil, err
	}

	if err = uow.QuoteRepository().Add(ctx, quote); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return quote, nil
}

func demandRegion(loc kernel.Location) string {
	if loc.Region() == "" {
		return DefaultDemandRegion
	}
	return loc.Region()
}
