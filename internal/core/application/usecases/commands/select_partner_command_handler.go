package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// SelectPartnerResult is a recorded selection together with the ranking behind it.
// Ranked holds at most the primary and partner.MaxFallbacks fallbacks.
type SelectPartnerResult struct {
	Selection *partner.Selection
	Ranked    []services.RankedPartner
}

// SelectPartnerCommandHandler ranks active partners for a pickup and records the
// selection in pending_acceptance status.
//
// A partner without a service-state record is scored as active and available.
// When no active partner supports the service type, an ObjectNotFound error is
// returned and nothing is recorded.
type SelectPartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
	selector   services.PartnerSelector
	now        func() time.Time
}

// NewSelectPartnerCommandHandler creates a handler using the default partner scorer.
func NewSelectPartnerCommandHandler(uowFactory PartnerUoWFactory, now func() time.Time) SelectPartnerCommandHandler {
	if now == nil {
		now = time.Now
	}
	return SelectPartnerCommandHandler{
		uowFactory: uowFactory,
		selector:   services.NewPartnerSelector(services.NewPartnerScorer()),
		now:        now,
	}
}

// Handle ranks the candidates and stores the resulting selection in one transaction.
func (h *SelectPartnerCommandHandler) Handle(ctx context.Context, cmd SelectPartnerCommand) (SelectPartnerResult, error) {
	if err := cmd.Validate(); err != nil {
		return SelectPartnerResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SelectPartnerResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partners, err := uow.PartnerRepository().FindActiveByServiceType(ctx, cmd.ServiceType())
	if err != nil {
		return SelectPartnerResult{}, err
	}
	if len(partners) == 0 {
		return SelectPartnerResult{}, errs.NewObjectNotFoundError("active partner for service type", cmd.ServiceType())
	}

	ids := make([]kernel.UUID, 0, len(partners))
	for _, p := range partners {
		ids = append(ids, p.ID())
	}
	states, err := uow.ServiceStateRepository().GetMany(ctx, ids)
	if err != nil {
		return SelectPartnerResult{}, err
	}

	ranked := h.selector.Rank(partners, states, cmd.ServiceType(), cmd.Pickup(), cmd.Urgency())
	if len(ranked) == 0 {
		return SelectPartnerResult{}, errs.NewObjectNotFoundError("active partner for service type", cmd.ServiceType())
	}

	selection, err := partner.NewSelection(
		kernel.NewUUID(),
		cmd.AppointmentID(),
		cmd.ServiceType(),
		cmd.Pickup(),
		cmd.Urgency(),
		h.selector.Candidates(ranked),
		h.now(),
	)
	if err != nil {
		return SelectPartnerResult{}, err
	}

	if err = uow.SelectionRepository().Add(ctx, selection); err != nil {
		return SelectPartnerResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SelectPartnerResult{}, err
	}

	return SelectPartnerResult{
		Selection: selection,
		Ranked:    ranked[:len(selection.Candidates())],
	}, nil
}
