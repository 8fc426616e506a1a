package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/partner"
)

// UpdatePartnerStateCommandHandler records the live state reported for a partner.
// The next partner selection scores the partner with this state.
type UpdatePartnerStateCommandHandler struct {
	uowFactory PartnerUoWFactory
	now        func() time.Time
}

// NewUpdatePartnerStateCommandHandler creates a handler stamping states with now().
func NewUpdatePartnerStateCommandHandler(uowFactory PartnerUoWFactory, now func() time.Time) UpdatePartnerStateCommandHandler {
	if now == nil {
		now = time.Now
	}
	return UpdatePartnerStateCommandHandler{uowFactory: uowFactory, now: now}
}

// Handle upserts the partner's state. Returns errs.ErrObjectNotFound for an
// unknown partner.
func (h *UpdatePartnerStateCommandHandler) Handle(
	ctx context.Context,
	cmd UpdatePartnerStateCommand,
) (*partner.ServiceState, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	state, err := partner.NewServiceState(
		cmd.PartnerID(),
		cmd.Status(),
		cmd.Availability(),
		cmd.Capacity(),
		cmd.CurrentLoad(),
		h.now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.PartnerRepository().Get(ctx, cmd.PartnerID()); err != nil {
		return nil, err
	}

	if err = uow.ServiceStateRepository().Upsert(ctx, state); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return state, nil
}
