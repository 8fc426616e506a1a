package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// CreatePartnerCommandHandler registers partners. A new partner has no service state
// until the first state report and is scored with the defaults until then.
type CreatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

func NewCreatePartnerCommandHandler(uowFactory PartnerUoWFactory) CreatePartnerCommandHandler {
	return CreatePartnerCommandHandler{uowFactory: uowFactory}
}

// Handle validates the profile and persists it.
func (h *CreatePartnerCommandHandler) Handle(ctx context.Context, cmd CreatePartnerCommand) (*partner.Partner, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := partner.NewPartner(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Priority(),
		cmd.Rating(),
		cmd.ServiceAreas(),
		cmd.ServiceTypes(),
		cmd.Status(),
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

	if err = uow.PartnerRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
