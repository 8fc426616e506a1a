package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdatePartnerStateCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	p := newTestPartner(t, "Swift", 3, 4.5)
	load := 60
	cmd, err := commands.NewUpdatePartnerStateCommand(p.ID(), partner.StatusBusy, partner.AvailabilityLimited, nil, &load)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	stateRepo := new(MockServiceStateRepository)
	uow := new(MockPartnerUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		uow.On("ServiceStateRepository").Return(stateRepo).Once(),
		stateRepo.On("Upsert", ctx, mock.MatchedBy(func(s *partner.ServiceState) bool {
			return s.PartnerID().IsEqual(p.ID()) && s.CurrentLoad() == 60
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePartnerStateCommandHandler(factory, clock)
	state, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, partner.StatusBusy, state.Status())
	assert.Equal(t, partner.AvailabilityLimited, state.Availability())
	assert.Equal(t, partner.DefaultCapacity, state.Capacity())
	assert.Equal(t, fixedNow, state.UpdatedAt())
	assert.InDelta(t, 0.4, state.RemainingCapacityFraction(), 1e-9)

	partnerRepo.AssertExpectations(t)
	stateRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdatePartnerStateCommandHandler_Handle_UnknownPartner(t *testing.T) {
	ctx := t.Context()
	p := newTestPartner(t, "Ghost", 1, 1)
	cmd, err := commands.NewUpdatePartnerStateCommand(p.ID(), partner.StatusActive, partner.AvailabilityAvailable, nil, nil)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockPartnerUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PartnerRepository").Return(partnerRepo).Once()
	partnerRepo.On("Get", ctx, p.ID()).
		Return(nil, errs.NewObjectNotFoundError("partner", p.ID().String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePartnerStateCommandHandler(factory, clock)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "ServiceStateRepository")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdatePartnerStateCommandHandler_Handle_InvalidCapacity(t *testing.T) {
	ctx := t.Context()
	capacity, load := 0, 0
	p := newTestPartner(t, "Zero", 1, 1)
	cmd, err := commands.NewUpdatePartnerStateCommand(p.ID(), partner.StatusActive, partner.AvailabilityAvailable, &capacity, &load)
	require.NoError(t, err)

	factory := new(MockPartnerUoWFactory)
	h := commands.NewUpdatePartnerStateCommandHandler(factory, clock)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdatePartnerStateCommandHandler_Handle_UpsertError(t *testing.T) {
	ctx := t.Context()
	p := newTestPartner(t, "Swift", 3, 4.5)
	cmd, err := commands.NewUpdatePartnerStateCommand(p.ID(), partner.StatusActive, partner.AvailabilityAvailable, nil, nil)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	stateRepo := new(MockServiceStateRepository)
	uow := new(MockPartnerUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("PartnerRepository").Return(partnerRepo)
	uow.On("ServiceStateRepository").Return(stateRepo)
	uow.On("Rollback", ctx).Return(nil)
	partnerRepo.On("Get", ctx, p.ID()).Return(p, nil)
	stateRepo.On("Upsert", ctx, mock.Anything).Return(errors.New("upsert error"))

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUpdatePartnerStateCommandHandler(factory, clock)
	_, err = h.Handle(ctx, cmd)
	require.EqualError(t, err, "upsert error")
	uow.AssertNotCalled(t, "Commit", ctx)
}
