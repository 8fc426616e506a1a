package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdatePartnerStateCommand_Defaults(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdatePartnerStateCommand(id, partner.StatusActive, partner.AvailabilityAvailable, nil, nil)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.True(t, id.IsEqual(cmd.PartnerID()))
	assert.Equal(t, partner.StatusActive, cmd.Status())
	assert.Equal(t, partner.AvailabilityAvailable, cmd.Availability())
	assert.Equal(t, partner.DefaultCapacity, cmd.Capacity())
	assert.Equal(t, partner.DefaultCurrentLoad, cmd.CurrentLoad())
}

func TestNewUpdatePartnerStateCommand_ExplicitCapacity(t *testing.T) {
	capacity, load := 40, 30
	cmd, err := commands.NewUpdatePartnerStateCommand(kernel.NewUUID(), partner.StatusBusy,
		partner.AvailabilityLimited, &capacity, &load)
	require.NoError(t, err)
	assert.Equal(t, 40, cmd.Capacity())
	assert.Equal(t, 30, cmd.CurrentLoad())
}

func TestNewUpdatePartnerStateCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewUpdatePartnerStateCommand(kernel.UUID{}, "sleeping", "maybe", nil, nil)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "status is invalid")
	assert.Contains(t, err.Error(), "availability is invalid")
}

func TestUpdatePartnerStateCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.UpdatePartnerStateCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrUpdatePartnerStateCommandIsNotConstructed)
}
