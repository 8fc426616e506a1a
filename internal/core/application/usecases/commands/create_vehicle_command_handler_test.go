package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/fleet"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateVehicleCommand(t *testing.T) {
	cmd, err := commands.NewCreateVehicleCommand(" B-DX 1024 ", fleet.VehicleVan, 40, "")
	require.NoError(t, err)
	assert.Equal(t, "B-DX 1024", cmd.RegistrationNumber())
	assert.Equal(t, fleet.VehicleAvailable, cmd.Status())

	_, err = commands.NewCreateVehicleCommand("  ", fleet.VehicleVan, 40, "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateVehicleCommand("B-DX 1024", fleet.VehicleVan, 40, "")
	require.NoError(t, err)

	vehicles := new(MockVehicleRepository)
	uow := new(MockFleetUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehicles).Once(),
		vehicles.On("ExistsByRegistrationNumber", ctx, "B-DX 1024").Return(false, nil).Once(),
		uow.On("VehicleRepository").Return(vehicles).Once(),
		vehicles.On("Add", ctx, mock.AnythingOfType("*fleet.Vehicle")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockFleetUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateVehicleCommandHandler(factory)
	v, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, fleet.VehicleVan, v.Type())
	assert.Equal(t, 40, v.Capacity())
	assert.Equal(t, fleet.VehicleAvailable, v.Status())
	vehicles.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateVehicleCommandHandler_Handle_DuplicateRegistration(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateVehicleCommand("B-DX 1024", fleet.VehicleTruck, 80, fleet.VehicleInUse)
	require.NoError(t, err)

	vehicles := new(MockVehicleRepository)
	uow := new(MockFleetUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("VehicleRepository").Return(vehicles)
	uow.On("Rollback", ctx).Return(nil)
	vehicles.On("ExistsByRegistrationNumber", ctx, "B-DX 1024").Return(true, nil)
	factory := new(MockFleetUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateVehicleCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	vehicles.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateVehicleCommandHandler_Handle_InvalidCapacity(t *testing.T) {
	cmd, err := commands.NewCreateVehicleCommand("B-DX 1024", fleet.VehicleBike, 0, "")
	require.NoError(t, err)

	factory := new(MockFleetUoWFactory)
	h := commands.NewCreateVehicleCommandHandler(factory)
	_, err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}
