package commands

import (
	"context"

	"dispatch/internal/core/domain/model/fleet"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// CreateVehicleCommandHandler registers vehicles. Registration numbers are unique
// across the fleet.
type CreateVehicleCommandHandler struct {
	uowFactory FleetUoWFactory
}

func NewCreateVehicleCommandHandler(uowFactory FleetUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{uowFactory: uowFactory}
}

// Handle persists a new vehicle. Returns errs.ErrObjectAlreadyExists when the
// registration number is taken.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) (*fleet.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	v, err := fleet.NewVehicle(kernel.NewUUID(), cmd.RegistrationNumber(), cmd.VehicleType(), cmd.Capacity(), cmd.Status())
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

	taken, err := uow.VehicleRepository().ExistsByRegistrationNumber(ctx, v.RegistrationNumber())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewObjectAlreadyExistsError("registrationNumber", v.RegistrationNumber())
	}

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return v, nil
}
