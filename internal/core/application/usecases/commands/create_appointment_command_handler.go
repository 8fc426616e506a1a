package commands

import (
	"context"

	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/kernel"
)

// CreateAppointmentCommandHandler books appointments. New appointments start scheduled.
type CreateAppointmentCommandHandler struct {
	uowFactory AppointmentUoWFactory
}

func NewCreateAppointmentCommandHandler(uowFactory AppointmentUoWFactory) CreateAppointmentCommandHandler {
	return CreateAppointmentCommandHandler{uowFactory: uowFactory}
}

// Handle persists the appointment. Returns errs.ErrObjectNotFound for an unknown customer.
func (h *CreateAppointmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateAppointmentCommand,
) (*appointment.Appointment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d := cmd.Details()
	a, err := appointment.NewAppointment(kernel.NewUUID(), cmd.CustomerID(), d.Date, d.Location, d.Type, d.Priority, d.Notes)
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

	if _, err = uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}

	if err = uow.AppointmentRepository().Add(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
