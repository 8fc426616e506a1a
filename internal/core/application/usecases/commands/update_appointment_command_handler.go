package commands

import (
	"context"

	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/kernel"
)

// UpdateAppointmentCommandHandler edits stored appointments. All three operations
// return errs.ErrObjectNotFound for an unknown appointment.
type UpdateAppointmentCommandHandler struct {
	uowFactory AppointmentUoWFactory
}

func NewUpdateAppointmentCommandHandler(uowFactory AppointmentUoWFactory) UpdateAppointmentCommandHandler {
	return UpdateAppointmentCommandHandler{uowFactory: uowFactory}
}

// Handle reschedules the appointment and, when the command names one, changes its status.
func (h *UpdateAppointmentCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateAppointmentCommand,
) (*appointment.Appointment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.modify(ctx, cmd, func(a *appointment.Appointment) error {
		d := cmd.Details()
		if err := a.Reschedule(d.Date, d.Location, d.Type, d.Priority, d.Notes); err != nil {
			return err
		}
		if cmd.Status() == "" {
			return nil
		}
		return a.ChangeStatus(cmd.Status())
	})
}

// ChangeStatus moves the appointment to the commanded status.
func (h *UpdateAppointmentCommandHandler) ChangeStatus(
	ctx context.Context,
	cmd ChangeAppointmentStatusCommand,
) (*appointment.Appointment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.modify(ctx, cmd, func(a *appointment.Appointment) error {
		return a.ChangeStatus(cmd.Status())
	})
}

// Delete removes the appointment.
func (h *UpdateAppointmentCommandHandler) Delete(ctx context.Context, cmd DeleteAppointmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AppointmentRepository().Delete(ctx, cmd.AppointmentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

type appointmentCommand interface {
	AppointmentID() kernel.UUID
}

func (h *UpdateAppointmentCommandHandler) modify(
	ctx context.Context,
	cmd appointmentCommand,
	change func(a *appointment.Appointment) error,
) (*appointment.Appointment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	a, err := uow.AppointmentRepository().Get(ctx, cmd.AppointmentID())
	if err != nil {
		return nil, err
	}

	if err = change(a); err != nil {
		return nil, err
	}

	if err = uow.AppointmentRepository().Update(ctx, a); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return a, nil
}
