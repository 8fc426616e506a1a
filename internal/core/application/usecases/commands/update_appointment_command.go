package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrUpdateAppointmentCommandIsNotConstructed = errors.New(
		"UpdateAppointmentCommand must be created via NewUpdateAppointmentCommand constructor",
	)
	ErrChangeAppointmentStatusCommandIsNotConstructed = errors.New(
		"ChangeAppointmentStatusCommand must be created via NewChangeAppointmentStatusCommand constructor",
	)
	ErrDeleteAppointmentCommandIsNotConstructed = errors.New(
		"DeleteAppointmentCommand must be created via NewDeleteAppointmentCommand constructor",
	)
)

// UpdateAppointmentCommand replaces the planning details of an appointment.
// An empty status keeps the current one.
type UpdateAppointmentCommand struct { //nolint:recvcheck //using for validation
	appointmentID kernel.UUID
	details       AppointmentDetails
	status        appointment.Status

	guard guard.ConstructorGuard
}

func NewUpdateAppointmentCommand(
	appointmentID kernel.UUID,
	details AppointmentDetails,
	status appointment.Status,
) (UpdateAppointmentCommand, error) {
	var statusErr error
	if status != "" {
		statusErr = status.Validate()
	}
	if err := errors.Join(appointmentID.Validate(), details.validate(), statusErr); err != nil {
		return UpdateAppointmentCommand{}, err
	}

	return UpdateAppointmentCommand{
		appointmentID: appointmentID,
		details:       details,
		status:        status,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAppointmentCommandIsNotConstructed)
}

func (c UpdateAppointmentCommand) AppointmentID() kernel.UUID {
	return c.appointmentID
}

func (c UpdateAppointmentCommand) Details() AppointmentDetails {
	return c.details
}

func (c UpdateAppointmentCommand) Status() appointment.Status {
	return c.status
}

// ChangeAppointmentStatusCommand moves an appointment to another status.
type ChangeAppointmentStatusCommand struct { //nolint:recvcheck //using for validation
	appointmentID kernel.UUID
	status        appointment.Status

	guard guard.ConstructorGuard
}

func NewChangeAppointmentStatusCommand(
	appointmentID kernel.UUID,
	status appointment.Status,
) (ChangeAppointmentStatusCommand, error) {
	if err := errors.Join(appointmentID.Validate(), status.Validate()); err != nil {
		return ChangeAppointmentStatusCommand{}, err
	}

	return ChangeAppointmentStatusCommand{
		appointmentID: appointmentID,
		status:        status,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeAppointmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeAppointmentStatusCommandIsNotConstructed)
}

func (c ChangeAppointmentStatusCommand) AppointmentID() kernel.UUID {
	return c.appointmentID
}

func (c ChangeAppointmentStatusCommand) Status() appointment.Status {
	return c.status
}

// DeleteAppointmentCommand removes an appointment.
type DeleteAppointmentCommand struct { //nolint:recvcheck //using for validation
	appointmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteAppointmentCommand(appointmentID kernel.UUID) (DeleteAppointmentCommand, error) {
	if err := appointmentID.Validate(); err != nil {
		return DeleteAppointmentCommand{}, err
	}

	return DeleteAppointmentCommand{
		appointmentID: appointmentID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAppointmentCommandIsNotConstructed)
}

func (c DeleteAppointmentCommand) AppointmentID() kernel.UUID {
	return c.appointmentID
}
