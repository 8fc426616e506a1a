package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateAppointmentCommandIsNotConstructed = errors.New(
		"CreateAppointmentCommand must be created via NewCreateAppointmentCommand constructor",
	)
)

// AppointmentDetails are the planning fields shared by booking and rescheduling.
// An unresolved location is accepted; route planning skips such appointments.
type AppointmentDetails struct {
	Date     time.Time
	Location kernel.Location
	Type     appointment.Type
	Priority int
	Notes    string
}

func (d AppointmentDetails) validate() error {
	if d.Date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	return d.Type.Validate()
}

// CreateAppointmentCommand books an appointment for an existing customer.
//
// Example:
//
//	cmd, err := NewCreateAppointmentCommand(customerID, AppointmentDetails{
//	    Date: date, Location: loc, Type: appointment.TypeDelivery, Priority: 2,
//	})
type CreateAppointmentCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	details    AppointmentDetails

	guard guard.ConstructorGuard
}

func NewCreateAppointmentCommand(customerID kernel.UUID, details AppointmentDetails) (CreateAppointmentCommand, error) {
	if err := errors.Join(customerID.Validate(), details.validate()); err != nil {
		return CreateAppointmentCommand{}, err
	}

	return CreateAppointmentCommand{
		customerID: customerID,
		details:    details,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateAppointmentCommandIsNotConstructed)
}

func (c CreateAppointmentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateAppointmentCommand) Details() AppointmentDetails {
	return c.details
}
