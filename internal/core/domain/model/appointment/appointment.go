package appointment

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// ErrAppointmentIsNotConstructed is returned when an Appointment was not created via
// NewAppointment or RestoreAppointment.
var ErrAppointmentIsNotConstructed = errors.New("Appointment must be created via NewAppointment constructor")

// Appointment is a scheduled pickup or delivery for a customer.
//
// Location may be unresolved when the address was never geocoded; such appointments
// are skipped by route planning.
type Appointment struct {
	id         kernel.UUID
	customerID kernel.UUID
	date       time.Time
	location   kernel.Location
	apptType   Type
	status     Status
	priority   int
	notes      string

	isConstructed bool
}

// NewAppointment creates a scheduled appointment.
func NewAppointment(
	id kernel.UUID,
	customerID kernel.UUID,
	date time.Time,
	location kernel.Location,
	apptType Type,
	priority int,
	notes string,
) (*Appointment, error) {
	a := &Appointment{
		date:          date,
		location:      location,
		status:        StatusScheduled,
		priority:      priority,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setCustomerID(customerID),
		a.setType(apptType),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAppointment rebuilds an Appointment from persistence with its stored status.
func RestoreAppointment(
	id kernel.UUID,
	customerID kernel.UUID,
	date time.Time,
	location kernel.Location,
	apptType Type,
	status Status,
	priority int,
	notes string,
) (*Appointment, error) {
	a, err := NewAppointment(id, customerID, date, location, apptType, priority, notes)
	if err != nil {
		return nil, err
	}
	if err := a.ChangeStatus(status); err != nil {
		return nil, err
	}
	return a, nil
}

// NewReplacement schedules a delivery that replaces original, for the same customer,
// date and location.
//
// Example:
//
//	replacement, err := appointment.NewReplacement(kernel.NewUUID(), damaged)
//	replacement.Notes() // "Replacement for damaged package in appointment <damaged id>"
func NewReplacement(id kernel.UUID, original *Appointment) (*Appointment, error) {
	if err := original.Validate(); err != nil {
		return nil, err
	}
	return NewAppointment(
		id,
		original.customerID,
		original.date,
		original.location,
		TypeDelivery,
		original.priority,
		fmt.Sprintf("Replacement for damaged package in appointment %s", original.id),
	)
}

// Validate ensures the Appointment was properly constructed.
func (a *Appointment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAppointmentIsNotConstructed
	}
	return nil
}

func (a *Appointment) ID() kernel.UUID {
	return a.id
}

func (a *Appointment) CustomerID() kernel.UUID {
	return a.customerID
}

func (a *Appointment) Date() time.Time {
	return a.date
}

func (a *Appointment) Location() kernel.Location {
	return a.location
}

func (a *Appointment) Type() Type {
	return a.apptType
}

func (a *Appointment) Status() Status {
	return a.status
}

func (a *Appointment) Priority() int {
	return a.priority
}

func (a *Appointment) Notes() string {
	return a.notes
}

// ChangeStatus moves the appointment to status. Any known status is accepted.
func (a *Appointment) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

// Reschedule replaces the planning details of the appointment. The status is kept;
// a rejected type leaves the appointment unchanged.
func (a *Appointment) Reschedule(
	date time.Time,
	location kernel.Location,
	apptType Type,
	priority int,
	notes string,
) error {
	if err := apptType.Validate(); err != nil {
		return err
	}
	a.date = date
	a.location = location
	a.apptType = apptType
	a.priority = priority
	a.notes = notes
	return nil
}

func (a *Appointment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Appointment) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.customerID = id
	return nil
}

func (a *Appointment) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	a.apptType = t
	return nil
}
