package queries

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrListAppointmentsQueryIsNotConstructed = errors.New(
		"ListAppointmentsQuery must be created via NewListAppointmentsQuery constructor",
	)
	ErrGetAppointmentQueryIsNotConstructed = errors.New(
		"GetAppointmentQuery must be created via NewGetAppointmentQuery constructor",
	)
)

// ListAppointmentsQuery pages through appointments. An empty status matches every
// status and a zero from leaves the date unbounded.
type ListAppointmentsQuery struct {
	status string
	from   time.Time
	page   Page

	guard guard.ConstructorGuard
}

func NewListAppointmentsQuery(status string, from time.Time, page Page) ListAppointmentsQuery {
	return ListAppointmentsQuery{
		status: strings.TrimSpace(status),
		from:   from,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListAppointmentsQuery) Validate() error {
	return q.guard.Validate(ErrListAppointmentsQueryIsNotConstructed)
}

func (q ListAppointmentsQuery) Status() string {
	return q.status
}

func (q ListAppointmentsQuery) From() time.Time {
	return q.from
}

func (q ListAppointmentsQuery) Page() Page {
	return q.page
}

// GetAppointmentQuery reads one appointment.
type GetAppointmentQuery struct {
	appointmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAppointmentQuery(appointmentID kernel.UUID) (GetAppointmentQuery, error) {
	if err := appointmentID.Validate(); err != nil {
		return GetAppointmentQuery{}, err
	}
	return GetAppointmentQuery{appointmentID: appointmentID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAppointmentQuery) Validate() error {
	return q.guard.Validate(ErrGetAppointmentQueryIsNotConstructed)
}

func (q GetAppointmentQuery) AppointmentID() kernel.UUID {
	return q.appointmentID
}

// AppointmentRow is the read model of an appointment. Location is unresolved when
// the address was never geocoded.
type AppointmentRow struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	Date       time.Time
	Location   kernel.Location
	Type       string
	Status     string
	Priority   int
	Notes      string
}
