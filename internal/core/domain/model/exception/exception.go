package exception

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrExceptionIsNotConstructed is returned when an Exception instance was not created
	// through the NewException factory method.
	ErrExceptionIsNotConstructed = errors.New("Exception must be created via NewException constructor")
)

// Exception is a problem reported against an appointment after dispatch. It is the
// only entity whose state the dispatch core mutates.
//
// Exception follows these invariants:
//   - Must have valid identifiers for itself and its appointment
//   - Type is not empty; unknown types are allowed
//   - Status transitions are forward-only, see Status
type Exception struct {
	id            kernel.UUID
	appointmentID kernel.UUID
	excType       Type
	description   string
	severity      Severity
	status        Status
	resolution    string
	handledAt     *time.Time
	createdAt     time.Time

	isConstructed bool
}

// NewException creates an Open exception.
//
// Example:
//
//	exc, err := exception.NewException(kernel.NewUUID(), appointmentID,
//	    exception.TypeDeliveryDelay, "stuck in traffic", exception.SeverityLow, time.Now())
func NewException(
	id kernel.UUID,
	appointmentID kernel.UUID,
	excType Type,
	description string,
	severity Severity,
	createdAt time.Time,
) (*Exception, error) {
	e := &Exception{
		description:   description,
		status:        Open,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setAppointmentID(appointmentID),
		e.setType(excType),
		e.setSeverity(severity),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreException rebuilds an Exception from persistence.
func RestoreException(
	id, appointmentID kernel.UUID,
	excType Type,
	description string,
	severity Severity,
	status Status,
	resolution string,
	handledAt *time.Time,
	createdAt time.Time,
) (*Exception, error) {
	e, err := NewException(id, appointmentID, excType, description, severity, createdAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	e.status = status
	e.resolution = resolution
	e.handledAt = handledAt
	return e, nil
}

// Validate ensures the Exception was properly constructed through NewException.
func (e *Exception) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrExceptionIsNotConstructed
	}
	return nil
}

func (e *Exception) ID() kernel.UUID {
	return e.id
}

func (e *Exception) AppointmentID() kernel.UUID {
	return e.appointmentID
}

func (e *Exception) Type() Type {
	return e.excType
}

func (e *Exception) Description() string {
	return e.description
}

func (e *Exception) Severity() Severity {
	return e.severity
}

func (e *Exception) Status() Status {
	return e.status
}

func (e *Exception) Resolution() string {
	return e.resolution
}

// HandledAt returns when the exception was last handled, nil if never.
func (e *Exception) HandledAt() *time.Time {
	return e.handledAt
}

func (e *Exception) CreatedAt() time.Time {
	return e.createdAt
}

// StartHandling moves the exception to InProgress and records the resolution text.
func (e *Exception) StartHandling(resolution string, at time.Time) error {
	next, err := e.status.StartHandling()
	if err != nil {
		return err
	}
	e.status = next
	e.resolution = resolution
	e.handledAt = &at
	return nil
}

// AppendResolution extends the resolution text.
func (e *Exception) AppendResolution(suffix string) {
	e.resolution += suffix
}

// Resolve moves an InProgress exception to Resolved.
func (e *Exception) Resolve() error {
	next, err := e.status.Resolve()
	if err != nil {
		return err
	}
	e.status = next
	return nil
}

// Close moves an InProgress exception to Closed.
func (e *Exception) Close() error {
	next, err := e.status.Close()
	if err != nil {
		return err
	}
	e.status = next
	return nil
}

func (e *Exception) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Exception) setAppointmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.appointmentID = id
	return nil
}

func (e *Exception) setType(t Type) error {
	if strings.TrimSpace(string(t)) == "" {
		return errs.NewValueIsRequiredError("type")
	}
	e.excType = t
	return nil
}

func (e *Exception) setSeverity(s Severity) error {
	if s == "" {
		s = SeverityMedium
	}
	if err := s.Validate(); err != nil {
		return err
	}
	e.severity = s
	return nil
}
