package exception

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// EscalationStatusOpen is the status of a new escalation.
const EscalationStatusOpen = "open"

// EscalationSuffix is appended to the resolution of escalated exceptions.
const EscalationSuffix = " and escalated to operations team"

// Escalation hands a critical exception to the operations team.
type Escalation struct {
	id            kernel.UUID
	exceptionID   kernel.UUID
	appointmentID kernel.UUID
	excType       Type
	severity      Severity
	description   string
	status        string
	createdAt     time.Time
}

// NewEscalation creates an open escalation for exc.
func NewEscalation(id kernel.UUID, exc *Exception, createdAt time.Time) *Escalation {
	return &Escalation{
		id:            id,
		exceptionID:   exc.ID(),
		appointmentID: exc.AppointmentID(),
		excType:       exc.Type(),
		severity:      exc.Severity(),
		description:   exc.Description(),
		status:        EscalationStatusOpen,
		createdAt:     createdAt,
	}
}

func (e *Escalation) ID() kernel.UUID {
	return e.id
}

func (e *Escalation) ExceptionID() kernel.UUID {
	return e.exceptionID
}

func (e *Escalation) AppointmentID() kernel.UUID {
	return e.appointmentID
}

func (e *Escalation) Type() Type {
	return e.excType
}

func (e *Escalation) Severity() Severity {
	return e.severity
}

func (e *Escalation) Description() string {
	return e.description
}

func (e *Escalation) Status() string {
	return e.status
}

func (e *Escalation) CreatedAt() time.Time {
	return e.createdAt
}
