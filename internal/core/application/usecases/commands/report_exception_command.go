package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/exception"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrReportExceptionCommandIsNotConstructed = errors.New(
		"ReportExceptionCommand must be created via NewReportExceptionCommand constructor",
	)
	ErrExceptionTypeIsRequired = errs.NewValueIsRequiredError("type")
	ErrDescriptionIsRequired   = errs.NewValueIsRequiredError("description")
)

// ReportExceptionCommand reports a delivery exception against an appointment.
// An empty severity defaults to medium.
//
// Example:
//
//	cmd, err := NewReportExceptionCommand(appointmentID, exception.TypeDeliveryDelay,
//	    "stuck in traffic on A100", exception.SeverityLow)
type ReportExceptionCommand struct { //nolint:recvcheck //using for validation
	appointmentID kernel.UUID
	excType       exception.Type
	description   string
	severity      exception.Severity

	guard guard.ConstructorGuard
}

// NewReportExceptionCommand creates an exception report command.
func NewReportExceptionCommand(
	appointmentID kernel.UUID,
	excType exception.Type,
	description string,
	severity exception.Severity,
) (ReportExceptionCommand, error) {
	cmd := ReportExceptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAppointmentID(appointmentID),
		cmd.setType(excType),
		cmd.setDescription(description),
		cmd.setSeverity(severity),
	); err != nil {
		return ReportExceptionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportExceptionCommand) Validate() error {
	return c.guard.Validate(ErrReportExceptionCommandIsNotConstructed)
}

func (c ReportExceptionCommand) AppointmentID() kernel.UUID {
	return c.appointmentID
}

func (c ReportExceptionCommand) Type() exception.Type {
	return c.excType
}

func (c ReportExceptionCommand) Description() string {
	return c.description
}

func (c ReportExceptionCommand) Severity() exception.Severity {
	return c.severity
}

func (c *ReportExceptionCommand) setAppointmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.appointmentID = id
	return nil
}

func (c *ReportExceptionCommand) setType(t exception.Type) error {
	if strings.TrimSpace(string(t)) == "" {
		return ErrExceptionTypeIsRequired
	}

	c.excType = t
	return nil
}

func (c *ReportExceptionCommand) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *ReportExceptionCommand) setSeverity(severity exception.Severity) error {
	if severity == "" {
		severity = exception.SeverityMedium
	}
	if err := severity.Validate(); err != nil {
		return err
	}

	c.severity = severity
	return nil
}
