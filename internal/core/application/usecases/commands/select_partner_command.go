package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrSelectPartnerCommandIsNotConstructed = errors.New(
		"SelectPartnerCommand must be created via NewSelectPartnerCommand constructor",
	)
	ErrServiceTypeIsRequired = errs.NewValueIsRequiredError("serviceType")
)

// SelectPartnerCommand asks for the best partners to serve a pickup.
//
// Example:
//
//	cmd, err := NewSelectPartnerCommand(appointmentID, "express", pickup, kernel.UrgencyHigh)
//	if err != nil {
//	    return fmt.Errorf("invalid selection request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	primary, _ := result.Selection.Primary()
type SelectPartnerCommand struct { //nolint:recvcheck //using for validation
	appointmentID kernel.UUID
	serviceType   string
	pickup        kernel.Location
	urgency       kernel.Urgency

	guard guard.ConstructorGuard
}

// NewSelectPartnerCommand creates a partner selection command.
// An empty urgency defaults to normal.
func NewSelectPartnerCommand(
	appointmentID kernel.UUID,
	serviceType string,
	pickup kernel.Location,
	urgency kernel.Urgency,
) (SelectPartnerCommand, error) {
	cmd := SelectPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAppointmentID(appointmentID),
		cmd.setServiceType(serviceType),
		cmd.setPickup(pickup),
		cmd.setUrgency(urgency),
	); err != nil {
		return SelectPartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectPartnerCommand) Validate() error {
	return c.guard.Validate(ErrSelectPartnerCommandIsNotConstructed)
}

func (c SelectPartnerCommand) AppointmentID() kernel.UUID {
	return c.appointmentID
}

func (c SelectPartnerCommand) ServiceType() string {
	return c.serviceType
}

func (c SelectPartnerCommand) Pickup() kernel.Location {
	return c.pickup
}

func (c SelectPartnerCommand) Urgency() kernel.Urgency {
	return c.urgency
}

func (c *SelectPartnerCommand) setAppointmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.appointmentID = id
	return nil
}

func (c *SelectPartnerCommand) setServiceType(serviceType string) error {
	if strings.TrimSpace(serviceType) == "" {
		return ErrServiceTypeIsRequired
	}

	c.serviceType = serviceType
	return nil
}

func (c *SelectPartnerCommand) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}

func (c *SelectPartnerCommand) setUrgency(urgency kernel.Urgency) error {
	if urgency == "" {
		urgency = kernel.UrgencyNormal
	}
	if err := urgency.Validate(); err != nil {
		return err
	}

	c.urgency = urgency
	return nil
}
