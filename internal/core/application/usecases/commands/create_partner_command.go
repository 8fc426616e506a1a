package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// DefaultPartnerPriority is the priority of a partner registered without one.
	DefaultPartnerPriority = 1
	// DefaultPartnerRating is the rating of a partner registered without one.
	DefaultPartnerRating = 0.0
)

var (
	ErrCreatePartnerCommandIsNotConstructed = errors.New(
		"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
	)
)

// CreatePartnerCommand registers a fulfilment partner. A nil priority or rating and
// an empty status fall back to DefaultPartnerPriority, DefaultPartnerRating and
// partner.StatusActive.
//
// Example:
//
//	cmd, err := NewCreatePartnerCommand("QuickShip", nil, nil, areas, []string{"same_day"}, "")
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	name         string
	priority     int
	rating       float64
	serviceAreas []kernel.ServiceArea
	serviceTypes []string
	status       partner.Status

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a partner registration command. Range checks on
// priority and rating are left to partner.NewPartner.
func NewCreatePartnerCommand(
	name string,
	priority *int,
	rating *float64,
	serviceAreas []kernel.ServiceArea,
	serviceTypes []string,
	status partner.Status,
) (CreatePartnerCommand, error) {
	cmd := CreatePartnerCommand{
		priority:     DefaultPartnerPriority,
		rating:       DefaultPartnerRating,
		serviceAreas: serviceAreas,
		serviceTypes: serviceTypes,
		guard:        guard.NewConstructorGuard(),
	}
	if priority != nil {
		cmd.priority = *priority
	}
	if rating != nil {
		cmd.rating = *rating
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setStatus(status),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

func (c CreatePartnerCommand) Name() string {
	return c.name
}

func (c CreatePartnerCommand) Priority() int {
	return c.priority
}

func (c CreatePartnerCommand) Rating() float64 {
	return c.rating
}

func (c CreatePartnerCommand) ServiceAreas() []kernel.ServiceArea {
	return c.serviceAreas
}

func (c CreatePartnerCommand) ServiceTypes() []string {
	return c.serviceTypes
}

func (c CreatePartnerCommand) Status() partner.Status {
	return c.status
}

func (c *CreatePartnerCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreatePartnerCommand) setStatus(status partner.Status) error {
	if status == "" {
		status = partner.StatusActive
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
