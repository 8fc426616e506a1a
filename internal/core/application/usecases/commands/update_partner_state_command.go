package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/guard"
)

var (
	ErrUpdatePartnerStateCommandIsNotConstructed = errors.New(
		"UpdatePartnerStateCommand must be created via NewUpdatePartnerStateCommand constructor",
	)
)

// UpdatePartnerStateCommand replaces the live service state of a partner.
// A nil capacity or load falls back to partner.DefaultCapacity and
// partner.DefaultCurrentLoad.
//
// Example:
//
//	load := 80
//	cmd, err := NewUpdatePartnerStateCommand(partnerID, partner.StatusActive,
//	    partner.AvailabilityLimited, nil, &load)
type UpdatePartnerStateCommand struct { //nolint:recvcheck //using for validation
	partnerID    kernel.UUID
	status       partner.Status
	availability partner.Availability
	capacity     int
	currentLoad  int

	guard guard.ConstructorGuard
}

// NewUpdatePartnerStateCommand creates a service-state update command.
// Range checks on capacity and load are left to partner.NewServiceState.
func NewUpdatePartnerStateCommand(
	partnerID kernel.UUID,
	status partner.Status,
	availability partner.Availability,
	capacity *int,
	currentLoad *int,
) (UpdatePartnerStateCommand, error) {
	cmd := UpdatePartnerStateCommand{
		capacity:    partner.DefaultCapacity,
		currentLoad: partner.DefaultCurrentLoad,
		guard:       guard.NewConstructorGuard(),
	}
	if capacity != nil {
		cmd.capacity = *capacity
	}
	if currentLoad != nil {
		cmd.currentLoad = *currentLoad
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setStatus(status),
		cmd.setAvailability(availability),
	); err != nil {
		return UpdatePartnerStateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePartnerStateCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerStateCommandIsNotConstructed)
}

func (c UpdatePartnerStateCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c UpdatePartnerStateCommand) Status() partner.Status {
	return c.status
}

func (c UpdatePartnerStateCommand) Availability() partner.Availability {
	return c.availability
}

func (c UpdatePartnerStateCommand) Capacity() int {
	return c.capacity
}

func (c UpdatePartnerStateCommand) CurrentLoad() int {
	return c.currentLoad
}

func (c *UpdatePartnerStateCommand) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.partnerID = id
	return nil
}

func (c *UpdatePartnerStateCommand) setStatus(status partner.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdatePartnerStateCommand) setAvailability(availability partner.Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}

	c.availability = availability
	return nil
}
