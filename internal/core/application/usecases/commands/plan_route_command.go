package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/fleet"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrPlanRouteCommandIsNotConstructed = errors.New(
		"PlanRouteCommand must be created via NewPlanRouteCommand constructor",
	)
	ErrDeliveriesAreRequired = errs.NewValueIsRequiredError("deliveries")
)

// PlanRouteCommand asks for a route for one vehicle through the given appointments.
// An unresolved end location means the route returns to its start.
//
// Example:
//
//	cmd, err := NewPlanRouteCommand(vehicleID, []kernel.UUID{a1, a2}, depot, kernel.Location{},
//	    fleet.Constraints{PrioritizeUrgent: true})
type PlanRouteCommand struct { //nolint:recvcheck //using for validation
	vehicleID      kernel.UUID
	appointmentIDs []kernel.UUID
	start          kernel.Location
	end            kernel.Location
	constraints    fleet.Constraints

	guard guard.ConstructorGuard
}

// NewPlanRouteCommand creates a route planning command.
func NewPlanRouteCommand(
	vehicleID kernel.UUID,
	appointmentIDs []kernel.UUID,
	start kernel.Location,
	end kernel.Location,
	constraints fleet.Constraints,
) (PlanRouteCommand, error) {
	cmd := PlanRouteCommand{
		end:         end,
		constraints: constraints,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setAppointmentIDs(appointmentIDs),
		cmd.setStart(start),
	); err != nil {
		return PlanRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlanRouteCommand) Validate() error {
	return c.guard.Validate(ErrPlanRouteCommandIsNotConstructed)
}

func (c PlanRouteCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// AppointmentIDs returns the appointments to visit, in request order.
func (c PlanRouteCommand) AppointmentIDs() []kernel.UUID {
	return c.appointmentIDs
}

func (c PlanRouteCommand) Start() kernel.Location {
	return c.start
}

func (c PlanRouteCommand) End() kernel.Location {
	return c.end
}

func (c PlanRouteCommand) Constraints() fleet.Constraints {
	return c.constraints
}

func (c *PlanRouteCommand) setVehicleID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}

func (c *PlanRouteCommand) setAppointmentIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrDeliveriesAreRequired
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id.String()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("deliveries",
				fmt.Errorf("appointment %s is listed more than once", id))
		}
		seen[id.String()] = struct{}{}
	}

	c.appointmentIDs = append([]kernel.UUID(nil), ids...)
	return nil
}

func (c *PlanRouteCommand) setStart(start kernel.Location) error {
	if err := start.Validate(); err != nil {
		return err
	}

	c.start = start
	return nil
}
