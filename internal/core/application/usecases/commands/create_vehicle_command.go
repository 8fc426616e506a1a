package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/fleet"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateVehicleCommandIsNotConstructed = errors.New(
		"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
	)
)

// CreateVehicleCommand registers a fleet vehicle. An empty status means available.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	registrationNumber string
	vehicleType        fleet.VehicleType
	capacity           int
	status             fleet.VehicleStatus

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a vehicle registration command. Type, capacity and
// status are checked by fleet.NewVehicle.
func NewCreateVehicleCommand(
	registrationNumber string,
	vehicleType fleet.VehicleType,
	capacity int,
	status fleet.VehicleStatus,
) (CreateVehicleCommand, error) {
	registrationNumber = strings.TrimSpace(registrationNumber)
	if registrationNumber == "" {
		return CreateVehicleCommand{}, errs.NewValueIsRequiredError("registrationNumber")
	}
	if status == "" {
		status = fleet.VehicleAvailable
	}

	return CreateVehicleCommand{
		registrationNumber: registrationNumber,
		vehicleType:        vehicleType,
		capacity:           capacity,
		status:             status,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

func (c CreateVehicleCommand) RegistrationNumber() string {
	return c.registrationNumber
}

func (c CreateVehicleCommand) VehicleType() fleet.VehicleType {
	return c.vehicleType
}

func (c CreateVehicleCommand) Capacity() int {
	return c.capacity
}

func (c CreateVehicleCommand) Status() fleet.VehicleStatus {
	return c.status
}
