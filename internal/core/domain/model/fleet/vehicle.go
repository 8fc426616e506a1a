package fleet

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// VehicleType is the kind of vehicle.
type VehicleType string

const (
	VehicleTruck VehicleType = "truck"
	VehicleVan   VehicleType = "van"
	VehicleBike  VehicleType = "bike"
)

// VehicleStatus is the operational status of a vehicle.
type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleInUse       VehicleStatus = "in-use"
	VehicleMaintenance VehicleStatus = "maintenance"
)

// ErrVehicleIsNotConstructed is returned when a Vehicle was not created via NewVehicle.
var ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")

// Vehicle is a fleet vehicle a route is planned for.
type Vehicle struct {
	id                 kernel.UUID
	registrationNumber string
	vehicleType        VehicleType
	capacity           int
	status             VehicleStatus

	isConstructed bool
}

// NewVehicle creates a validated Vehicle.
//
// Example:
//
//	v, err := fleet.NewVehicle(kernel.NewUUID(), "B-DX 1024", fleet.VehicleVan, 40, fleet.VehicleAvailable)
func NewVehicle(
	id kernel.UUID,
	registrationNumber string,
	vehicleType VehicleType,
	capacity int,
	status VehicleStatus,
) (*Vehicle, error) {
	v := &Vehicle{isConstructed: true}

	if err := errors.Join(
		v.setID(id),
		v.setRegistrationNumber(registrationNumber),
		v.setType(vehicleType),
		v.setCapacity(capacity),
		v.setStatus(status),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate ensures the Vehicle was properly constructed.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

func (v *Vehicle) RegistrationNumber() string {
	return v.registrationNumber
}

func (v *Vehicle) Type() VehicleType {
	return v.vehicleType
}

func (v *Vehicle) Capacity() int {
	return v.capacity
}

func (v *Vehicle) Status() VehicleStatus {
	return v.status
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setRegistrationNumber(reg string) error {
	if strings.TrimSpace(reg) == "" {
		return errs.NewValueIsRequiredError("registrationNumber")
	}
	v.registrationNumber = reg
	return nil
}

func (v *Vehicle) setType(t VehicleType) error {
	switch t {
	case VehicleTruck, VehicleVan, VehicleBike:
		v.vehicleType = t
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("vehicle type is invalid", fmt.Errorf("%q is not a valid vehicle type", string(t)))
	}
}

func (v *Vehicle) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity is invalid", fmt.Errorf("%d is not greater than 0", capacity))
	}
	v.capacity = capacity
	return nil
}

func (v *Vehicle) setStatus(s VehicleStatus) error {
	switch s {
	case VehicleAvailable, VehicleInUse, VehicleMaintenance:
		v.status = s
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("vehicle status is invalid", fmt.Errorf("%q is not a valid vehicle status", string(s)))
	}
}
