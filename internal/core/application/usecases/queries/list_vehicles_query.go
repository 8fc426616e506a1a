package queries

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrListVehiclesQueryIsNotConstructed = errors.New(
		"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
	)
)

// ListVehiclesQuery pages through the fleet. Empty filters match every vehicle.
type ListVehiclesQuery struct {
	vehicleType string
	status      string
	page        Page

	guard guard.ConstructorGuard
}

func NewListVehiclesQuery(vehicleType, status string, page Page) ListVehiclesQuery {
	return ListVehiclesQuery{
		vehicleType: strings.TrimSpace(vehicleType),
		status:      strings.TrimSpace(status),
		page:        page,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

func (q ListVehiclesQuery) VehicleType() string {
	return q.vehicleType
}

func (q ListVehiclesQuery) Status() string {
	return q.status
}

func (q ListVehiclesQuery) Page() Page {
	return q.page
}

type VehicleRow struct {
	ID                 kernel.UUID
	RegistrationNumber string
	Type               string
	Capacity           int
	Status             string
}
