package ports

import (
	"context"

	"dispatch/internal/core/domain/model/fleet"
	"dispatch/internal/core/domain/model/kernel"
)

// VehicleRepository defines the persistence contract for vehicles.
type VehicleRepository interface {
	Add(ctx context.Context, v *fleet.Vehicle) error

	// Get retrieves a vehicle by its identifier.
	// Returns errs.ErrObjectNotFound when no such vehicle exists.
	Get(ctx context.Context, id kernel.UUID) (*fleet.Vehicle, error)

	// ExistsByRegistrationNumber reports whether a vehicle already uses reg.
	ExistsByRegistrationNumber(ctx context.Context, reg string) (bool, error)
}

// RouteRepository records planned routes.
type RouteRepository interface {
	Add(ctx context.Context, plan *fleet.Plan) error
}
