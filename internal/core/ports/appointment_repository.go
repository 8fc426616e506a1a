package ports

import (
	"context"

	"dispatch/internal/core/domain/model/appointment"
	"dispatch/internal/core/domain/model/kernel"
)

// AppointmentRepository defines the persistence contract for appointments.
type AppointmentRepository interface {
	Add(ctx context.Context, a *appointment.Appointment) error

	// Update persists changes to an existing appointment.
	Update(ctx context.Context, a *appointment.Appointment) error

	// Get retrieves an appointment by its identifier.
	// Returns errs.ErrObjectNotFound when no such appointment exists.
	Get(ctx context.Context, id kernel.UUID) (*appointment.Appointment, error)

	// GetMany retrieves the given appointments in the order of ids.
	// Returns errs.ErrObjectNotFound naming the first missing id.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*appointment.Appointment, error)

	// Delete removes an appointment.
	// Returns errs.ErrObjectNotFound when no such appointment exists.
	Delete(ctx context.Context, id kernel.UUID) error
}

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	Add(ctx context.Context, c *appointment.Customer) error

	// Get retrieves a customer by its identifier.
	// Returns errs.ErrObjectNotFound when no such customer exists.
	Get(ctx context.Context, id kernel.UUID) (*appointment.Customer, error)

	// ExistsByEmail reports whether a customer is already registered with email.
	// Matching ignores case.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
