package ports

import (
	"context"

	"dispatch/internal/core/domain/model/exception"
	"dispatch/internal/core/domain/model/kernel"
)

// ExceptionRepository defines the persistence contract for delivery exceptions.
type ExceptionRepository interface {
	Add(ctx context.Context, e *exception.Exception) error
	Update(ctx context.Context, e *exception.Exception) error

	// Get retrieves an exception by its identifier.
	// Returns errs.ErrObjectNotFound when no such exception exists.
	Get(ctx context.Context, id kernel.UUID) (*exception.Exception, error)
}

// EscalationRepository records escalations to the operations team.
type EscalationRepository interface {
	Add(ctx context.Context, e *exception.Escalation) error
}
