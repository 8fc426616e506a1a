// Package ports defines the contracts between the dispatch core and its infrastructure:
// repositories, the region-demand lookup and the notification sender.
// These interfaces enable dependency inversion and testability.
package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command, so concurrent requests
// and job runs never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one dispatch decision: the reads that feed the core and the
// writes that record its outcome commit or roll back together.
// Repositories obtained after Begin use the transaction; the command handlers see
// it through narrower interfaces exposing only the repositories they need.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	PartnerRepository() PartnerRepository
	ServiceStateRepository() ServiceStateRepository
	SelectionRepository() SelectionRepository
	PricingRulesRepository() PricingRulesRepository
	RegionDemandRepository() RegionDemandRepository
	QuoteRepository() QuoteRepository
	VehicleRepository() VehicleRepository
	RouteRepository() RouteRepository
	AppointmentRepository() AppointmentRepository
	CustomerRepository() CustomerRepository
	ExceptionRepository() ExceptionRepository
	EscalationRepository() EscalationRepository
	NotificationRepository() NotificationRepository
}
