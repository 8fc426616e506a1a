// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PartnerRepoFactory provides access to partner repositories within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
		ServiceStateRepository() ports.ServiceStateRepository
		SelectionRepository() ports.SelectionRepository
	}

	// PricingRepoFactory provides access to pricing repositories within a transaction.
	PricingRepoFactory interface {
		PricingRulesRepository() ports.PricingRulesRepository
		QuoteRepository() ports.QuoteRepository
	}

	// FleetRepoFactory provides access to vehicle and route repositories within a transaction.
	FleetRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
		RouteRepository() ports.RouteRepository
	}

	// AppointmentRepoFactory provides access to appointment repository within a transaction.
	AppointmentRepoFactory interface {
		AppointmentRepository() ports.AppointmentRepository
	}

	// CustomerRepoFactory provides access to customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// ExceptionRepoFactory provides access to exception repositories within a transaction.
	ExceptionRepoFactory interface {
		ExceptionRepository() ports.ExceptionRepository
		EscalationRepository() ports.EscalationRepository
	}

	// NotificationRepoFactory provides access to notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// PartnerUoW manages transactions for partner selection and service-state updates.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// PricingUoW manages transactions for price quoting.
	PricingUoW interface {
		TxManager
		PricingRepoFactory
	}

	// PricingUoWFactory creates new pricing unit of work instances.
	PricingUoWFactory interface {
		Create() PricingUoW
	}

	// FleetUoW manages transactions for vehicle registration.
	FleetUoW interface {
		TxManager
		FleetRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// CustomerUoW manages transactions for customer registration.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// AppointmentUoW manages transactions for appointment bookkeeping.
	// Customers are read to check the owner of a new appointment.
	AppointmentUoW interface {
		TxManager
		AppointmentRepoFactory
		CustomerRepoFactory
	}

	// AppointmentUoWFactory creates new appointment unit of work instances.
	AppointmentUoWFactory interface {
		Create() AppointmentUoW
	}

	// RouteUoW manages transactions for route planning.
	// Appointments are read to build the candidate stops.
	RouteUoW interface {
		TxManager
		FleetRepoFactory
		AppointmentRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// ExceptionUoW manages transactions across exceptions and the aggregates
	// their remedies touch.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   appt, err := uow.AppointmentRepository().Get(ctx, appointmentID)
	//   err = uow.ExceptionRepository().Add(ctx, exc)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ExceptionUoW interface {
		TxManager
		AppointmentRepoFactory
		ExceptionRepoFactory
		NotificationRepoFactory
	}

	// ExceptionUoWFactory creates new exception unit of work instances.
	ExceptionUoWFactory interface {
		Create() ExceptionUoW
	}

	// NotificationUoW manages transactions for notification delivery.
	NotificationUoW interface {
		TxManager
		CustomerRepoFactory
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
