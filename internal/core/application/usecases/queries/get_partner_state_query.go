// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// StateUnknown is reported for partners that never sent a service-state feed.
const StateUnknown = "unknown"

var (
	ErrGetPartnerStateQueryIsNotConstructed = errors.New(
		"GetPartnerStateQuery must be created via NewGetPartnerStateQuery constructor",
	)
)

// GetPartnerStateQuery reads the live service state of one partner.
//
// Example:
//
//	query, err := NewGetPartnerStateQuery(partnerID)
//	if err != nil {
//	    return err
//	}
//	state, err := NewGetPartnerStateQueryHandler(db).Handle(ctx, query)
type GetPartnerStateQuery struct {
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerStateQuery creates a query for the given partner.
func NewGetPartnerStateQuery(partnerID kernel.UUID) (GetPartnerStateQuery, error) {
	if err := partnerID.Validate(); err != nil {
		return GetPartnerStateQuery{}, err
	}

	return GetPartnerStateQuery{partnerID: partnerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerStateQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerStateQueryIsNotConstructed)
}

func (q GetPartnerStateQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

// GetPartnerStateQueryResponse is the read model of a partner's service state.
// Status and Availability are StateUnknown and LastUpdated is nil when the
// partner never reported a state.
type GetPartnerStateQueryResponse struct {
	PartnerID    kernel.UUID
	Name         string
	Status       string
	Availability string
	Capacity     int
	CurrentLoad  int
	LastUpdated  *time.Time
}
