package queries

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrListPartnersQueryIsNotConstructed = errors.New(
		"ListPartnersQuery must be created via NewListPartnersQuery constructor",
	)
)

// ListPartnersQuery lists active partners, optionally narrowed to one service type.
// An empty service type lists every active partner.
type ListPartnersQuery struct {
	serviceType string

	guard guard.ConstructorGuard
}

func NewListPartnersQuery(serviceType string) ListPartnersQuery {
	return ListPartnersQuery{
		serviceType: strings.TrimSpace(serviceType),
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListPartnersQuery) Validate() error {
	return q.guard.Validate(ErrListPartnersQueryIsNotConstructed)
}

func (q ListPartnersQuery) ServiceType() string {
	return q.serviceType
}

// ListPartnersQueryResponse is one row of the partner overview.
// Status falls back to StateUnknown for partners without a state feed.
type ListPartnersQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Priority     int
	Rating       float64
	ServiceTypes []string
	Status       string
	Availability string
}
