package partner

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

const (
	// RatingMin is the lowest rating a partner can have.
	RatingMin = 0.0
	// RatingMax is the highest rating a partner can have.
	RatingMax = 5.0
)

var (
	// ErrPartnerIsNotConstructed is returned when a Partner instance was not created through
	// the NewPartner factory method.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
)

// Partner is the static profile of an external fulfilment provider.
//
// Partner follows these invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - Priority is not negative
//   - Rating lies within [RatingMin..RatingMax]
//   - Every service area is constructed
//
// Partner is read-only input to the dispatch core; it is never mutated by scoring.
type Partner struct {
	id           kernel.UUID
	name         string
	priority     int
	rating       float64
	serviceAreas []kernel.ServiceArea
	serviceTypes []string
	status       Status

	isConstructed bool
}

// NewPartner creates a new Partner with validation.
//
// Example:
//
//	area, _ := kernel.NewServiceArea("downtown", center, 10)
//	p, err := partner.NewPartner(kernel.NewUUID(), "QuickShip", 5, 4.5,
//	    []kernel.ServiceArea{area}, []string{"same_day"}, partner.StatusActive)
//	if err != nil {
//	    // Handle validation error
//	}
func NewPartner(
	id kernel.UUID,
	name string,
	priority int,
	rating float64,
	serviceAreas []kernel.ServiceArea,
	serviceTypes []string,
	status Status,
) (*Partner, error) {
	p := &Partner{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPriority(priority),
		p.setRating(rating),
		p.setServiceAreas(serviceAreas),
		p.setServiceTypes(serviceTypes),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Partner instance was properly constructed through NewPartner.
func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

// ID returns the partner's unique identifier.
func (p *Partner) ID() kernel.UUID {
	return p.id
}

// Name returns the partner's display name.
func (p *Partner) Name() string {
	return p.name
}

// Priority returns the commercial priority; higher wins.
func (p *Partner) Priority() int {
	return p.priority
}

// Rating returns the quality rating within [0..5].
func (p *Partner) Rating() float64 {
	return p.rating
}

// ServiceAreas returns a copy of the partner's service areas.
func (p *Partner) ServiceAreas() []kernel.ServiceArea {
	return slices.Clone(p.serviceAreas)
}

// ServiceTypes returns a copy of the supported service types.
func (p *Partner) ServiceTypes() []string {
	return slices.Clone(p.serviceTypes)
}

// Status returns the profile status.
func (p *Partner) Status() Status {
	return p.status
}

// IsActive reports whether the partner profile is active.
func (p *Partner) IsActive() bool {
	return p.status == StatusActive
}

// Supports reports whether the partner offers serviceType.
func (p *Partner) Supports(serviceType string) bool {
	return slices.Contains(p.serviceTypes, serviceType)
}

// NearestAreaDistance returns the distance in kilometers from point to the closest
// service area center. ok is false when the partner has no service areas.
func (p *Partner) NearestAreaDistance(point kernel.Location) (distanceKm float64, ok bool) {
	for i, area := range p.serviceAreas {
		d := kernel.Distance(point, area.Center())
		if i == 0 || d < distanceKm {
			distanceKm = d
		}
	}
	return distanceKm, len(p.serviceAreas) > 0
}

// Covers reports whether any service area contains point.
func (p *Partner) Covers(point kernel.Location) bool {
	return slices.ContainsFunc(p.serviceAreas, func(a kernel.ServiceArea) bool {
		return a.Contains(point)
	})
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Partner) setPriority(priority int) error {
	if priority < 0 {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%d is negative", priority))
	}
	p.priority = priority
	return nil
}

func (p *Partner) setRating(rating float64) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	p.rating = rating
	return nil
}

func (p *Partner) setServiceAreas(areas []kernel.ServiceArea) error {
	for _, a := range areas {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	p.serviceAreas = slices.Clone(areas)
	return nil
}

func (p *Partner) setServiceTypes(types []string) error {
	for _, t := range types {
		if strings.TrimSpace(t) == "" {
			return errs.NewValueIsInvalidErrorWithCause("service types are invalid", errors.New("empty service type"))
		}
	}
	p.serviceTypes = slices.Clone(types)
	return nil
}

func (p *Partner) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
