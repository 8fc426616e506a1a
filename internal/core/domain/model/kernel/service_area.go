package kernel

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrServiceAreaIsNotConstructed is returned when a ServiceArea was not created via NewServiceArea.
var ErrServiceAreaIsNotConstructed = errs.NewValueIsRequiredError(
	"service area must be created via NewServiceArea constructor")

// ServiceArea is a circular zone in which a partner operates.
// The radius is expressed in the same unit as Distance, kilometers.
//
// Example:
//
//	center, _ := kernel.NewLocation(52.52, 13.405)
//	area, err := kernel.NewServiceArea("berlin-center", center, 15)
//	if err != nil {
//	    // Handle validation error
//	}
//	area.Contains(pickup)
type ServiceArea struct { //nolint:recvcheck //using for validation
	name     string
	center   Location
	radiusKm float64
	guard    guard.ConstructorGuard
}

// NewServiceArea creates a ServiceArea with a resolved center and a non-negative radius.
func NewServiceArea(name string, center Location, radiusKm float64) (ServiceArea, error) {
	area := ServiceArea{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		area.setName(name),
		area.setCenter(center),
		area.setRadius(radiusKm),
	); err != nil {
		return ServiceArea{}, err
	}

	return area, nil
}

// Validate checks if the ServiceArea was properly constructed using NewServiceArea.
func (a ServiceArea) Validate() error {
	return a.guard.Validate(ErrServiceAreaIsNotConstructed)
}

// Name returns the service area name.
func (a ServiceArea) Name() string {
	return a.name
}

// Center returns the center point of the area.
func (a ServiceArea) Center() Location {
	return a.center
}

// RadiusKm returns the radius in kilometers.
func (a ServiceArea) RadiusKm() float64 {
	return a.radiusKm
}

// Contains reports whether point lies inside the area, boundary included.
func (a ServiceArea) Contains(point Location) bool {
	return Distance(point, a.center) <= a.radiusKm
}

// String returns a human-readable representation of the area.
func (a ServiceArea) String() string {
	return fmt.Sprintf("ServiceArea(%s, %s, %.2fkm)", a.name, a.center, a.radiusKm)
}

func (a *ServiceArea) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *ServiceArea) setCenter(center Location) error {
	if err := center.Validate(); err != nil {
		return err
	}
	a.center = center
	return nil
}

func (a *ServiceArea) setRadius(radiusKm float64) error {
	if radiusKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"radius is invalid", fmt.Errorf("%v is negative", radiusKm))
	}
	a.radiusKm = radiusKm
	return nil
}
