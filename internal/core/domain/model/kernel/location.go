package kernel

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost valid longitude in degrees.
	LongitudeMax = 180.0
)

// ErrLocationIsNotConstructed is returned when a Location was not created via NewLocation.
// A zero-value Location is how the domain represents "coordinates not resolved yet".
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location represents a geographic point with validated coordinates.
// Location is an immutable value object. Address and region are optional
// descriptive attributes; region keys the demand lookup during pricing.
//
// The zero value of Location is unresolved: it fails Validate and IsResolved
// reports false. Stops whose address was never geocoded carry such a value.
//
// Example:
//
//	loc, err := kernel.NewLocation(52.5200, 13.4050)
//	if err != nil {
//	    // Handle validation error
//	}
//	loc = loc.WithAddress("Alexanderplatz 1", "berlin-mitte")
//	fmt.Printf("Location: %s", loc) // Output: Location(52.520000,13.405000)
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	address   string
	region    string
	guard     guard.ConstructorGuard
}

// NewLocation creates a new Location from degrees.
// Latitude must be within [LatitudeMin..LatitudeMax] and longitude within
// [LongitudeMin..LongitudeMax]. Both violations are reported together.
//
// Example:
//
//	loc, err := NewLocation(40.7128, -74.0060)
//	if err != nil {
//	    log.Fatal("Invalid coordinates:", err)
//	}
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// MustNewLocation is NewLocation for literals known to be valid; it panics otherwise.
func MustNewLocation(latitude, longitude float64) Location {
	loc, err := NewLocation(latitude, longitude)
	if err != nil {
		panic(err)
	}
	return loc
}

// WithAddress returns a copy of the location carrying the given address and region.
func (l Location) WithAddress(address, region string) Location {
	l.address = address
	l.region = region
	return l
}

// Validate checks if the Location was properly constructed using NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// IsResolved reports whether the location carries real coordinates.
func (l Location) IsResolved() bool {
	return l.Validate() == nil
}

// Latitude returns the latitude in degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// Address returns the optional street address.
func (l Location) Address() string {
	return l.address
}

// Region returns the optional region key used for demand lookups.
func (l Location) Region() string {
	return l.region
}

// DistanceTo returns the great-circle distance to other in kilometers.
// It is shorthand for Distance(l, other).
func (l Location) DistanceTo(other Location) float64 {
	return Distance(l, other)
}

// String returns a human-readable representation, "Location(lat,lon)".
func (l Location) String() string {
	if !l.IsResolved() {
		return "Location(unresolved)"
	}
	return fmt.Sprintf("Location(%f,%f)", l.latitude, l.longitude)
}

// setLatitude sets the latitude with validation.
// Pointer receivers on these private setters allow self-encapsulated validation
// during construction while public methods keep value receivers.
func (l *Location) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	l.longitude = longitude
	return nil
}
