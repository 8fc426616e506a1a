package kernel

import "math"

const (
	// EarthRadiusKm is the mean Earth radius used by Distance.
	EarthRadiusKm = 6371.0

	// DefaultSpeedKmh is the average vehicle speed assumed by TravelTime.
	DefaultSpeedKmh = 30.0
)

// Distance calculates the great-circle distance between a and b in kilometers
// using the haversine formula.
//
// Distance is symmetric, returns exactly 0 for identical points and never fails.
// It does not validate its arguments: callers guarantee resolved coordinates.
//
// Example:
//
//	equator, _ := kernel.NewLocation(0, 0)
//	quarter, _ := kernel.NewLocation(0, 90)
//	d := kernel.Distance(equator, quarter) // ≈ 10007.5
func Distance(a, b Location) float64 {
	if a.latitude == b.latitude && a.longitude == b.longitude {
		return 0
	}

	dLat := degreesToRadians(b.latitude - a.latitude)
	dLon := degreesToRadians(b.longitude - a.longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(a.latitude))*math.Cos(degreesToRadians(b.latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// TravelTime estimates the minutes needed to cover distanceKm at DefaultSpeedKmh.
func TravelTime(distanceKm float64) float64 {
	return TravelTimeAt(distanceKm, DefaultSpeedKmh)
}

// TravelTimeAt estimates the minutes needed to cover distanceKm at speedKmh.
// A non-positive speed falls back to DefaultSpeedKmh.
func TravelTimeAt(distanceKm, speedKmh float64) float64 {
	if speedKmh <= 0 {
		speedKmh = DefaultSpeedKmh
	}
	return distanceKm / speedKmh * 60
}

func degreesToRadians(deg float64) float64 {
	return deg * (math.Pi / 180)
}
