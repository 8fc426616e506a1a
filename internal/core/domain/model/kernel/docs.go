// Package kernel provides core domain primitives shared by every part of the
// dispatch core.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Location: A geographic point (latitude/longitude in degrees) with optional address and region
//   - ServiceArea: A circular zone (center + radius in kilometers)
//   - Urgency: The caller-declared priority tier of a delivery request
//   - Distance, TravelTime: great-circle distance and travel-time estimation
//
// Distance and TravelTime never fail. The scorer, the pricing engine and the route
// planner all measure through them, so they must stay consistent with each other.
package kernel
