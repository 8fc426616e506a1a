// Package fleet provides the domain model for vehicles and the routes planned for them.
//
// The package includes:
//   - Vehicle: a fleet vehicle (truck, van or bike) with its capacity
//   - Stop: a delivery stop candidate, whose location may still be unresolved
//   - Constraints: the optional limits a route must respect
//   - Plan: the sequenced route produced for one vehicle, with per-leg figures
//
// A Plan always records which candidates were dropped and why, so callers can compare
// the number of included stops with the number of candidates.
package fleet
