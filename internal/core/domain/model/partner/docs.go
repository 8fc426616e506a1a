// Package partner provides the domain model for external fulfilment partners.
//
// The package includes:
//   - Partner: the static partner profile (priority, rating, service areas, service types)
//   - ServiceState: the partner's live operational feed (availability, capacity, load)
//   - Status and Availability: the closed value sets used by both
//   - Selection: the recorded outcome of ranking partners for one pickup
//
// Key business rules:
//   - Rating lies within [0..5] and priority is never negative
//   - Capacity is strictly positive and current load is never negative
//   - Current load above capacity is accepted; scoring clamps it instead
//   - A partner without a recorded ServiceState is treated as DefaultServiceState
package partner
