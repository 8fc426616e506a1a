// Package services provides the decision-support core of the dispatch system: domain
// services that operate on fully specified inputs and hold no state of their own.
//
// The package includes:
//   - PartnerScorer: scores one partner for a pickup (0 means excluded)
//   - PartnerSelector: filters, scores and ranks partners into primary and fallbacks
//   - PricingEngine: computes an itemized dynamic price
//   - RoutePlanner: sequences delivery stops for one vehicle in a single greedy pass
//   - ExceptionResolver: applies the remedy playbook to a delivery exception
//
// All services except ExceptionResolver are pure computations. ExceptionResolver
// reaches collaborators only through the RemediationEffects interface and never
// returns an error: failures are reported in the exception's resolution text.
package services
