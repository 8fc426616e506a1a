package services

import (
	"math"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

const (
	priorityWeight = 10
	ratingWeight   = 5

	availableBonus = 50
	limitedBonus   = 20

	capacityWeight = 30

	distanceMaxBonus  = 50
	distancePenaltyKm = 2

	criticalMultiplier  = 1.5
	highMultiplier      = 1.2
	lowMultiplier       = 1.1
	lowCapacityFraction = 0.7
)

// PartnerScorer scores how well a partner suits a pickup.
//
// The score is a non-negative integer. Zero means the partner is excluded from
// consideration, which is a valid outcome and not an error.
//
// Scoring:
//   - base: priority*10 + rating*5
//   - state status other than active, or availability unavailable: 0
//   - availability: available +50, limited +20
//   - remaining capacity fraction, clamped to [0..1]: up to +30
//   - nearest service area center: max(0, 50 - 2*km), nothing without areas
//   - urgency multiplier: critical+available x1.5, high+available x1.2,
//     low with capacity fraction above 0.7 x1.1, otherwise x1.0
//   - rounded to the nearest integer, halves away from zero
//
// Example:
//
//	scorer := services.NewPartnerScorer()
//	score := scorer.Score(p, partner.DefaultServiceState(p.ID()), pickup, kernel.UrgencyNormal)
type PartnerScorer struct{}

// NewPartnerScorer creates a new PartnerScorer instance.
func NewPartnerScorer() PartnerScorer {
	return PartnerScorer{}
}

// Score computes the score of p for pickup. state must be resolved by the caller,
// see partner.DefaultServiceState; a nil state scores 0.
func (PartnerScorer) Score(p *partner.Partner, state *partner.ServiceState, pickup kernel.Location, urgency kernel.Urgency) int {
	if p == nil || state == nil {
		return 0
	}
	if state.Status() != partner.StatusActive {
		return 0
	}

	score := float64(p.Priority())*priorityWeight + p.Rating()*ratingWeight

	switch state.Availability() {
	case partner.AvailabilityAvailable:
		score += availableBonus
	case partner.AvailabilityLimited:
		score += limitedBonus
	default:
		return 0
	}

	capacityFraction := state.RemainingCapacityFraction()
	score += capacityFraction * capacityWeight

	if minDistance, ok := p.NearestAreaDistance(pickup); ok {
		score += math.Max(0, distanceMaxBonus-distancePenaltyKm*minDistance)
	}

	score *= urgencyMultiplier(urgency, state.Availability(), capacityFraction)

	return int(math.Round(score))
}

func urgencyMultiplier(urgency kernel.Urgency, availability partner.Availability, capacityFraction float64) float64 {
	available := availability == partner.AvailabilityAvailable

	switch {
	case urgency == kernel.UrgencyCritical && available:
		return criticalMultiplier
	case urgency == kernel.UrgencyHigh && available:
		return highMultiplier
	case urgency == kernel.UrgencyLow && capacityFraction > lowCapacityFraction:
		return lowMultiplier
	default:
		return 1
	}
}
