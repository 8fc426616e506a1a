package services

import (
	"slices"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// RankedPartner is a scored candidate.
type RankedPartner struct {
	Partner       *partner.Partner
	State         *partner.ServiceState
	Score         int
	InServiceArea bool
}

// PartnerSelector ranks partners for a pickup using PartnerScorer.
//
// Partners that are not active or do not support the service type are filtered out.
// A partner with no entry in states is scored with partner.DefaultServiceState.
// Ranking is a stable sort by score, descending: equal scores keep the order in
// which partners were supplied. Zero-scored partners stay in the ranking.
type PartnerSelector struct {
	scorer PartnerScorer
}

// NewPartnerSelector creates a new PartnerSelector.
func NewPartnerSelector(scorer PartnerScorer) PartnerSelector {
	return PartnerSelector{scorer: scorer}
}

// Rank returns every eligible partner ordered best first.
func (s PartnerSelector) Rank(
	partners []*partner.Partner,
	states map[kernel.UUID]*partner.ServiceState,
	serviceType string,
	pickup kernel.Location,
	urgency kernel.Urgency,
) []RankedPartner {
	ranked := make([]RankedPartner, 0, len(partners))

	for _, p := range partners {
		if p.Validate() != nil || !p.IsActive() || !p.Supports(serviceType) {
			continue
		}

		state, ok := states[p.ID()]
		if !ok || state == nil {
			state = partner.DefaultServiceState(p.ID())
		}

		ranked = append(ranked, RankedPartner{
			Partner:       p,
			State:         state,
			Score:         s.scorer.Score(p, state, pickup, urgency),
			InServiceArea: p.Covers(pickup),
		})
	}

	slices.SortStableFunc(ranked, func(a, b RankedPartner) int {
		return b.Score - a.Score
	})

	return ranked
}

// Candidates converts a ranking into the primary and fallback candidates of a selection.
func (s PartnerSelector) Candidates(ranked []RankedPartner) []partner.Candidate {
	n := min(len(ranked), partner.MaxFallbacks+1)
	out := make([]partner.Candidate, n)
	for i := range n {
		out[i] = partner.Candidate{
			PartnerID:     ranked[i].Partner.ID(),
			Name:          ranked[i].Partner.Name(),
			Score:         ranked[i].Score,
			Rank:          i,
			InServiceArea: ranked[i].InServiceArea,
		}
	}
	return out
}
