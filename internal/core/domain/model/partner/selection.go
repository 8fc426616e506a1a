package partner

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// SelectionStatusPendingAcceptance is the status of a freshly recorded selection.
const SelectionStatusPendingAcceptance = "pending_acceptance"

// MaxFallbacks is how many partners after the primary are kept as fallbacks.
const MaxFallbacks = 2

// Candidate is one ranked partner in a Selection. InServiceArea tells whether
// the pickup lies inside one of the partner's service areas.
type Candidate struct {
	PartnerID     kernel.UUID
	Name          string
	Score         int
	Rank          int
	InServiceArea bool
}

// Selection is the recorded outcome of ranking partners for a single pickup.
// Rank 0 is the primary; ranks 1..MaxFallbacks are fallbacks.
type Selection struct {
	id            kernel.UUID
	appointmentID kernel.UUID
	serviceType   string
	pickup        kernel.Location
	urgency       kernel.Urgency
	candidates    []Candidate
	status        string
	createdAt     time.Time
}

// NewSelection records a ranking. candidates must already be ordered by rank.
// Only the primary and up to MaxFallbacks fallbacks are kept.
func NewSelection(
	id kernel.UUID,
	appointmentID kernel.UUID,
	serviceType string,
	pickup kernel.Location,
	urgency kernel.Urgency,
	candidates []Candidate,
	createdAt time.Time,
) (*Selection, error) {
	if err := errors.Join(id.Validate(), appointmentID.Validate(), pickup.Validate(), urgency.Validate()); err != nil {
		return nil, err
	}
	if strings.TrimSpace(serviceType) == "" {
		return nil, errs.NewValueIsRequiredError("serviceType")
	}

	kept := candidates
	if len(kept) > MaxFallbacks+1 {
		kept = kept[:MaxFallbacks+1]
	}
	ranked := make([]Candidate, len(kept))
	for i, c := range kept {
		c.Rank = i
		ranked[i] = c
	}

	return &Selection{
		id:            id,
		appointmentID: appointmentID,
		serviceType:   serviceType,
		pickup:        pickup,
		urgency:       urgency,
		candidates:    ranked,
		status:        SelectionStatusPendingAcceptance,
		createdAt:     createdAt,
	}, nil
}

func (s *Selection) ID() kernel.UUID {
	return s.id
}

// AppointmentID returns the appointment the partner is selected for.
func (s *Selection) AppointmentID() kernel.UUID {
	return s.appointmentID
}

func (s *Selection) ServiceType() string {
	return s.serviceType
}

func (s *Selection) Pickup() kernel.Location {
	return s.pickup
}

func (s *Selection) Urgency() kernel.Urgency {
	return s.urgency
}

func (s *Selection) Status() string {
	return s.status
}

func (s *Selection) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Selection) Candidates() []Candidate {
	return append([]Candidate(nil), s.candidates...)
}

func (s *Selection) HasCandidates() bool {
	return len(s.candidates) > 0
}

// Primary returns the rank-0 candidate; ok is false for an empty selection.
func (s *Selection) Primary() (Candidate, bool) {
	if len(s.candidates) == 0 {
		return Candidate{}, false
	}
	return s.candidates[0], true
}

// Fallbacks returns the candidates ranked after the primary.
func (s *Selection) Fallbacks() []Candidate {
	if len(s.candidates) <= 1 {
		return nil
	}
	return append([]Candidate(nil), s.candidates[1:]...)
}

// Degraded reports whether the best candidate was excluded by scoring (score 0).
// Zero-scored partners still appear in the ranking so that callers can see them.
func (s *Selection) Degraded() bool {
	p, ok := s.Primary()
	return !ok || p.Score == 0
}
