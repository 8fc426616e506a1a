package fleet

import (
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// DefaultStopPriority is used for stops whose priority was not set.
const DefaultStopPriority = 1

// StopType tells what happens at a stop.
type StopType string

const (
	StopPickup   StopType = "pickup"
	StopDelivery StopType = "delivery"
	StopBoth     StopType = "both"
)

// Validate checks that t is a known stop type.
func (t StopType) Validate() error {
	switch t {
	case StopPickup, StopDelivery, StopBoth:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("stop type is invalid", fmt.Errorf("%q is not a valid stop type", string(t)))
	}
}

// Stop is a candidate delivery stop. Its ID is the appointment it serves.
// Location may be unresolved; the planner skips such stops.
type Stop struct {
	ID       kernel.UUID
	Location kernel.Location
	Type     StopType
	Priority int
}

// NewStop builds a Stop, substituting DefaultStopPriority for an unset (zero) priority.
// Negative priorities are kept and sort after every positive one.
func NewStop(id kernel.UUID, location kernel.Location, stopType StopType, priority int) Stop {
	if priority == 0 {
		priority = DefaultStopPriority
	}
	return Stop{ID: id, Location: location, Type: stopType, Priority: priority}
}

// EffectivePriority returns Priority, or DefaultStopPriority when unset.
func (s Stop) EffectivePriority() int {
	if s.Priority == 0 {
		return DefaultStopPriority
	}
	return s.Priority
}

// Constraints are the optional limits of a route. A nil limit is unbounded.
//
// RespectTimeWindows is accepted for compatibility with existing callers and has no
// effect on planning.
type Constraints struct {
	MaxDistanceKm      *float64
	MaxDurationMin     *float64
	PrioritizeUrgent   bool
	RespectTimeWindows bool
}
