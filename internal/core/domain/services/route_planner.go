package services

import (
	"errors"
	"slices"
	"time"

	"dispatch/internal/core/domain/model/fleet"
	"dispatch/internal/core/domain/model/kernel"
)

// ErrStartLocationIsRequired is returned when a plan has no resolved start location.
var ErrStartLocationIsRequired = errors.New("start location is required")

// PlanInput is everything a route depends on. A zero End means "return to Start".
type PlanInput struct {
	ID          kernel.UUID
	Vehicle     *fleet.Vehicle
	Stops       []fleet.Stop
	Start       kernel.Location
	End         kernel.Location
	Constraints fleet.Constraints
}

// RoutePlanner sequences delivery stops for one vehicle.
//
// It is a single greedy pass in candidate order, not a shortest-route solver:
//   - with PrioritizeUrgent, candidates are first stably sorted by priority, descending
//   - stops with unresolved coordinates are dropped
//   - a stop whose leg would push the running distance or duration over its limit
//     is dropped and never retried; later stops may still fit
//   - a closing leg from the last stop to End is folded into the totals
//
// A non-positive MaxDistanceKm or MaxDurationMin counts as no limit. The closing leg
// is not checked against the limits. RespectTimeWindows has no effect.
type RoutePlanner struct {
	now      func() time.Time
	speedKmh float64
}

// NewRoutePlanner creates a RoutePlanner timing legs at kernel.DefaultSpeedKmh.
// now supplies the route start time; time.Now is used when nil.
func NewRoutePlanner(now func() time.Time) RoutePlanner {
	if now == nil {
		now = time.Now
	}
	return RoutePlanner{now: now, speedKmh: kernel.DefaultSpeedKmh}
}

// Plan builds a route. It fails only for an invalid vehicle or an unresolved start;
// stops that cannot be visited are reported through Plan.DroppedStops.
func (r RoutePlanner) Plan(in PlanInput) (*fleet.Plan, error) {
	if err := in.Vehicle.Validate(); err != nil {
		return nil, err
	}
	if !in.Start.IsResolved() {
		return nil, ErrStartLocationIsRequired
	}
	end := in.End
	if !end.IsResolved() {
		end = in.Start
	}

	candidates := slices.Clone(in.Stops)
	if in.Constraints.PrioritizeUrgent {
		slices.SortStableFunc(candidates, func(a, b fleet.Stop) int {
			return b.EffectivePriority() - a.EffectivePriority()
		})
	}

	var (
		startTime     = r.now()
		currentTime   = startTime
		current       = in.Start
		totalDistance float64
		totalDuration float64
		planned       = make([]fleet.PlannedStop, 0, len(candidates))
		dropped       []fleet.DroppedStop
	)

	for _, stop := range candidates {
		if !stop.Location.IsResolved() {
			dropped = append(dropped, fleet.DroppedStop{StopID: stop.ID, Reason: fleet.DropUnresolved})
			continue
		}

		distance := kernel.Distance(current, stop.Location)
		if exceeds(in.Constraints.MaxDistanceKm, totalDistance+distance) {
			dropped = append(dropped, fleet.DroppedStop{StopID: stop.ID, Reason: fleet.DropMaxDistance})
			continue
		}

		duration := kernel.TravelTimeAt(distance, r.speedKmh)
		if exceeds(in.Constraints.MaxDurationMin, totalDuration+duration) {
			dropped = append(dropped, fleet.DroppedStop{StopID: stop.ID, Reason: fleet.DropMaxDuration})
			continue
		}

		currentTime = currentTime.Add(minutes(duration))
		planned = append(planned, fleet.PlannedStop{
			StopID:           stop.ID,
			Location:         stop.Location,
			Type:             stop.Type,
			Priority:         stop.EffectivePriority(),
			LegDistanceKm:    distance,
			LegDurationMin:   duration,
			EstimatedArrival: currentTime,
		})

		current = stop.Location
		totalDistance += distance
		totalDuration += duration
	}

	closing := fleet.Leg{DistanceKm: kernel.Distance(current, end)}
	closing.DurationMin = kernel.TravelTimeAt(closing.DistanceKm, r.speedKmh)
	totalDistance += closing.DistanceKm
	totalDuration += closing.DurationMin

	return fleet.NewPlan(fleet.PlanParams{
		ID:               in.ID,
		VehicleID:        in.Vehicle.ID(),
		StartLocation:    in.Start,
		EndLocation:      end,
		Stops:            planned,
		Dropped:          dropped,
		ClosingLeg:       closing,
		TotalDistanceKm:  totalDistance,
		TotalDurationMin: totalDuration,
		StartTime:        startTime,
		EndTime:          startTime.Add(minutes(totalDuration)),
	}), nil
}

func exceeds(limit *float64, value float64) bool {
	return limit != nil && *limit > 0 && value > *limit
}

func minutes(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}
