package fleet

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// DropReason explains why a candidate stop is absent from a Plan.
type DropReason string

const (
	DropUnresolved  DropReason = "unresolved"
	DropMaxDistance DropReason = "max_distance"
	DropMaxDuration DropReason = "max_duration"
)

// PlannedStop is a stop included in a Plan together with the leg that reaches it.
type PlannedStop struct {
	StopID           kernel.UUID
	Location         kernel.Location
	Type             StopType
	Priority         int
	LegDistanceKm    float64
	LegDurationMin   float64
	EstimatedArrival time.Time
}

// DroppedStop is a candidate that was skipped during planning.
type DroppedStop struct {
	StopID kernel.UUID
	Reason DropReason
}

// Leg is a plain distance/duration pair.
type Leg struct {
	DistanceKm  float64
	DurationMin float64
}

// Plan is the route sequenced for one vehicle.
//
// TotalDistanceKm equals the sum of every stop leg plus the closing leg back to
// EndLocation; the same holds for TotalDurationMin.
type Plan struct {
	id               kernel.UUID
	vehicleID        kernel.UUID
	startLocation    kernel.Location
	endLocation      kernel.Location
	stops            []PlannedStop
	dropped          []DroppedStop
	closingLeg       Leg
	totalDistanceKm  float64
	totalDurationMin float64
	startTime        time.Time
	endTime          time.Time
}

// PlanParams carries the fields of a Plan.
type PlanParams struct {
	ID               kernel.UUID
	VehicleID        kernel.UUID
	StartLocation    kernel.Location
	EndLocation      kernel.Location
	Stops            []PlannedStop
	Dropped          []DroppedStop
	ClosingLeg       Leg
	TotalDistanceKm  float64
	TotalDurationMin float64
	StartTime        time.Time
	EndTime          time.Time
}

// NewPlan assembles a Plan from computed values.
func NewPlan(p PlanParams) *Plan {
	return &Plan{
		id:               p.ID,
		vehicleID:        p.VehicleID,
		startLocation:    p.StartLocation,
		endLocation:      p.EndLocation,
		stops:            p.Stops,
		dropped:          p.Dropped,
		closingLeg:       p.ClosingLeg,
		totalDistanceKm:  p.TotalDistanceKm,
		totalDurationMin: p.TotalDurationMin,
		startTime:        p.StartTime,
		endTime:          p.EndTime,
	}
}

func (p *Plan) ID() kernel.UUID {
	return p.id
}

func (p *Plan) VehicleID() kernel.UUID {
	return p.vehicleID
}

func (p *Plan) StartLocation() kernel.Location {
	return p.startLocation
}

func (p *Plan) EndLocation() kernel.Location {
	return p.endLocation
}

// Stops returns the visited stops in route order.
func (p *Plan) Stops() []PlannedStop {
	return append([]PlannedStop(nil), p.stops...)
}

// DroppedStops returns the skipped candidates in processing order.
func (p *Plan) DroppedStops() []DroppedStop {
	return append([]DroppedStop(nil), p.dropped...)
}

// Included returns the number of visited stops.
func (p *Plan) Included() int {
	return len(p.stops)
}

// Dropped returns the number of skipped candidates.
func (p *Plan) Dropped() int {
	return len(p.dropped)
}

func (p *Plan) ClosingLeg() Leg {
	return p.closingLeg
}

func (p *Plan) TotalDistanceKm() float64 {
	return p.totalDistanceKm
}

func (p *Plan) TotalDurationMin() float64 {
	return p.totalDurationMin
}

func (p *Plan) StartTime() time.Time {
	return p.startTime
}

func (p *Plan) EndTime() time.Time {
	return p.endTime
}
