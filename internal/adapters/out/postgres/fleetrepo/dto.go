// Package fleetrepo provides GORM persistence for vehicles and the routes planned
// for them.
package fleetrepo

import (
	"time"

	"dispatch/internal/core/domain/model/fleet"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure of a vehicle.
type VehicleDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	RegistrationNumber string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Type               string    `gorm:"type:varchar(16);not null"`
	Capacity           int       `gorm:"type:int;not null"`
	Status             string    `gorm:"type:varchar(16);not null"`
}

// TableName specifies the database table name for vehicles.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// RouteDTO records a planned route. Included stops live in route_stops; the
// skipped candidates are kept inline as jsonb.
type RouteDTO struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey"`
	VehicleID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	StartLocation      LocationDTO      `gorm:"embedded;embeddedPrefix:start_"`
	EndLocation        LocationDTO      `gorm:"embedded;embeddedPrefix:end_"`
	Stops              []RouteStopDTO   `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
	Dropped            []DroppedStopDTO `gorm:"serializer:json;type:jsonb"`
	ClosingDistanceKm  float64          `gorm:"type:double precision"`
	ClosingDurationMin float64          `gorm:"type:double precision"`
	TotalDistanceKm    float64          `gorm:"type:double precision;not null"`
	TotalDurationMin   float64          `gorm:"type:double precision;not null"`
	StartTime          time.Time        `gorm:"not null"`
	EndTime            time.Time        `gorm:"not null"`
}

// TableName specifies the database table name for routes.
func (RouteDTO) TableName() string {
	return "routes"
}

// RouteStopDTO is one included stop of a route, in visiting order.
type RouteStopDTO struct {
	ID               uint        `gorm:"primaryKey;autoIncrement"`
	RouteID          uuid.UUID   `gorm:"type:uuid;not null;index"`
	Sequence         int         `gorm:"type:int;not null"`
	StopID           uuid.UUID   `gorm:"type:uuid;not null"`
	Location         LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Type             string      `gorm:"type:varchar(16);not null"`
	Priority         int         `gorm:"type:int;not null"`
	LegDistanceKm    float64     `gorm:"type:double precision"`
	LegDurationMin   float64     `gorm:"type:double precision"`
	EstimatedArrival time.Time
}

// TableName specifies the database table name for route stops.
func (RouteStopDTO) TableName() string {
	return "route_stops"
}

// DroppedStopDTO is the JSON form of a skipped stop.
type DroppedStopDTO struct {
	StopID uuid.UUID `json:"stopId"`
	Reason string    `json:"reason"`
}

// LocationDTO represents an embedded geographic point.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
	Address   string  `gorm:"type:varchar(512)"`
	Region    string  `gorm:"type:varchar(128)"`
}

func locationFromDomain(l kernel.Location) LocationDTO {
	return LocationDTO{
		Latitude:  l.Latitude(),
		Longitude: l.Longitude(),
		Address:   l.Address(),
		Region:    l.Region(),
	}
}

func vehicleFromDomain(v *fleet.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:                 v.ID().Bytes(),
		RegistrationNumber: v.RegistrationNumber(),
		Type:               string(v.Type()),
		Capacity:           v.Capacity(),
		Status:             string(v.Status()),
	}
}

func vehicleToDomain(dto VehicleDTO) (*fleet.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return fleet.NewVehicle(id, dto.RegistrationNumber, fleet.VehicleType(dto.Type), dto.Capacity,
		fleet.VehicleStatus(dto.Status))
}

func routeFromDomain(p *fleet.Plan) RouteDTO {
	routeID := p.ID().Bytes()

	stops := make([]RouteStopDTO, 0, p.Included())
	for i, s := range p.Stops() {
		stops = append(stops, RouteStopDTO{
			RouteID:          routeID,
			Sequence:         i,
			StopID:           s.StopID.Bytes(),
			Location:         locationFromDomain(s.Location),
			Type:             string(s.Type),
			Priority:         s.Priority,
			LegDistanceKm:    s.LegDistanceKm,
			LegDurationMin:   s.LegDurationMin,
			EstimatedArrival: s.EstimatedArrival,
		})
	}

	dropped := make([]DroppedStopDTO, 0, p.Dropped())
	for _, d := range p.DroppedStops() {
		dropped = append(dropped, DroppedStopDTO{StopID: d.StopID.Bytes(), Reason: string(d.Reason)})
	}

	closing := p.ClosingLeg()
	return RouteDTO{
		ID:                 routeID,
		VehicleID:          p.VehicleID().Bytes(),
		StartLocation:      locationFromDomain(p.StartLocation()),
		EndLocation:        locationFromDomain(p.EndLocation()),
		Stops:              stops,
		Dropped:            dropped,
		ClosingDistanceKm:  closing.DistanceKm,
		ClosingDurationMin: closing.DurationMin,
		TotalDistanceKm:    p.TotalDistanceKm(),
		TotalDurationMin:   p.TotalDurationMin(),
		StartTime:          p.StartTime(),
		EndTime:            p.EndTime(),
	}
}
