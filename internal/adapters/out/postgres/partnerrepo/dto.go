// Package partnerrepo provides GORM persistence for fulfilment partners, their
// service-state feed and the selections made among them.
package partnerrepo

import (
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// PartnerDTO represents the database structure for persisting partner profiles.
// Supported service types are kept in a text[] column so FindActiveByServiceType can
// filter with ANY().
type PartnerDTO struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name         string           `gorm:"type:varchar(255);not null"`
	Priority     int              `gorm:"type:int;not null"`
	Rating       float64          `gorm:"type:double precision;not null"`
	ServiceTypes pq.StringArray   `gorm:"type:text[]"`
	Status       string           `gorm:"type:varchar(32);not null;index"`
	ServiceAreas []ServiceAreaDTO `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time        `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for partner entities.
func (PartnerDTO) TableName() string {
	return "partners"
}

// ServiceAreaDTO stores one circular service area of a partner.
// Position keeps the order in which the areas were declared.
type ServiceAreaDTO struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"`
	PartnerID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Position  int         `gorm:"type:int;not null"`
	Name      string      `gorm:"type:varchar(255);not null"`
	Center    LocationDTO `gorm:"embedded;embeddedPrefix:center_"`
	RadiusKm  float64     `gorm:"type:double precision;not null"`
}

// TableName specifies the database table name for service areas.
func (ServiceAreaDTO) TableName() string {
	return "partner_service_areas"
}

// LocationDTO represents an embedded geographic point.
type LocationDTO struct {
	Latitude  float64 `gorm:"type:double precision"`
	Longitude float64 `gorm:"type:double precision"`
	Address   string  `gorm:"type:varchar(512)"`
	Region    string  `gorm:"type:varchar(128)"`
}

// ServiceStateDTO is the latest reported operational state of a partner.
type ServiceStateDTO struct {
	PartnerID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status       string    `gorm:"type:varchar(32);not null"`
	Availability string    `gorm:"type:varchar(32);not null"`
	Capacity     int       `gorm:"type:int;not null"`
	CurrentLoad  int       `gorm:"type:int;not null"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for partner service states.
func (ServiceStateDTO) TableName() string {
	return "partner_service_states"
}

// SelectionDTO records one partner selection.
type SelectionDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	AppointmentID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	ServiceType        string         `gorm:"type:varchar(64);not null"`
	Pickup             LocationDTO    `gorm:"embedded;embeddedPrefix:pickup_"`
	Urgency            string         `gorm:"type:varchar(16);not null"`
	PrimaryPartnerID   *uuid.UUID     `gorm:"type:uuid;index"`
	FallbackPartnerIDs pq.StringArray `gorm:"type:text[]"`
	Candidates         []CandidateDTO `gorm:"serializer:json;type:jsonb"`
	Status             string         `gorm:"type:varchar(32);not null"`
	CreatedAt          time.Time
}

// TableName specifies the database table name for partner selections.
func (SelectionDTO) TableName() string {
	return "partner_selections"
}

// CandidateDTO is the JSON form of a ranked candidate.
type CandidateDTO struct {
	PartnerID     uuid.UUID `json:"partnerId"`
	Name          string    `json:"name"`
	Score         int       `json:"score"`
	Rank          int       `json:"rank"`
	InServiceArea bool      `json:"inServiceArea"`
}

func locationFromDomain(l kernel.Location) LocationDTO {
	return LocationDTO{
		Latitude:  l.Latitude(),
		Longitude: l.Longitude(),
		Address:   l.Address(),
		Region:    l.Region(),
	}
}

func locationToDomain(dto LocationDTO) (kernel.Location, error) {
	loc, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return kernel.Location{}, err
	}
	return loc.WithAddress(dto.Address, dto.Region), nil
}

// fromDomain converts a partner aggregate to its database representation.
func fromDomain(p *partner.Partner) PartnerDTO {
	partnerID := p.ID().Bytes()
	areas := make([]ServiceAreaDTO, 0, len(p.ServiceAreas()))
	for i, a := range p.ServiceAreas() {
		areas = append(areas, ServiceAreaDTO{
			PartnerID: partnerID,
			Position:  i,
			Name:      a.Name(),
			Center:    locationFromDomain(a.Center()),
			RadiusKm:  a.RadiusKm(),
		})
	}

	return PartnerDTO{
		ID:           partnerID,
		Name:         p.Name(),
		Priority:     p.Priority(),
		Rating:       p.Rating(),
		ServiceTypes: pq.StringArray(p.ServiceTypes()),
		Status:       p.Status().String(),
		ServiceAreas: areas,
	}
}

// toDomain rebuilds a partner aggregate from its row and preloaded service areas.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	areas := make([]kernel.ServiceArea, 0, len(dto.ServiceAreas))
	for _, a := range dto.ServiceAreas {
		center, centerErr := locationToDomain(a.Center)
		if centerErr != nil {
			return nil, fmt.Errorf("service area %q: %w", a.Name, centerErr)
		}
		area, areaErr := kernel.NewServiceArea(a.Name, center, a.RadiusKm)
		if areaErr != nil {
			return nil, areaErr
		}
		areas = append(areas, area)
	}

	return partner.NewPartner(id, dto.Name, dto.Priority, dto.Rating, areas,
		[]string(dto.ServiceTypes), partner.Status(dto.Status))
}

func stateFromDomain(s *partner.ServiceState) ServiceStateDTO {
	return ServiceStateDTO{
		PartnerID:    s.PartnerID().Bytes(),
		Status:       s.Status().String(),
		Availability: s.Availability().String(),
		Capacity:     s.Capacity(),
		CurrentLoad:  s.CurrentLoad(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

func stateToDomain(dto ServiceStateDTO) (*partner.ServiceState, error) {
	id, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}

	return partner.NewServiceState(id, partner.Status(dto.Status), partner.Availability(dto.Availability),
		dto.Capacity, dto.CurrentLoad, dto.UpdatedAt)
}

func selectionFromDomain(s *partner.Selection) SelectionDTO {
	candidates := make([]CandidateDTO, 0, len(s.Candidates()))
	for _, c := range s.Candidates() {
		candidates = append(candidates, CandidateDTO{
			PartnerID:     c.PartnerID.Bytes(),
			Name:          c.Name,
			Score:         c.Score,
			Rank:          c.Rank,
			InServiceArea: c.InServiceArea,
		})
	}

	var primaryID *uuid.UUID
	if primary, ok := s.Primary(); ok {
		raw := primary.PartnerID.Bytes()
		primaryID = &raw
	}

	fallbacks := make(pq.StringArray, 0, partner.MaxFallbacks)
	for _, c := range s.Fallbacks() {
		fallbacks = append(fallbacks, c.PartnerID.String())
	}

	return SelectionDTO{
		ID:                 s.ID().Bytes(),
		AppointmentID:      s.AppointmentID().Bytes(),
		ServiceType:        s.ServiceType(),
		Pickup:             locationFromDomain(s.Pickup()),
		Urgency:            s.Urgency().String(),
		PrimaryPartnerID:   primaryID,
		FallbackPartnerIDs: fallbacks,
		Candidates:         candidates,
		Status:             s.Status(),
		CreatedAt:          s.CreatedAt(),
	}
}
