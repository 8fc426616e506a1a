// Package pricingrepo provides GORM persistence for pricing rule sets, regional
// demand factors and issued price quotes.
package pricingrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RulesDTO represents the database structure of a pricing rule set.
// Factor tables are stored as jsonb objects keyed by their enum value.
type RulesDTO struct {
	ID               uuid.UUID          `gorm:"type:uuid;primaryKey"`
	BasePrice        float64            `gorm:"type:double precision;not null"`
	PricePerDistance float64            `gorm:"type:double precision;not null"`
	SizeFactors      map[string]float64 `gorm:"serializer:json;type:jsonb"`
	WeightFactor     float64            `gorm:"type:double precision;not null"`
	UrgencyFactors   map[string]float64 `gorm:"serializer:json;type:jsonb"`
	TimeOfDayFactors map[string]float64 `gorm:"serializer:json;type:jsonb"`
	WeekendFactor    float64            `gorm:"type:double precision;not null"`
	HolidayFactor    float64            `gorm:"type:double precision;not null"`
	Status           string             `gorm:"type:varchar(32);not null;index"`
	CreatedAt        time.Time          `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for rule sets.
func (RulesDTO) TableName() string {
	return "pricing_rules"
}

// RegionDemandDTO stores the demand factor of one region.
type RegionDemandDTO struct {
	Region       string    `gorm:"type:varchar(128);primaryKey"`
	DemandFactor float64   `gorm:"type:double precision;not null"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for region demand.
func (RegionDemandDTO) TableName() string {
	return "region_demand"
}

// QuoteDTO records an issued quote with its itemized breakdown.
type QuoteDTO struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Origin      LocationDTO       `gorm:"embedded;embeddedPrefix:origin_"`
	Destination LocationDTO       `gorm:"embedded;embeddedPrefix:destination_"`
	Size        string            `gorm:"type:varchar(16);not null"`
	Weight      float64           `gorm:"type:double precision;not null"`
	Urgency     string            `gorm:"type:varchar(16);not null"`
	DistanceKm  float64           `gorm:"type:double precision;not null"`
	Breakdown   pricing.Breakdown `gorm:"serializer:json;type:jsonb"`
	Total       decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	Currency    string            `gorm:"type:varchar(3);not null"`
	QuotedAt    time.Time         `gorm:"not null"`
}

// TableName specifies the database table name for quotes.
func (QuoteDTO) TableName() string {
	return "price_quotes"
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

func rulesFromDomain(r *pricing.Rules) RulesDTO {
	f := r.Factors()
	return RulesDTO{
		ID:               r.ID().Bytes(),
		BasePrice:        r.BasePrice(),
		PricePerDistance: r.PricePerDistance(),
		SizeFactors:      stringKeys(f.Size),
		WeightFactor:     f.Weight,
		UrgencyFactors:   stringKeys(f.Urgency),
		TimeOfDayFactors: stringKeys(f.TimeOfDay),
		WeekendFactor:    f.Weekend,
		HolidayFactor:    f.Holiday,
		Status:           r.Status(),
	}
}

// rulesToDomain restores a stored rule set. A row that fails domain validation is
// reported as ErrConfigurationIsInvalid: the operator wrote it, not the caller.
func rulesToDomain(dto RulesDTO) (*pricing.Rules, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, errs.NewConfigurationIsInvalidErrorWithCause("pricing rules", err)
	}

	rules, err := pricing.NewRules(id, dto.BasePrice, dto.PricePerDistance, pricing.Factors{
		Size:      typedKeys[pricing.PackageSize](dto.SizeFactors),
		Weight:    dto.WeightFactor,
		Urgency:   typedKeys[kernel.Urgency](dto.UrgencyFactors),
		TimeOfDay: typedKeys[pricing.TimeOfDay](dto.TimeOfDayFactors),
		Weekend:   dto.WeekendFactor,
		Holiday:   dto.HolidayFactor,
	}, dto.Status)
	if err != nil {
		return nil, errs.NewConfigurationIsInvalidErrorWithCause("pricing rules "+id.String(), err)
	}
	return rules, nil
}

func quoteFromDomain(q *pricing.Quote) QuoteDTO {
	return QuoteDTO{
		ID:          q.ID().Bytes(),
		Origin:      locationFromDomain(q.Origin()),
		Destination: locationFromDomain(q.Destination()),
		Size:        q.Size().String(),
		Weight:      q.Weight(),
		Urgency:     q.Urgency().String(),
		DistanceKm:  q.DistanceKm(),
		Breakdown:   q.Breakdown(),
		Total:       q.Total(),
		Currency:    q.Currency(),
		QuotedAt:    q.QuotedAt(),
	}
}

func stringKeys[K ~string](m map[K]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}

func typedKeys[K ~string](m map[string]float64) map[K]float64 {
	out := make(map[K]float64, len(m))
	for k, v := range m {
		out[K(k)] = v
	}
	return out
}
