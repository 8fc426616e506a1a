package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"dispatch/internal/core/domain/model/kernel"
)

// Breakdown holds the nine independently computed, unrounded price components.
type Breakdown struct {
	BasePrice      float64 `json:"basePrice"`
	DistancePrice  float64 `json:"distancePrice"`
	SizePrice      float64 `json:"sizePrice"`
	WeightPrice    float64 `json:"weightPrice"`
	UrgencyPrice   float64 `json:"urgencyPrice"`
	TimeOfDayPrice float64 `json:"timeOfDayPrice"`
	WeekendPrice   float64 `json:"weekendPrice"`
	HolidayPrice   float64 `json:"holidayPrice"`
	DemandPrice    float64 `json:"demandPrice"`
}

// Sum returns the unrounded sum of all components.
func (b Breakdown) Sum() float64 {
	return b.BasePrice + b.DistancePrice + b.SizePrice + b.WeightPrice + b.UrgencyPrice +
		b.TimeOfDayPrice + b.WeekendPrice + b.HolidayPrice + b.DemandPrice
}

// Quote is a computed price for one shipment request.
type Quote struct {
	id          kernel.UUID
	origin      kernel.Location
	destination kernel.Location
	size        PackageSize
	weight      float64
	urgency     kernel.Urgency
	distanceKm  float64
	breakdown   Breakdown
	total       decimal.Decimal
	currency    string
	quotedAt    time.Time
}

// QuoteParams carries the fields of a Quote.
type QuoteParams struct {
	ID          kernel.UUID
	Origin      kernel.Location
	Destination kernel.Location
	Size        PackageSize
	Weight      float64
	Urgency     kernel.Urgency
	DistanceKm  float64
	Breakdown   Breakdown
	Total       decimal.Decimal
	Currency    string
	QuotedAt    time.Time
}

// NewQuote assembles a Quote from already computed values.
func NewQuote(p QuoteParams) *Quote {
	return &Quote{
		id:          p.ID,
		origin:      p.Origin,
		destination: p.Destination,
		size:        p.Size,
		weight:      p.Weight,
		urgency:     p.Urgency,
		distanceKm:  p.DistanceKm,
		breakdown:   p.Breakdown,
		total:       p.Total,
		currency:    p.Currency,
		quotedAt:    p.QuotedAt,
	}
}

func (q *Quote) ID() kernel.UUID {
	return q.id
}

func (q *Quote) Origin() kernel.Location {
	return q.origin
}

func (q *Quote) Destination() kernel.Location {
	return q.destination
}

func (q *Quote) Size() PackageSize {
	return q.size
}

func (q *Quote) Weight() float64 {
	return q.weight
}

func (q *Quote) Urgency() kernel.Urgency {
	return q.urgency
}

func (q *Quote) DistanceKm() float64 {
	return q.distanceKm
}

func (q *Quote) Breakdown() Breakdown {
	return q.breakdown
}

func (q *Quote) Currency() string {
	return q.currency
}

func (q *Quote) QuotedAt() time.Time {
	return q.quotedAt
}

// Total returns the total rounded to two decimal places.
func (q *Quote) Total() decimal.Decimal {
	return q.total
}
