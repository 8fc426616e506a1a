package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pricing"
)

// DefaultCurrency is the currency quoted when none is configured.
const DefaultCurrency = "USD"

// ErrRulesAreInactive is returned when quoting from a rule set that is not active.
var ErrRulesAreInactive = errors.New("pricing rules are not active")

// QuoteInput is everything a price depends on.
// A nil demand means the region has no recorded factor and counts as neutral.
type QuoteInput struct {
	ID                kernel.UUID
	Origin            kernel.Location
	Destination       kernel.Location
	Size              pricing.PackageSize
	WeightKg          float64
	Urgency           kernel.Urgency
	RequestedAt       time.Time
	Rules             *pricing.Rules
	OriginDemand      *pricing.RegionDemand
	DestinationDemand *pricing.RegionDemand
}

// PricingEngine computes itemized dynamic prices.
//
// The nine components are computed independently from the base price and summed;
// only the total is rounded, to two decimal places. The time-of-day bucket uses
// the hour of RequestedAt in its own location, and weekends are Saturday and Sunday
// of that same location.
//
// The holiday component is always 0: no holiday calendar is available.
// The demand component is negative when average demand is below 1.
//
// Example:
//
//	engine := services.NewPricingEngine("USD")
//	quote, err := engine.Quote(input)
//	if errors.Is(err, errs.ErrConfigurationIsInvalid) {
//	    // rule set lacks a factor for this request
//	}
type PricingEngine struct {
	currency string
}

// NewPricingEngine creates a PricingEngine quoting in currency, DefaultCurrency if empty.
func NewPricingEngine(currency string) PricingEngine {
	if currency == "" {
		currency = DefaultCurrency
	}
	return PricingEngine{currency: currency}
}

// Currency returns the quoted currency.
func (e PricingEngine) Currency() string {
	return e.currency
}

// Quote computes the price for in. It fails only when the rules are unusable: not
// constructed, inactive or missing a factor-table key, the latter as *pricing.RuleConfigError.
func (e PricingEngine) Quote(in QuoteInput) (*pricing.Quote, error) {
	breakdown, distanceKm, err := e.Breakdown(in)
	if err != nil {
		return nil, err
	}

	return pricing.NewQuote(pricing.QuoteParams{
		ID:          in.ID,
		Origin:      in.Origin,
		Destination: in.Destination,
		Size:        in.Size,
		Weight:      in.WeightKg,
		Urgency:     in.Urgency,
		DistanceKm:  distanceKm,
		Breakdown:   breakdown,
		Total:       RoundPrice(breakdown.Sum()),
		Currency:    e.currency,
		QuotedAt:    in.RequestedAt,
	}), nil
}

// Breakdown computes the unrounded components and the origin-destination distance.
func (e PricingEngine) Breakdown(in QuoteInput) (pricing.Breakdown, float64, error) {
	rules := in.Rules
	if err := rules.Validate(); err != nil {
		return pricing.Breakdown{}, 0, err
	}
	if !rules.IsActive() {
		return pricing.Breakdown{}, 0, ErrRulesAreInactive
	}

	sizeFactor, sizeErr := rules.SizeFactor(in.Size)
	urgencyFactor, urgencyErr := rules.UrgencyFactor(in.Urgency)
	timeFactor, timeErr := rules.TimeOfDayFactor(pricing.TimeOfDayForHour(in.RequestedAt.Hour()))
	if err := errors.Join(sizeErr, urgencyErr, timeErr); err != nil {
		return pricing.Breakdown{}, 0, err
	}

	base := rules.BasePrice()
	distanceKm := kernel.Distance(in.Origin, in.Destination)

	b := pricing.Breakdown{
		BasePrice:      base,
		DistancePrice:  distanceKm * rules.PricePerDistance(),
		SizePrice:      base * sizeFactor,
		WeightPrice:    in.WeightKg * rules.WeightFactor(),
		UrgencyPrice:   base * urgencyFactor,
		TimeOfDayPrice: base * timeFactor,
		HolidayPrice:   0,
		DemandPrice:    base * (averageDemand(in.OriginDemand, in.DestinationDemand) - 1),
	}
	if isWeekend(in.RequestedAt) {
		b.WeekendPrice = base * rules.WeekendFactor()
	}

	return b, distanceKm, nil
}

// RoundPrice rounds v to two decimal places, halves away from zero.
func RoundPrice(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func averageDemand(origin, destination *pricing.RegionDemand) float64 {
	return (demandFactor(origin) + demandFactor(destination)) / 2
}

func demandFactor(d *pricing.RegionDemand) float64 {
	if d == nil {
		return pricing.NeutralDemandFactor
	}
	return d.DemandFactor
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
