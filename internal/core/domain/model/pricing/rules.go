package pricing

import (
	"errors"
	"fmt"
	"maps"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// RulesStatusActive marks the rule set used for quoting.
const RulesStatusActive = "active"

// ErrRulesAreNotConstructed is returned when Rules were not created via NewRules.
var ErrRulesAreNotConstructed = errors.New("Rules must be created via NewRules constructor")

// Factors groups the multiplier tables of a rule set.
type Factors struct {
	Size      map[PackageSize]float64
	Weight    float64
	Urgency   map[kernel.Urgency]float64
	TimeOfDay map[TimeOfDay]float64
	Weekend   float64
	Holiday   float64
}

// Rules is a pricing rule set. Only rules with RulesStatusActive are quoted from.
//
// Tables are copied on construction, so later changes to the caller's maps do not
// leak into a rule set that is already in use.
type Rules struct {
	id               kernel.UUID
	basePrice        float64
	pricePerDistance float64
	factors          Factors
	status           string

	isConstructed bool
}

// NewRules creates a validated rule set. Prices and factors must be non-negative.
// Missing table keys are not rejected here: they surface as *RuleConfigError at
// quoting time, for the requests that need them.
//
// Example:
//
//	rules, err := pricing.NewRules(kernel.NewUUID(), 10, 1, pricing.Factors{
//	    Size:      map[pricing.PackageSize]float64{pricing.SizeMedium: 0.2},
//	    Urgency:   map[kernel.Urgency]float64{kernel.UrgencyNormal: 0},
//	    TimeOfDay: map[pricing.TimeOfDay]float64{pricing.Morning: 0},
//	}, pricing.RulesStatusActive)
func NewRules(id kernel.UUID, basePrice, pricePerDistance float64, factors Factors, status string) (*Rules, error) {
	r := &Rules{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		nonNegative("basePrice", basePrice),
		nonNegative("pricePerDistance", pricePerDistance),
		nonNegative("weightFactor", factors.Weight),
		nonNegative("weekendFactor", factors.Weekend),
		nonNegative("holidayFactor", factors.Holiday),
	); err != nil {
		return nil, err
	}

	r.id = id
	r.basePrice = basePrice
	r.pricePerDistance = pricePerDistance
	r.factors = Factors{
		Size:      maps.Clone(factors.Size),
		Weight:    factors.Weight,
		Urgency:   maps.Clone(factors.Urgency),
		TimeOfDay: maps.Clone(factors.TimeOfDay),
		Weekend:   factors.Weekend,
		Holiday:   factors.Holiday,
	}
	return r, nil
}

// Validate ensures the Rules were properly constructed.
func (r *Rules) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRulesAreNotConstructed
	}
	return nil
}

func (r *Rules) ID() kernel.UUID {
	return r.id
}

func (r *Rules) BasePrice() float64 {
	return r.basePrice
}

func (r *Rules) PricePerDistance() float64 {
	return r.pricePerDistance
}

func (r *Rules) WeightFactor() float64 {
	return r.factors.Weight
}

func (r *Rules) WeekendFactor() float64 {
	return r.factors.Weekend
}

func (r *Rules) HolidayFactor() float64 {
	return r.factors.Holiday
}

func (r *Rules) Status() string {
	return r.status
}

func (r *Rules) IsActive() bool {
	return r.status == RulesStatusActive
}

// Factors returns a copy of the factor tables.
func (r *Rules) Factors() Factors {
	f := r.factors
	f.Size = maps.Clone(f.Size)
	f.Urgency = maps.Clone(f.Urgency)
	f.TimeOfDay = maps.Clone(f.TimeOfDay)
	return f
}

// SizeFactor looks up the size table.
func (r *Rules) SizeFactor(size PackageSize) (float64, error) {
	f, ok := r.factors.Size[size]
	if !ok {
		return 0, NewRuleConfigError("size", string(size))
	}
	return f, nil
}

// UrgencyFactor looks up the urgency table.
func (r *Rules) UrgencyFactor(urgency kernel.Urgency) (float64, error) {
	f, ok := r.factors.Urgency[urgency]
	if !ok {
		return 0, NewRuleConfigError("urgency", string(urgency))
	}
	return f, nil
}

// TimeOfDayFactor looks up the time-of-day table.
func (r *Rules) TimeOfDayFactor(bucket TimeOfDay) (float64, error) {
	f, ok := r.factors.TimeOfDay[bucket]
	if !ok {
		return 0, NewRuleConfigError("timeOfDay", string(bucket))
	}
	return f, nil
}

func nonNegative(name string, v float64) error {
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name+" is invalid", fmt.Errorf("%v is negative", v))
	}
	return nil
}
