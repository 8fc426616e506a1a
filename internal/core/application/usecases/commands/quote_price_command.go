package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrQuotePriceCommandIsNotConstructed = errors.New(
		"QuotePriceCommand must be created via NewQuotePriceCommand constructor",
	)
	ErrWeightIsNegative = errs.NewValueIsInvalidError("weight must not be negative")
)

// QuotePriceCommand asks for a dynamic price between two locations.
// A zero requestedAt means "now" when handled.
//
// Example:
//
//	cmd, err := NewQuotePriceCommand(origin, destination, pricing.SizeMedium, 2.5, kernel.UrgencyHigh, time.Time{})
//	quote, err := handler.Handle(ctx, cmd)
//	fmt.Println(quote.Total().StringFixed(2))
type QuotePriceCommand struct { //nolint:recvcheck //using for validation
	origin      kernel.Location
	destination kernel.Location
	size        pricing.PackageSize
	weightKg    float64
	urgency     kernel.Urgency
	requestedAt time.Time

	guard guard.ConstructorGuard
}

// NewQuotePriceCommand creates a price quote command. An empty urgency defaults to normal.
func NewQuotePriceCommand(
	origin kernel.Location,
	destination kernel.Location,
	size pricing.PackageSize,
	weightKg float64,
	urgency kernel.Urgency,
	requestedAt time.Time,
) (QuotePriceCommand, error) {
	cmd := QuotePriceCommand{
		requestedAt: requestedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLocations(origin, destination),
		cmd.setSize(size),
		cmd.setWeight(weightKg),
		cmd.setUrgency(urgency),
	); err != nil {
		return QuotePriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c QuotePriceCommand) Validate() error {
	return c.guard.Validate(ErrQuotePriceCommandIsNotConstructed)
}

func (c QuotePriceCommand) Origin() kernel.Location {
	return c.origin
}

func (c QuotePriceCommand) Destination() kernel.Location {
	return c.destination
}

func (c QuotePriceCommand) Size() pricing.PackageSize {
	return c.size
}

// WeightKg returns the package weight in kilograms.
func (c QuotePriceCommand) WeightKg() float64 {
	return c.weightKg
}

func (c QuotePriceCommand) Urgency() kernel.Urgency {
	return c.urgency
}

// RequestedAt returns the requested pickup time, zero when not given.
func (c QuotePriceCommand) RequestedAt() time.Time {
	return c.requestedAt
}

func (c *QuotePriceCommand) setLocations(origin, destination kernel.Location) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}

	c.origin = origin
	c.destination = destination
	return nil
}

func (c *QuotePriceCommand) setSize(size pricing.PackageSize) error {
	if size == "" {
		return errs.NewValueIsRequiredError("packageSize")
	}
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}

func (c *QuotePriceCommand) setWeight(weightKg float64) error {
	if weightKg < 0 {
		return ErrWeightIsNegative
	}

	c.weightKg = weightKg
	return nil
}

func (c *QuotePriceCommand) setUrgency(urgency kernel.Urgency) error {
	if urgency == "" {
		urgency = kernel.UrgencyNormal
	}
	if err := urgency.Validate(); err != nil {
		return err
	}

	c.urgency = urgency
	return nil
}
