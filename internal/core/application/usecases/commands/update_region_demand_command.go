package commands

import (
	"errors"
	"math"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrUpdateRegionDemandCommandIsNotConstructed = errors.New(
		"UpdateRegionDemandCommand must be created via NewUpdateRegionDemandCommand constructor",
	)
)

// UpdateRegionDemandCommand sets the surge multiplier applied to quotes in a region.
type UpdateRegionDemandCommand struct { //nolint:recvcheck //using for validation
	region       string
	demandFactor float64

	guard guard.ConstructorGuard
}

func NewUpdateRegionDemandCommand(region string, demandFactor float64) (UpdateRegionDemandCommand, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return UpdateRegionDemandCommand{}, errs.NewValueIsRequiredError("region")
	}
	if demandFactor < 0 || math.IsNaN(demandFactor) || math.IsInf(demandFactor, 0) {
		return UpdateRegionDemandCommand{}, errs.NewValueIsOutOfRangeError("demandFactor", demandFactor, 0, "+Inf")
	}

	return UpdateRegionDemandCommand{
		region:       region,
		demandFactor: demandFactor,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRegionDemandCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRegionDemandCommandIsNotConstructed)
}

func (c UpdateRegionDemandCommand) Region() string {
	return c.region
}

func (c UpdateRegionDemandCommand) DemandFactor() float64 {
	return c.demandFactor
}
