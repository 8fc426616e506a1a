package pricing

// NeutralDemandFactor leaves prices unchanged.
const NeutralDemandFactor = 1.0

// RegionDemand is the surge multiplier for a region.
type RegionDemand struct {
	Region       string
	DemandFactor float64
}

// NeutralDemand is the demand assumed for a region with no recorded factor.
func NeutralDemand(region string) RegionDemand {
	return RegionDemand{Region: region, DemandFactor: NeutralDemandFactor}
}
