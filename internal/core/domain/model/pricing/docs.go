// Package pricing provides the inputs and outputs of dynamic price computation.
//
// The package includes:
//   - Rules: the active pricing rule set with its factor tables
//   - PackageSize and TimeOfDay: the keys of the size and time-of-day tables
//   - RegionDemand: the surge multiplier for a region (1 = neutral)
//   - Breakdown and Quote: the itemized result of a price computation
//
// A factor-table lookup with a missing key fails with *RuleConfigError. That error
// unwraps to errs.ErrConfigurationIsInvalid so callers can tell misconfigured rules
// apart from bad requests.
package pricing
