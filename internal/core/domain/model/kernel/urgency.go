package kernel

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Urgency is the caller-declared priority tier of a delivery request.
// It reweights partner selection and selects the urgency factor during pricing.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyNormal   Urgency = "normal"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// ParseUrgency converts a raw string into an Urgency.
// An empty string yields UrgencyNormal; unknown values are rejected.
//
// Example:
//
//	u, err := kernel.ParseUrgency("HIGH") // UrgencyHigh, nil
func ParseUrgency(raw string) (Urgency, error) {
	u := Urgency(strings.ToLower(strings.TrimSpace(raw)))
	if u == "" {
		return UrgencyNormal, nil
	}
	if err := u.Validate(); err != nil {
		return "", err
	}
	return u, nil
}

// Validate checks that u is one of the four known tiers.
func (u Urgency) Validate() error {
	switch u {
	case UrgencyLow, UrgencyNormal, UrgencyHigh, UrgencyCritical:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"urgency is invalid", fmt.Errorf("%q is not a valid urgency", string(u)))
	}
}

func (u Urgency) String() string {
	return string(u)
}
