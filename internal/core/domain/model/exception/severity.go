package exception

import (
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// Severity is the reported impact of an exception.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ParseSeverity converts a raw value into a Severity; empty means SeverityMedium.
func ParseSeverity(raw string) (Severity, error) {
	s := Severity(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return SeverityMedium, nil
	}
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks that s is a known severity.
func (s Severity) Validate() error {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"severity is invalid", fmt.Errorf("%q is not a valid severity", string(s)))
	}
}

func (s Severity) String() string {
	return string(s)
}
