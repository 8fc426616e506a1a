package pricing

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// PackageSize keys the size-factor table.
type PackageSize string

const (
	SizeSmall      PackageSize = "small"
	SizeMedium     PackageSize = "medium"
	SizeLarge      PackageSize = "large"
	SizeExtraLarge PackageSize = "extraLarge"
)

// Validate checks that s is a known package size.
func (s PackageSize) Validate() error {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"package size is invalid", fmt.Errorf("%q is not a valid package size", string(s)))
	}
}

func (s PackageSize) String() string {
	return string(s)
}

// TimeOfDay keys the time-of-day factor table.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// TimeOfDayForHour buckets a local hour: [6,12) morning, [12,18) afternoon,
// [18,22) evening and everything else night.
func TimeOfDayForHour(hour int) TimeOfDay {
	switch {
	case hour >= 6 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	case hour >= 18 && hour < 22:
		return Evening
	default:
		return Night
	}
}
