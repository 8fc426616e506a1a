package partner

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the operational status shared by the partner profile and its service state.
type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusBusy        Status = "busy"
	StatusMaintenance Status = "maintenance"
)

// Validate checks that s is one of the known statuses.
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusInactive, StatusBusy, StatusMaintenance:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%q is not a valid partner status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// Availability tells whether a partner currently accepts work.
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityLimited     Availability = "limited"
	AvailabilityUnavailable Availability = "unavailable"
)

// Validate checks that a is one of the known availability values.
func (a Availability) Validate() error {
	switch a {
	case AvailabilityAvailable, AvailabilityLimited, AvailabilityUnavailable:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"availability is invalid", fmt.Errorf("%q is not a valid availability", string(a)))
	}
}

func (a Availability) String() string {
	return string(a)
}
