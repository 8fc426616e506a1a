package appointment

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the lifecycle status of an appointment.
type Status string

const (
	StatusScheduled         Status = "scheduled"
	StatusInProgress        Status = "in-progress"
	StatusCompleted         Status = "completed"
	StatusCancelled         Status = "cancelled"
	StatusDelayed           Status = "delayed"
	StatusDamaged           Status = "damaged"
	StatusAddressIssue      Status = "address_issue"
	StatusDeliveryAttempted Status = "delivery_attempted"
)

// Validate checks that s is a known appointment status.
func (s Status) Validate() error {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled,
		StatusDelayed, StatusDamaged, StatusAddressIssue, StatusDeliveryAttempted:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%q is not a valid appointment status", string(s)))
	}
}

func (s Status) String() string {
	return string(s)
}

// Type tells what the appointment is for.
type Type string

const (
	TypePickup   Type = "pickup"
	TypeDelivery Type = "delivery"
	TypeBoth     Type = "both"
)

// Validate checks that t is a known appointment type.
func (t Type) Validate() error {
	switch t {
	case TypePickup, TypeDelivery, TypeBoth:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"type is invalid", fmt.Errorf("%q is not a valid appointment type", string(t)))
	}
}
