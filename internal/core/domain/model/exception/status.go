package exception

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an exception.
// It implements a forward-only state machine:
//
//	Open ──> InProgress ──┬──> Resolved
//	             │        │
//	             └────────┴──> Closed
//	   (re-entering InProgress is allowed)
//
// Closed is reserved: no remedy currently ends in it, but the transition is defined.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status of a reported exception.
	Open

	// InProgress indicates a remedy was applied and the exception awaits follow-up.
	InProgress

	// Resolved is a final state: the remedy fully handled the exception.
	Resolved

	// Closed is a final state for exceptions closed without resolution.
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Open:       "open",
		InProgress: "in_progress",
		Resolved:   "resolved",
		Closed:     "closed",
	}
}

// ParseStatus converts a persisted status string back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid. Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if s <= Unknown || s > Closed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Resolved || s == Closed
}

// StartHandling transitions the status to InProgress.
//
// Valid transitions:
//   - Open -> InProgress
//   - InProgress -> InProgress (handled again)
//
// Example:
//
//	next, err := exception.Open.StartHandling() // InProgress, nil
func (s Status) StartHandling() (Status, error) {
	if s != Open && s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start handling", s.String()),
		)
	}
	return InProgress, nil
}

// Resolve transitions the status to Resolved. Only InProgress can be resolved.
func (s Status) Resolve() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to resolve", s.String()),
		)
	}
	return Resolved, nil
}

// Close transitions the status to Closed. Only InProgress can be closed.
func (s Status) Close() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to close", s.String()),
		)
	}
	return Closed, nil
}
