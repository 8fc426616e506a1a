package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

var sentinels = []error{
	errs.ErrObjectNotFound,
	errs.ErrValueIsInvalid,
	errs.ErrValueIsOutOfRange,
	errs.ErrValueIsRequired,
	errs.ErrConfigurationIsInvalid,
	errs.ErrObjectAlreadyExists,
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  errs.NewObjectNotFoundError("partner", "9f1c"),
			want: "object not found: 9f1c",
		},
		{
			name: "not found with cause",
			err:  errs.NewObjectNotFoundErrorWithCause("appointmentId", "a-17", cause),
			want: "object not found: param is: appointmentId, ID is: a-17 (cause: connection reset)",
		},
		{
			name: "invalid",
			err:  errs.NewValueIsInvalidError("severity"),
			want: "value is invalid: severity",
		},
		{
			name: "invalid with cause",
			err:  errs.NewValueIsInvalidErrorWithCause("packageSize", errors.New("unknown size huge")),
			want: "value is invalid: packageSize (cause: unknown size huge)",
		},
		{
			name: "out of range",
			err:  errs.NewValueIsOutOfRangeError("latitude", 91.5, -90, 90),
			want: "value is invalid: 91.5 is latitude, min value is -90, max value is 90",
		},
		{
			name: "out of range with cause",
			err:  errs.NewValueIsOutOfRangeErrorWithCause("rating", -1, 0, 5, cause),
			want: "value is invalid: -1 is rating, min value is 0, max value is 5 (cause: connection reset)",
		},
		{
			name: "out of range keeps messages on one line",
			err:  errs.NewValueIsOutOfRangeError("region", "north\neast", "a", "z"),
			want: "value is invalid: north east is region, min value is a, max value is z",
		},
		{
			name: "required",
			err:  errs.NewValueIsRequiredError("serviceType"),
			want: "value is required: serviceType",
		},
		{
			name: "required with cause",
			err:  errs.NewValueIsRequiredErrorWithCause("pickupLocation", errors.New("unresolved")),
			want: "value is required: pickupLocation (cause: unresolved)",
		},
		{
			name: "configuration",
			err:  errs.NewConfigurationIsInvalidError("timeOfDayFactors.night"),
			want: "configuration is invalid: timeOfDayFactors.night",
		},
		{
			name: "configuration with cause",
			err:  errs.NewConfigurationIsInvalidErrorWithCause("pricingRules", errors.New("no active rules")),
			want: "configuration is invalid: pricingRules (cause: no active rules)",
		},
		{
			name: "already exists",
			err:  errs.NewObjectAlreadyExistsError("registrationNumber", "B-DX 1024"),
			want: "object already exists: registrationNumber B-DX 1024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		is   error
	}{
		{"not found", errs.NewObjectNotFoundError("vehicle", "van-7"), errs.ErrObjectNotFound},
		{"invalid", errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid},
		{"out of range", errs.NewValueIsOutOfRangeError("capacity", 0, 1, 1000), errs.ErrValueIsOutOfRange},
		{"required", errs.NewValueIsRequiredError("title"), errs.ErrValueIsRequired},
		{"configuration", errs.NewConfigurationIsInvalidError("sizeFactors"), errs.ErrConfigurationIsInvalid},
		{"already exists", errs.NewObjectAlreadyExistsError("email", "a@b.c"), errs.ErrObjectAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("quote price: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.is)

			for _, other := range sentinels {
				if other != tt.is {
					assert.NotErrorIs(t, wrapped, other)
				}
			}
		})
	}
}

func TestErrorsAs(t *testing.T) {
	err := fmt.Errorf("select partner: %w", errs.NewObjectNotFoundError("appointment", "a-1"))

	var notFound *errs.ObjectNotFoundError
	if assert.ErrorAs(t, err, &notFound) {
		assert.Equal(t, "appointment", notFound.ParamName)
		assert.Equal(t, "a-1", notFound.ID)
	}

	var rangeErr *errs.ValueIsOutOfRangeError
	assert.False(t, errors.As(err, &rangeErr))
}

func TestCauseIsNotUnwrapped(t *testing.T) {
	cause := errors.New("pq: relation does not exist")
	err := errs.NewObjectNotFoundErrorWithCause("partner", "p-1", cause)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.NotErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Cause)
}
