package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
		errType error
	}{
		{
			name: "valid location",
			lat:  52.52,
			lon:  13.405,
		},
		{
			name: "valid location at min bounds",
			lat:  kernel.LatitudeMin,
			lon:  kernel.LongitudeMin,
		},
		{
			name: "valid location at max bounds",
			lat:  kernel.LatitudeMax,
			lon:  kernel.LongitudeMax,
		},
		{
			name:    "latitude too small",
			lat:     -90.5,
			lon:     0,
			wantErr: true,
			errType: errs.NewValueIsOutOfRangeError("latitude", -90.5, kernel.LatitudeMin, kernel.LatitudeMax),
		},
		{
			name:    "latitude too large",
			lat:     91,
			lon:     0,
			wantErr: true,
			errType: errs.NewValueIsOutOfRangeError("latitude", 91.0, kernel.LatitudeMin, kernel.LatitudeMax),
		},
		{
			name:    "longitude too small",
			lat:     0,
			lon:     -181,
			wantErr: true,
			errType: errs.NewValueIsOutOfRangeError("longitude", -181.0, kernel.LongitudeMin, kernel.LongitudeMax),
		},
		{
			name:    "longitude too large",
			lat:     0,
			lon:     180.1,
			wantErr: true,
			errType: errs.NewValueIsOutOfRangeError("longitude", 180.1, kernel.LongitudeMin, kernel.LongitudeMax),
		},
		{
			name:    "both coordinates invalid",
			lat:     100,
			lon:     200,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.lat, tt.lon)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				if tt.errType != nil {
					assert.Equal(t, tt.errType.Error(), err.Error())
				}
				assert.False(t, loc.IsResolved())
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.lat, loc.Latitude(), 1e-12)
			assert.InDelta(t, tt.lon, loc.Longitude(), 1e-12)
			assert.True(t, loc.IsResolved())
		})
	}
}

func TestLocation_ZeroValueIsUnresolved(t *testing.T) {
	var loc kernel.Location

	assert.False(t, loc.IsResolved())
	require.ErrorIs(t, loc.Validate(), errs.ErrValueIsRequired)
	assert.Equal(t, "Location(unresolved)", loc.String())
}

func TestLocation_WithAddress(t *testing.T) {
	loc := kernel.MustNewLocation(40.7128, -74.006)

	withAddr := loc.WithAddress("350 5th Ave", "manhattan")

	assert.Equal(t, "350 5th Ave", withAddr.Address())
	assert.Equal(t, "manhattan", withAddr.Region())
	assert.Empty(t, loc.Address(), "original value must stay untouched")
	assert.True(t, withAddr.IsResolved())
}

func TestLocation_String(t *testing.T) {
	loc := kernel.MustNewLocation(1.5, -2.25)
	assert.Equal(t, "Location(1.500000,-2.250000)", loc.String())
}

func TestMustNewLocation_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		kernel.MustNewLocation(95, 0)
	})
}
