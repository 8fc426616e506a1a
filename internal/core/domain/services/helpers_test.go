package services_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

// northOf returns the point distanceKm due north of origin. Along a meridian the
// haversine distance equals the arc length, so the offset is exact.
func northOf(origin kernel.Location, distanceKm float64) kernel.Location {
	deltaDeg := distanceKm / kernel.EarthRadiusKm * 180 / math.Pi
	return kernel.MustNewLocation(origin.Latitude()+deltaDeg, origin.Longitude())
}

func newPartner(t *testing.T, priority int, rating float64, areaCenters ...kernel.Location) *partner.Partner {
	t.Helper()

	areas := make([]kernel.ServiceArea, 0, len(areaCenters))
	for _, c := range areaCenters {
		a, err := kernel.NewServiceArea("area", c, 20)
		require.NoError(t, err)
		areas = append(areas, a)
	}

	p, err := partner.NewPartner(kernel.NewUUID(), "partner", priority, rating, areas,
		[]string{"standard"}, partner.StatusActive)
	require.NoError(t, err)
	return p
}

func newState(
	t *testing.T,
	p *partner.Partner,
	status partner.Status,
	availability partner.Availability,
	capacity, load int,
) *partner.ServiceState {
	t.Helper()
	s, err := partner.NewServiceState(p.ID(), status, availability, capacity, load, time.Time{})
	require.NoError(t, err)
	return s
}
