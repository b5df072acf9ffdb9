package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/abidjan-route/internal/domain"
	"github.com/pkordes/abidjan-route/internal/geo"
)

var (
	plateau = domain.Point{Lat: 5.3167, Lng: -4.0000}
	cocody  = domain.Point{Lat: 5.3500, Lng: -3.9833}
	songon  = domain.Point{Lat: 5.3167, Lng: -4.2500}
)

func TestDistanceKm(t *testing.T) {
	cases := []struct {
		name string
		a, b domain.Point
		want float64
	}{
		{"same point", plateau, plateau, 0},
		{"plateau to cocody", plateau, cocody, 4.1},
		{"plateau to songon", plateau, songon, 27.7},
		{"north-west pair", domain.Point{Lat: 5.30, Lng: -4.00}, domain.Point{Lat: 5.35, Lng: -4.08}, 10.5},
		{"south-east pair", domain.Point{Lat: 5.30, Lng: -4.00}, domain.Point{Lat: 5.27, Lng: -3.92}, 9.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geo.DistanceKm(tc.a, tc.b))
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	points := []domain.Point{plateau, cocody, songon, {Lat: 5.4950, Lng: -4.0511}}
	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, geo.DistanceKm(a, b), geo.DistanceKm(b, a))
		}
	}
}

func TestHaversineKm_Unrounded(t *testing.T) {
	a := domain.Point{Lat: 5.3167, Lng: -4.0}
	b := domain.Point{Lat: 5.3167 + 0.0453, Lng: -4.0}

	exact := geo.HaversineKm(a, b)

	assert.Greater(t, exact, 5.0)
	assert.InDelta(t, 5.037, exact, 0.001)
	assert.Equal(t, 5.0, geo.DistanceKm(a, b))
}

func TestValidPoint(t *testing.T) {
	assert.True(t, geo.ValidPoint(plateau))
	assert.False(t, geo.ValidPoint(domain.Point{Lat: 91, Lng: 0}))
	assert.False(t, geo.ValidPoint(domain.Point{Lat: 0, Lng: -181}))
}

func TestSampleRoute(t *testing.T) {
	from := domain.Point{Lat: 5.0, Lng: -4.0}
	to := domain.Point{Lat: 6.0, Lng: -3.0}

	got := geo.SampleRoute(from, to)

	require.Len(t, got, 6)
	assert.Equal(t, from, got[0])
	assert.Equal(t, to, got[5])
	assert.InDelta(t, 5.4, got[2].Lat, 1e-9)
	assert.InDelta(t, -3.6, got[2].Lng, 1e-9)
}

func TestSampleRoute_SamePoint(t *testing.T) {
	got := geo.SampleRoute(plateau, plateau)

	require.Len(t, got, 6)
	for _, p := range got {
		assert.Equal(t, plateau, p)
	}
}

func TestPrecisionForRadius(t *testing.T) {
	assert.Equal(t, uint(5), geo.PrecisionForRadius(5.3, 3))
	assert.Equal(t, uint(4), geo.PrecisionForRadius(5.3, 5))
	assert.Equal(t, uint(3), geo.PrecisionForRadius(5.3, 50))
	assert.Equal(t, uint(0), geo.PrecisionForRadius(5.3, 10000))
}

func TestCoveringCells(t *testing.T) {
	cells := geo.CoveringCells(plateau, 5)

	require.Len(t, cells, 9)
	assert.Equal(t, geo.Hash(plateau, 5), cells[0])
	// A point 1 km away must land in one of the covering cells.
	near := geo.Hash(domain.Point{Lat: plateau.Lat + 0.009, Lng: plateau.Lng}, 5)
	assert.Contains(t, cells, near)
}
