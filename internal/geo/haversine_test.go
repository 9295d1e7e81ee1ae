package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	p := Point{Lat: 44.7866, Lng: 20.4489}
	assert.Equal(t, 0.0, DistanceKm(p, p))
}

func TestDistanceKmSymmetric(t *testing.T) {
	belgrade := Point{Lat: 44.7866, Lng: 20.4489}
	novisad := Point{Lat: 45.2671, Lng: 19.8335}
	assert.InDelta(t, DistanceKm(belgrade, novisad), DistanceKm(novisad, belgrade), 1e-9)
}

func TestDistanceKmKnownValues(t *testing.T) {
	// One degree of longitude at the equator is ~111.19 km.
	assert.InDelta(t, 111.19, DistanceKm(Point{0, 0}, Point{0, 1}), 0.2)

	// Belgrade to Novi Sad is roughly 70 km as the crow flies.
	belgrade := Point{Lat: 44.7866, Lng: 20.4489}
	novisad := Point{Lat: 45.2671, Lng: 19.8335}
	assert.InDelta(t, 70, DistanceKm(belgrade, novisad), 3)
}
