package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestFirmArea(t *testing.T) {
	f := Firm{City: "Beograd"}
	assert.Equal(t, "Beograd", f.Area())

	f.Municipality = ptr("Zvezdara")
	assert.Equal(t, "Zvezdara", f.Area())

	f.Municipality = ptr("")
	assert.Equal(t, "Beograd", f.Area(), "empty municipality falls back to city")
}

func TestFirmLocation(t *testing.T) {
	f := Firm{}
	_, _, ok := f.Location()
	assert.False(t, ok)

	f.Lat = ptr(44.7866)
	_, _, ok = f.Location()
	assert.False(t, ok, "half a coordinate pair is no location")

	f.Lng = ptr(20.4489)
	lat, lng, ok := f.Location()
	require.True(t, ok)
	assert.Equal(t, 44.7866, lat)
	assert.Equal(t, 20.4489, lng)
}

func TestSummaryDistanceIsJSONSafe(t *testing.T) {
	f := Firm{ID: "x", Name: "Elektro", DistanceKm: UnknownDistance}

	s := f.Summary()
	assert.Nil(t, s.DistanceKm)

	// +Inf cannot be marshaled; the nil projection must round-trip.
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"distance_km":null`)

	f.DistanceKm = 3.5
	s = f.Summary()
	require.NotNil(t, s.DistanceKm)
	assert.Equal(t, 3.5, *s.DistanceKm)
}

func TestCategoryByKey(t *testing.T) {
	cat, ok := CategoryByKey("vodoinstalater")
	require.True(t, ok)
	assert.Equal(t, "Vodoinstalateri", cat.Name)

	_, ok = CategoryByKey("nepostojeca")
	assert.False(t, ok)
}

func TestCatalogKeysAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Catalog() {
		assert.False(t, seen[c.Key], "duplicate key %q", c.Key)
		seen[c.Key] = true
	}
}
