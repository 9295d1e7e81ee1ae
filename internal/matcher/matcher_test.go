package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servis-mreza/directory/app/models"
	"github.com/servis-mreza/directory/internal/synonyms"
)

func strPtr(s string) *string { return &s }

func newTestMatcher() *Matcher {
	return New(synonyms.NewIndex(models.Catalog()))
}

func testFirms() []models.Firm {
	return []models.Firm{
		{
			ID:         "pero",
			Name:       "Elektro Pero",
			City:       "Beograd",
			Address:    "Bulevar kralja Aleksandra 73",
			Services:   []string{"električar", "rasveta"},
			DistanceKm: 3.2,
		},
		{
			ID:           "zika",
			Name:         "Vodoinstalater Žika",
			City:         "Beograd",
			Municipality: strPtr("Zvezdara"),
			Address:      "Ustanička 12",
			Services:     []string{"vodoinstalater", "odgušenje"},
			DistanceKm:   8.5,
		},
		{
			ID:         "struja-nis",
			Name:       "Struja Servis Niš",
			City:       "Niš",
			Address:    "Obrenovićeva 20",
			Services:   []string{"elektrika"},
			DistanceKm: 230.0,
		},
		{
			ID:         "bez-lokacije",
			Name:       "Majstor Elektro",
			City:       "Kragujevac",
			Address:    "Kneza Miloša 5",
			Services:   []string{"struja"},
			DistanceKm: models.UnknownDistance,
		},
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	m := newTestMatcher()
	got := m.Search("   !!! ", "", 25, testFirms())
	assert.Empty(t, got.Near)
	assert.Empty(t, got.Far)
}

func TestSearchSynonymExpansion(t *testing.T) {
	m := newTestMatcher()

	// "struja" expands to the electrician category, so every electrician
	// matches even without the literal word.
	got := m.Search("struja", "", 25, testFirms())

	var ids []string
	for _, f := range append(got.Near, got.Far...) {
		ids = append(ids, f.ID)
	}
	assert.Contains(t, ids, "pero")
	assert.Contains(t, ids, "struja-nis")
	assert.Contains(t, ids, "bez-lokacije")
	assert.NotContains(t, ids, "zika")
}

func TestSearchAndAcrossWords(t *testing.T) {
	m := newTestMatcher()

	// Both words must be satisfied. "kragujevac" only appears in one firm.
	got := m.Search("struja kragujevac", "", 25, testFirms())

	require.Len(t, got.Far, 1)
	assert.Equal(t, "bez-lokacije", got.Far[0].ID)
	assert.Empty(t, got.Near)
}

func TestSearchStemFallback(t *testing.T) {
	m := newTestMatcher()

	firms := []models.Firm{
		{ID: "a", Name: "Keramičarski radovi Jovanović", City: "Beograd", DistanceKm: 2},
	}

	// The inflected form "keramicara" is not a substring of the haystack but
	// its 5-character stem "keram" is.
	got := m.Search("keramicara", "", 25, firms)
	require.Len(t, got.Near, 1)
	assert.Equal(t, "a", got.Near[0].ID)
}

func TestSearchShortTokensNeverStemBelowFour(t *testing.T) {
	m := newTestMatcher()

	firms := []models.Firm{
		{ID: "a", Name: "Pekara Luka", City: "Beograd", DistanceKm: 2},
	}

	// "pekar" matches by plain substring containment.
	got := m.Search("pekar", "", 25, firms)
	require.Len(t, got.Near, 1)

	// A 3-character token is below the minimum stem length and cannot match
	// through the fallback.
	got = m.Search("xyz", "", 25, firms)
	assert.Empty(t, got.Near)
	assert.Empty(t, got.Far)
}

func TestSearchBucketsByRadiusAndSortsByDistance(t *testing.T) {
	m := newTestMatcher()

	got := m.Search("struja", "", 25, testFirms())

	require.Len(t, got.Near, 1)
	assert.Equal(t, "pero", got.Near[0].ID)

	// Far is ordered by distance with unknown-distance firms last.
	require.Len(t, got.Far, 2)
	assert.Equal(t, "struja-nis", got.Far[0].ID)
	assert.Equal(t, "bez-lokacije", got.Far[1].ID)
}

func TestSearchCityFilterOverridesRadius(t *testing.T) {
	m := newTestMatcher()

	// The Niš firm is 230 km away, far beyond the radius, but a city filter
	// puts every match in Near and leaves Far empty.
	got := m.Search("struja", "Niš", 25, testFirms())

	require.Len(t, got.Near, 1)
	assert.Equal(t, "struja-nis", got.Near[0].ID)
	assert.Empty(t, got.Far)
}

func TestSearchCityFilterUsesMunicipality(t *testing.T) {
	m := newTestMatcher()

	got := m.Search("vodoinstalater", "Zvezdara", 25, testFirms())
	require.Len(t, got.Near, 1)
	assert.Equal(t, "zika", got.Near[0].ID)

	// The same firm is invisible under its city once a municipality is set.
	got = m.Search("vodoinstalater", "Beograd", 25, testFirms())
	assert.Empty(t, got.Near)
}

func TestSearchStableOrderForEqualDistances(t *testing.T) {
	m := newTestMatcher()

	firms := []models.Firm{
		{ID: "first", Name: "Elektro Jedan", City: "Beograd", DistanceKm: models.UnknownDistance},
		{ID: "second", Name: "Elektro Dva", City: "Beograd", DistanceKm: models.UnknownDistance},
		{ID: "third", Name: "Elektro Tri", City: "Beograd", DistanceKm: models.UnknownDistance},
	}

	got := m.Search("elektro", "", 25, firms)
	require.Len(t, got.Far, 3)
	assert.Equal(t, "first", got.Far[0].ID)
	assert.Equal(t, "second", got.Far[1].ID)
	assert.Equal(t, "third", got.Far[2].ID)
}
