package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/servis-mreza/directory/app/models"
	"github.com/servis-mreza/directory/internal/geo"
	"github.com/servis-mreza/directory/internal/matcher"
	"github.com/servis-mreza/directory/internal/synonyms"
)

func floatPtr(f float64) *float64 { return &f }

func newTestFirmService() *FirmService {
	m := matcher.New(synonyms.NewIndex(models.Catalog()))
	return &FirmService{matcher: m, logger: zap.NewNop()}
}

func directoryFixture() []models.Firm {
	return []models.Firm{
		{
			ID:       "pero",
			Name:     "Elektro Pero",
			City:     "Beograd",
			Address:  "Bulevar kralja Aleksandra 73",
			Services: []string{"električar"},
			Lat:      floatPtr(44.8000),
			Lng:      floatPtr(20.4700),
		},
		{
			ID:       "nikola",
			Name:     "Struja Majstor Nikola",
			City:     "Novi Sad",
			Address:  "Bulevar oslobođenja 1",
			Services: []string{"elektrika"},
			Lat:      floatPtr(45.2671),
			Lng:      floatPtr(19.8335),
		},
		{
			ID:       "bez-koordinata",
			Name:     "Elektro Usluge",
			City:     "Kragujevac",
			Address:  "Kneza Miloša 5",
			Services: []string{"struja"},
		},
	}
}

func TestAnnotateDistances(t *testing.T) {
	firms := directoryFixture()
	loc := &geo.Point{Lat: 44.7866, Lng: 20.4489}

	annotated := AnnotateDistances(firms, loc)

	require.Len(t, annotated, 3)
	assert.True(t, annotated[0].HasKnownDistance())
	assert.Less(t, annotated[0].DistanceKm, 5.0)
	assert.True(t, annotated[1].HasKnownDistance())
	assert.Greater(t, annotated[1].DistanceKm, 50.0)
	assert.False(t, annotated[2].HasKnownDistance())

	// The input slice stays untouched.
	assert.Equal(t, 0.0, firms[0].DistanceKm)
}

func TestAnnotateDistancesNilLocation(t *testing.T) {
	annotated := AnnotateDistances(directoryFixture(), nil)
	for _, f := range annotated {
		assert.False(t, f.HasKnownDistance())
	}
}

func TestSearchInBucketsAndPages(t *testing.T) {
	fs := newTestFirmService()

	result := fs.SearchIn(directoryFixture(), SearchParams{
		Query:    "struja",
		RadiusKm: 25,
		Location: &geo.Point{Lat: 44.7866, Lng: 20.4489},
		Page:     1,
		PageSize: 8,
	})

	require.Len(t, result.Near.Items, 1)
	assert.Equal(t, "pero", result.Near.Items[0].ID)
	require.NotNil(t, result.Near.Items[0].DistanceKm)

	require.Len(t, result.Far.Items, 2)
	assert.Equal(t, "nikola", result.Far.Items[0].ID)
	assert.Equal(t, "bez-koordinata", result.Far.Items[1].ID)
	assert.Nil(t, result.Far.Items[1].DistanceKm, "unknown distance serializes as null")

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, []int{1}, result.PageNumbers)
}

func TestSearchInEmptyQuery(t *testing.T) {
	fs := newTestFirmService()

	result := fs.SearchIn(directoryFixture(), SearchParams{
		Query:    "",
		RadiusKm: 25,
		Page:     1,
		PageSize: 8,
	})

	assert.Empty(t, result.Near.Items)
	assert.Empty(t, result.Far.Items)
	assert.Equal(t, 1, result.Near.TotalPages)
	assert.Equal(t, []int{1}, result.PageNumbers)
}

func TestSearchInSharedPageClampsPerBucket(t *testing.T) {
	fs := newTestFirmService()

	// Nine far firms and one near firm at page size 4: the shared pager has
	// three pages, and the near bucket keeps showing its only page.
	firms := []models.Firm{{
		ID: "near", Name: "Elektro Blizu", City: "Beograd",
		Lat: floatPtr(44.7870), Lng: floatPtr(20.4490),
	}}
	for i := 0; i < 9; i++ {
		firms = append(firms, models.Firm{
			ID:   string(rune('a' + i)),
			Name: "Elektro Daleko",
			City: "Subotica",
		})
	}

	result := fs.SearchIn(firms, SearchParams{
		Query:    "elektro",
		RadiusKm: 25,
		Location: &geo.Point{Lat: 44.7866, Lng: 20.4489},
		Page:     3,
		PageSize: 4,
	})

	assert.Equal(t, 3, result.Page)
	assert.Equal(t, 3, result.Far.TotalPages)
	assert.Equal(t, 3, result.Far.Page)
	require.Len(t, result.Far.Items, 1, "last far page holds the remainder")

	// Near clamps to its own single page instead of going empty.
	assert.Equal(t, 1, result.Near.Page)
	require.Len(t, result.Near.Items, 1)
	assert.Equal(t, []int{1, 2, 3}, result.PageNumbers)
}

func TestSearchInOutOfRangePageClamps(t *testing.T) {
	fs := newTestFirmService()

	result := fs.SearchIn(directoryFixture(), SearchParams{
		Query:    "struja",
		RadiusKm: 25,
		Page:     50,
		PageSize: 8,
	})

	assert.Equal(t, 1, result.Page)
}

func TestFingerprint(t *testing.T) {
	base := SearchParams{
		Query:    "Električar",
		City:     "Niš",
		RadiusKm: 25,
		Location: &geo.Point{Lat: 44.7866, Lng: 20.4489},
		Page:     1,
		PageSize: 8,
	}

	assert.Equal(t, base.Fingerprint(), base.Fingerprint(), "deterministic")

	// Normalization-equivalent inputs share a key.
	same := base
	same.Query = "elektricar"
	same.City = "nis"
	assert.Equal(t, base.Fingerprint(), same.Fingerprint())

	// Location rounding: a shift below ~100 m maps to the same key.
	shifted := base
	shifted.Location = &geo.Point{Lat: 44.78662, Lng: 20.44891}
	assert.Equal(t, base.Fingerprint(), shifted.Fingerprint())

	other := base
	other.Query = "vodoinstalater"
	assert.NotEqual(t, base.Fingerprint(), other.Fingerprint())

	noLoc := base
	noLoc.Location = nil
	assert.NotEqual(t, base.Fingerprint(), noLoc.Fingerprint())

	otherPage := base
	otherPage.Page = 2
	assert.NotEqual(t, base.Fingerprint(), otherPage.Fingerprint())
}
