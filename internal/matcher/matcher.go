// Package matcher filters, ranks and buckets firm records for a free-text
// query. All functions are pure; the matcher holds only the immutable synonym
// index it was built with.
package matcher

import (
	"math"
	"sort"
	"strings"

	"github.com/servis-mreza/directory/app/models"
	"github.com/servis-mreza/directory/internal/normalizer"
	"github.com/servis-mreza/directory/internal/synonyms"
)

// Stem truncation cutoffs. An alternative of >=6 characters falls back to its
// first 5, one of >=4 to its first 4; stems shorter than 4 never match. These
// are empirically tuned for the Serbian service vocabulary and pinned by
// tests; changing them silently shifts recall/precision.
const (
	stemLongCutoff  = 6
	stemLongLen     = 5
	stemShortCutoff = 4
	stemMinLen      = 4
)

// Matcher matches firms against queries using synonym expansion.
type Matcher struct {
	syn *synonyms.Index
}

// New returns a Matcher over the given synonym index.
func New(syn *synonyms.Index) *Matcher {
	return &Matcher{syn: syn}
}

// Buckets is an ordered result partition. When a city filter is active every
// match lands in Near and Far stays empty; otherwise Near holds matches
// within the radius and Far the remainder.
type Buckets struct {
	Near []models.Firm
	Far  []models.Firm
}

// Search runs the full pipeline: normalize the query, expand each word into
// its alternative set, optionally restrict to one municipality, match every
// firm haystack, sort by distance and partition by radius.
//
// Matching is AND across token groups and OR within a group: every query word
// must be satisfied by some alternative, any one alternative suffices.
func (m *Matcher) Search(rawQuery, cityFilter string, radiusKm float64, firms []models.Firm) Buckets {
	qNorm := normalizer.Normalize(rawQuery)
	if qNorm == "" {
		return Buckets{}
	}

	groups := m.syn.TokenGroups(qNorm)

	cityNorm := normalizer.NormalizePlace(cityFilter)
	hasCity := cityNorm != ""

	var matched []models.Firm
	for _, f := range firms {
		if hasCity && normalizer.NormalizePlace(f.Area()) != cityNorm {
			continue
		}
		if matchesGroups(haystack(&f), groups) {
			matched = append(matched, f)
		}
	}

	// Stable: equal distances (including the unknown-distance tail) keep
	// their input order.
	sort.SliceStable(matched, func(i, j int) bool {
		return effectiveDistance(&matched[i]) < effectiveDistance(&matched[j])
	})

	if hasCity {
		return Buckets{Near: matched}
	}

	var b Buckets
	for _, f := range matched {
		if effectiveDistance(&f) <= radiusKm {
			b.Near = append(b.Near, f)
		} else {
			b.Far = append(b.Far, f)
		}
	}
	return b
}

// haystack is the searchable text of one firm: name, places, address and all
// service tags, normalized and space-joined.
func haystack(f *models.Firm) string {
	parts := make([]string, 0, 4+len(f.Services))
	parts = append(parts, f.Name, f.City)
	if f.Municipality != nil {
		parts = append(parts, *f.Municipality)
	}
	parts = append(parts, f.Address)
	parts = append(parts, f.Services...)
	return normalizer.Normalize(strings.Join(parts, " "))
}

func matchesGroups(hay string, groups [][]string) bool {
	for _, alts := range groups {
		if !anyAltMatches(hay, alts) {
			return false
		}
	}
	return true
}

func anyAltMatches(hay string, alts []string) bool {
	for _, a := range alts {
		if a == "" {
			continue
		}
		if strings.Contains(hay, a) {
			return true
		}
		// Truncated-stem fallback for inflections and near-typos. A deliberate
		// recall-over-precision tradeoff for a small diacritic-stripped corpus,
		// not a real lemmatizer.
		stem := a
		if len(a) >= stemLongCutoff {
			stem = a[:stemLongLen]
		} else if len(a) >= stemShortCutoff {
			stem = a[:stemShortCutoff]
		}
		if len(stem) >= stemMinLen && strings.Contains(hay, stem) {
			return true
		}
	}
	return false
}

// effectiveDistance treats any non-finite distance as farthest possible, per
// the producer convention (missing coordinates map to +Inf, never an error).
func effectiveDistance(f *models.Firm) float64 {
	d := f.DistanceKm
	if math.IsNaN(d) || math.IsInf(d, -1) {
		return math.Inf(1)
	}
	return d
}
