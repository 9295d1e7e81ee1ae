// Package synonyms derives the search-expansion lookups from the category
// catalog: a whole normalized phrase resolves to its canonical category key,
// and a single normalized word resolves to the set of categories it can
// signal. Built once at startup and injected where needed; the index itself
// is immutable after construction.
package synonyms

import (
	"sort"
	"strings"

	"github.com/servis-mreza/directory/app/models"
	"github.com/servis-mreza/directory/internal/normalizer"
)

type Index struct {
	phraseToCanon map[string]string
	tokenToCanons map[string]map[string]struct{}
	canonPhrases  map[string][]string
}

// NewIndex builds the lookups from the catalog. Construction is
// order-independent: only set membership is observed downstream.
func NewIndex(cats []models.Category) *Index {
	ix := &Index{
		phraseToCanon: make(map[string]string),
		tokenToCanons: make(map[string]map[string]struct{}),
		canonPhrases:  make(map[string][]string),
	}

	for _, cat := range cats {
		canon := normalizer.Normalize(cat.Key)
		if canon == "" {
			continue
		}

		// The canonical key is a phrase of its own group, so expanding any
		// alternative always reaches it.
		ix.addPhrase(canon, canon)

		for _, phrase := range cat.Synonyms {
			p := normalizer.Normalize(phrase)
			if p == "" {
				continue
			}
			ix.addPhrase(p, canon)
		}
	}

	return ix
}

func (ix *Index) addPhrase(phrase, canon string) {
	ix.phraseToCanon[phrase] = canon

	seen := false
	for _, p := range ix.canonPhrases[canon] {
		if p == phrase {
			seen = true
			break
		}
	}
	if !seen {
		ix.canonPhrases[canon] = append(ix.canonPhrases[canon], phrase)
	}

	for _, tok := range strings.Fields(phrase) {
		set, ok := ix.tokenToCanons[tok]
		if !ok {
			set = make(map[string]struct{})
			ix.tokenToCanons[tok] = set
		}
		set[canon] = struct{}{}
	}
}

// CanonForPhrase resolves an already-normalized phrase to its canonical
// category key.
func (ix *Index) CanonForPhrase(phrase string) (string, bool) {
	canon, ok := ix.phraseToCanon[phrase]
	return canon, ok
}

// Expand returns every normalized string that should count as a match for one
// query token: the token itself, its category keys, and all phrases of those
// categories. The result is deduplicated and sorted; an empty token expands
// to nothing.
func (ix *Index) Expand(token string) []string {
	t := normalizer.Normalize(token)
	if t == "" {
		return nil
	}

	expanded := map[string]struct{}{t: {}}

	// Direct canonical key.
	if phrases, ok := ix.canonPhrases[t]; ok {
		for _, p := range phrases {
			expanded[p] = struct{}{}
		}
	}

	// Word that signals one or more categories.
	for canon := range ix.tokenToCanons[t] {
		expanded[canon] = struct{}{}
		for _, p := range ix.canonPhrases[canon] {
			expanded[p] = struct{}{}
		}
	}

	out := make([]string, 0, len(expanded))
	for s := range expanded {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// TokenGroups splits an already-normalized query into per-word alternative
// sets, and appends one extra group holding the canonical key when the whole
// query is a known phrase (so multi-word phrases are not lost to the
// word-by-word split).
func (ix *Index) TokenGroups(normQuery string) [][]string {
	var groups [][]string
	for _, tok := range strings.Fields(normQuery) {
		groups = append(groups, ix.Expand(tok))
	}
	if canon, ok := ix.phraseToCanon[normQuery]; ok {
		groups = append(groups, []string{canon})
	}
	return groups
}
