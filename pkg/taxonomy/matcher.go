package taxonomy

import (
	"strings"
)

// Match is one resolution of a free-text phrase: the canonical id of the
// matched entry and the language in which the match occurred.
type Match struct {
	ID   string `json:"id"`
	Lang string `json:"lang"`
}

// FindMatches resolves a free-text phrase to the set of entries whose
// labels or synonyms contain the phrase as one comma-separated part,
// case-insensitively, in any indexed language.
//
// For each entry the labels of every language are scanned; the first
// match per entry-language pair is recorded and further labels of that
// language are skipped. A phrase may match several entries (polysemy is
// preserved) and may match the same entry under several languages, in
// which case all (id, lang) pairs are returned. Synonyms are consulted
// only when no label of the entry matched, and contribute at most one
// match per entry.
//
// This is a linear scan over the whole taxonomy. The taxonomy is loaded
// once and queries are interactive, so no index is maintained for the
// exact-match path.
func (t *Taxonomy) FindMatches(phrase string) []Match {
	q := strings.ToLower(strings.TrimSpace(phrase))
	if q == "" {
		return nil
	}

	var matches []Match
	for _, id := range t.ids {
		e := t.entries[id]

		matched := false
		for _, lang := range e.LabelLangs() {
			for _, label := range e.Labels[lang] {
				if labelHasPart(label, q) {
					matches = append(matches, Match{ID: id, Lang: lang})
					matched = true
					break
				}
			}
		}
		if matched {
			continue
		}

		for _, lang := range e.SynonymLangs() {
			if anyEquals(e.Synonyms[lang], q) {
				matches = append(matches, Match{ID: id, Lang: lang})
				break
			}
		}
	}
	return matches
}

// labelHasPart reports whether one of the comma-separated parts of a
// label equals the already lowercased, trimmed query.
func labelHasPart(label, q string) bool {
	for part := range strings.SplitSeq(label, ",") {
		if strings.ToLower(strings.TrimSpace(part)) == q {
			return true
		}
	}
	return false
}

func anyEquals(names []string, q string) bool {
	for _, name := range names {
		if strings.ToLower(strings.TrimSpace(name)) == q {
			return true
		}
	}
	return false
}
