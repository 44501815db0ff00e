package taxonomy

import (
	"sort"
	"strings"
)

// Suggestion is one search-as-you-type candidate for interactive
// ingredient adding.
type Suggestion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Lang string `json:"lang,omitempty"`
}

// Search returns suggestions for a partial query. An entry qualifies if
// any of its labels, in any language, contains the query as a
// case-insensitive substring. Synonyms are not searched in this path.
//
// The display language per entry is the caller's locale when the entry
// has labels in it, else English, else the entry's first language.
// Results are ordered: exact full-string matches first, then prefix
// matches, then the rest, each tier sorted alphabetically by display
// name. Truncating to a bounded count is the caller's concern.
func (t *Taxonomy) Search(query, locale string) []Suggestion {
	q := strings.ToLower(query)
	if q == "" {
		return nil
	}

	var res []Suggestion
	for _, id := range t.ids {
		e := t.entries[id]
		if !labelsContain(e.Labels, q) {
			continue
		}
		lang := displayLang(&e, locale)
		res = append(res, Suggestion{
			ID:   id,
			Name: t.DisplayName(id, lang),
			Lang: lang,
		})
	}

	sort.SliceStable(res, func(i, j int) bool {
		a := strings.ToLower(res[i].Name)
		b := strings.ToLower(res[j].Name)
		ra, rb := searchRank(a, q), searchRank(b, q)
		if ra != rb {
			return ra < rb
		}
		return a < b
	})
	return res
}

func labelsContain(labels map[string][]string, q string) bool {
	for _, names := range labels {
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), q) {
				return true
			}
		}
	}
	return false
}

// displayLang picks the language used to render a suggestion: the
// requested locale when labelled, else English, else the first
// available language.
func displayLang(e *Entry, locale string) string {
	if locale != "" && len(e.Labels[locale]) > 0 {
		return locale
	}
	if len(e.Labels["en"]) > 0 {
		return "en"
	}
	langs := e.LabelLangs()
	if len(langs) > 0 {
		return langs[0]
	}
	return ""
}

// searchRank orders suggestions into tiers: exact match, prefix match,
// everything else.
func searchRank(name, q string) int {
	switch {
	case name == q:
		return 0
	case strings.HasPrefix(name, q):
		return 1
	default:
		return 2
	}
}
