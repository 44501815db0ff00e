package taxonomy

import (
	"regexp"
)

var langPrefixRe = regexp.MustCompile(`^[a-z]{2}:`)

// DisplayName resolves a human-readable name for an id. Precedence:
// the first label in preferredLang, then the first English label, then
// the first label of the entry's first language. When the id is not in
// the taxonomy at all, a best-effort fallback is returned: the raw id
// with any two-letter language prefix stripped. Never fails.
func (t *Taxonomy) DisplayName(id, preferredLang string) string {
	e, ok := t.entries[id]
	if !ok {
		return langPrefixRe.ReplaceAllString(id, "")
	}

	if preferredLang != "" {
		if labels := e.Labels[preferredLang]; len(labels) > 0 {
			return labels[0]
		}
	}
	if labels := e.Labels["en"]; len(labels) > 0 {
		return labels[0]
	}
	for _, lang := range e.LabelLangs() {
		if labels := e.Labels[lang]; len(labels) > 0 {
			return labels[0]
		}
	}
	return id
}
