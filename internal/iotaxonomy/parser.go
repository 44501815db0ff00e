// Package iotaxonomy implements the taxonomy build step: parsing the
// hierarchical text source files for ingredients and additives, writing
// the JSON caches, and loading them back into the immutable in-memory
// taxonomy at runtime.
package iotaxonomy

import (
	"regexp"
	"strings"

	"github.com/gnames/gnlib"
	"github.com/safebite/safebite/pkg/taxonomy"
)

var (
	langLineRe = regexp.MustCompile(`^([a-z]{2,3}):\s*(.+)$`)
	bareLineRe = regexp.MustCompile(`^[^:]+$`)
	spaceRe    = regexp.MustCompile(`\s+`)
)

// Parser is a line-by-line state machine over the taxonomy source
// format. Lines it does not recognize are ignored silently, so unknown
// directives never abort a build (forward-compatibility policy).
//
// An entry opens on the first language line and a new one opens on
// every English line; the canonical id derives from that line's full
// name value, lowercased with whitespace collapsed to hyphens. Once set
// the id of an entry never changes. A duplicate id continues the
// already-open entry, accumulating labels.
type Parser struct {
	entries map[string]*taxonomy.Entry
	current *taxonomy.Entry
}

// NewParser creates an empty Parser.
func NewParser() *Parser {
	return &Parser{entries: make(map[string]*taxonomy.Entry)}
}

// AddLine consumes one source line. It never fails.
func (p *Parser) AddLine(line string) {
	line = strings.TrimSpace(gnlib.FixUtf8(line))

	// Comments and blank lines carry no state; the open entry persists
	// until the next English line opens a new one.
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	// Parent reference, e.g. "< en:caramel syrup". Does not open a new
	// entry.
	if strings.HasPrefix(line, "<") {
		if p.current != nil {
			parent := strings.TrimSpace(line[1:])
			p.current.Parents = append(p.current.Parents, parent)
		}
		return
	}

	if m := langLineRe.FindStringSubmatch(line); m != nil {
		p.addLabels(m[1], strings.TrimSpace(m[2]))
		return
	}

	switch {
	case strings.HasPrefix(line, "wikidata:"):
		if p.current != nil {
			p.current.Wikidata = scalarValue(line)
		}
	case strings.HasPrefix(line, "wikipedia:"):
		if p.current != nil {
			p.current.Wikipedia = scalarValue(line)
		}
	case strings.HasPrefix(line, "e_number:"):
		if p.current != nil {
			p.current.ENumber = scalarValue(line)
		}
	case strings.HasPrefix(line, "vegan:"):
		if p.current != nil {
			p.current.Vegan = scalarValue(line)
		}
	case strings.HasPrefix(line, "vegetarian:"):
		if p.current != nil {
			p.current.Vegetarian = scalarValue(line)
		}
	case strings.HasPrefix(line, "synonyms:"):
		p.addPerLang(line, func(e *taxonomy.Entry, lang, value string) {
			if e.Synonyms == nil {
				e.Synonyms = make(map[string][]string)
			}
			e.Synonyms[lang] = splitNames(value)
		})
	case strings.HasPrefix(line, "description:"):
		p.addPerLang(line, func(e *taxonomy.Entry, lang, value string) {
			if e.Descriptions == nil {
				e.Descriptions = make(map[string]string)
			}
			e.Descriptions[lang] = value
		})
	case bareLineRe.MatchString(line):
		// A name with no language code counts as an extra English label.
		if p.current != nil {
			p.current.Labels["en"] = append(p.current.Labels["en"], line)
		}
	}
}

// Entries returns the parsed entries by canonical id.
func (p *Parser) Entries() map[string]taxonomy.Entry {
	res := make(map[string]taxonomy.Entry, len(p.entries))
	for id, e := range p.entries {
		res[id] = *e
	}
	return res
}

// addLabels handles a "lang: name[, name...]" line. An English line
// opens a new entry (or re-opens an existing one on duplicate id); any
// language opens one when no entry is open yet. The id derives from the
// line's whole name value, commas included; the variant suffix this can
// produce is what ident.Normalize strips back off.
func (p *Parser) addLabels(lang, name string) {
	if lang == "en" || p.current == nil {
		id := spaceRe.ReplaceAllString(strings.ToLower(name), "-")
		e, ok := p.entries[id]
		if !ok {
			e = &taxonomy.Entry{
				ID:     id,
				Labels: make(map[string][]string),
			}
			p.entries[id] = e
		}
		p.current = e
	}
	p.current.Labels[lang] = append(p.current.Labels[lang], splitNames(name)...)
}

func (p *Parser) addPerLang(line string, set func(*taxonomy.Entry, string, string)) {
	if p.current == nil {
		return
	}
	parts := strings.SplitN(line, ":", 3)
	if len(parts) != 3 {
		return
	}
	lang := strings.TrimSpace(parts[1])
	value := strings.TrimSpace(parts[2])
	if lang == "" || value == "" {
		return
	}
	set(p.current, lang, value)
}

// scalarValue returns the trimmed value after the first colon.
func scalarValue(line string) string {
	_, value, _ := strings.Cut(line, ":")
	return strings.TrimSpace(value)
}

// splitNames splits a comma-joined name list into trimmed parts.
func splitNames(value string) []string {
	parts := strings.Split(value, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		names = append(names, strings.TrimSpace(part))
	}
	return names
}
