// Package profile models a user's personal avoid-list: the ingredients
// the user has chosen to watch for, with selection state, display
// language and category grouping.
package profile

import (
	"errors"
	"sort"
)

// ErrNothingToUndo is returned by profile stores when no recently
// deleted ingredient is available for restore.
var ErrNothingToUndo = errors.New("nothing to undo")

// Entry is one item in a user's avoid-list. The map key holding it is
// an identifier string that may or may not be taxonomy-normalized.
type Entry struct {
	// Selected marks the ingredient as active for detection. A recorded
	// but unselected ingredient is never detected.
	Selected bool `json:"selected"`

	// Name is the display string chosen when the user added the entry.
	Name string `json:"name,omitempty"`

	// Lang records which language match produced this entry.
	Lang string `json:"lang,omitempty"`

	// Category is an explicit grouping assigned by the user at add-time.
	// Empty means the category is inferred from taxonomy flags.
	Category Category `json:"category,omitempty"`
}

// Profile maps an ingredient identifier to its avoid-list entry.
type Profile map[string]Entry

// Add records an ingredient, selected by default. Used both for
// taxonomy matches picked from search suggestions and for free-typed
// custom ingredients. The "other" category is kept implicit.
func (p Profile) Add(id, name, lang string, category Category) {
	e := Entry{Selected: true, Name: name, Lang: lang}
	if category != CategoryOther {
		e.Category = category
	}
	p[id] = e
}

// Toggle flips the selected state of an entry. Unknown ids are ignored.
func (p Profile) Toggle(id string) {
	e, ok := p[id]
	if !ok {
		return
	}
	e.Selected = !e.Selected
	p[id] = e
}

// SetCategory assigns an explicit category to an entry. Unknown ids are
// ignored.
func (p Profile) SetCategory(id string, category Category) {
	e, ok := p[id]
	if !ok {
		return
	}
	e.Category = category
	p[id] = e
}

// SelectedIDs returns the ids of all selected entries in lexical order.
func (p Profile) SelectedIDs() []string {
	var ids []string
	for id, e := range p {
		if e.Selected {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
