// Package ident canonicalizes ingredient identifier strings so that ids
// from different sources (taxonomy matches, user profiles, product API
// tags) can be compared for equality.
//
// Identifier formats diverged historically: taxonomy ids are bare slugs
// ("palm-oil"), product APIs emit language-prefixed tags ("en:palm-oil")
// and some sources append a comma-led variant suffix ("palm-oil,-organic").
// Normalization is the only mechanism that makes them comparable.
package ident

import (
	"regexp"
	"strings"
)

var (
	langPrefixRe = regexp.MustCompile(`^[a-z]{2}:`)
	variantRe    = regexp.MustCompile(`,-.*$`)
)

// Normalize lowercases an id, strips a leading two-letter language
// prefix ("en:", "fr:") and a trailing ",-..." variant suffix. It is a
// pure, total, idempotent function: any string normalizes to some
// string, possibly unchanged.
func Normalize(id string) string {
	id = strings.ToLower(id)
	id = langPrefixRe.ReplaceAllString(id, "")
	return variantRe.ReplaceAllString(id, "")
}
