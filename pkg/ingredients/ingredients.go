// Package ingredients turns a raw ingredient-declaration string, as
// printed on packaging or returned by a product API, into candidate
// phrases for taxonomy matching.
package ingredients

import (
	"regexp"
	"strings"
)

var (
	bracketsRe   = regexp.MustCompile(`[()\[\]]`)
	disallowedRe = regexp.MustCompile(`[^a-zA-ZÀ-ÿ0-9,\s]`)
	parenRe      = regexp.MustCompile(`\([^)]*\)`)
	spacesRe     = regexp.MustCompile(`\s+`)
	delimRe      = regexp.MustCompile(`[,;.-]`)
)

// boilerplate phrases removed from declarations before splitting.
// The list is finite and checked literally, not via translation lookup.
var boilerplate = []string{
	"may contain",
	"contains",
	"free from",
	"saattaa sisältää",
	"puede contener",
	"contiene",
	"peut contenir",
	"contient",
	"kann enthalten",
	"enthält",
}

var boilerplateRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(boilerplate))
	for i, phrase := range boilerplate {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
	}
	return res
}()

// Parse converts a raw declaration into a deduplicated, order-preserving
// list of candidate phrases. It never fails; the worst case is a list of
// meaningless fragments that simply match nothing downstream.
//
// Steps: lowercase, drop bracket characters, drop anything that is not a
// letter (accented Latin included), digit, comma or whitespace, blank
// out known boilerplate phrases, strip parenthetical content (a second,
// defensive pass - the bracket characters are already gone, so in
// practice a no-op), collapse whitespace, split on ",;.-", trim, drop
// empties, dedupe keeping first-seen order.
func Parse(text string) []string {
	if text == "" {
		return nil
	}

	s := strings.ToLower(text)
	s = bracketsRe.ReplaceAllString(s, "")
	s = disallowedRe.ReplaceAllString(s, "")

	for _, re := range boilerplateRes {
		s = re.ReplaceAllString(s, " ")
	}

	s = parenRe.ReplaceAllString(s, " ")
	s = spacesRe.ReplaceAllString(s, " ")

	seen := make(map[string]struct{})
	var phrases []string
	for _, tok := range delimRe.Split(s, -1) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		phrases = append(phrases, tok)
	}
	return phrases
}
