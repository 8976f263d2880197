// Package shape classifies query text into the coarse forms that drive blend weighting.
package shape

import "strings"

// Shape is the classification of a query's form.
type Shape string

const (
	// Acronym is a single all-uppercase token of 2-6 letters (e.g. "WPU", "LYBUNT").
	Acronym Shape = "acronym"
	// Short is a query of at most two tokens that is not an acronym.
	Short Shape = "short"
	// NaturalLanguage is everything else.
	NaturalLanguage Shape = "natural_language"
)

// Classify derives the shape of a query. Acronym detection runs before the
// short-query rule: an all-caps 2-3 letter token would otherwise also satisfy
// the token-count test.
func Classify(text string) Shape {
	trimmed := strings.TrimSpace(text)
	if isAcronym(trimmed) {
		return Acronym
	}
	if len(strings.Fields(trimmed)) <= 2 {
		return Short
	}
	return NaturalLanguage
}

func isAcronym(s string) bool {
	if len(s) < 2 || len(s) > 6 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
