package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var keywordCaser = cases.Lower(language.English)

// NormalizeKeyword trims surrounding whitespace and lower-cases a
// keyword. Known keywords are compared and stored in this form, so
// "API" and "api" are the same keyword.
func NormalizeKeyword(keyword string) string {
	return keywordCaser.String(strings.TrimSpace(keyword))
}

// AppendKnownKeyword adds a keyword to the list after normalization.
// The second return value is false when the keyword is already present
// or normalizes to the empty string; the list is returned unchanged in
// that case.
func AppendKnownKeyword(keywords []string, keyword string) ([]string, bool) {
	normalized := NormalizeKeyword(keyword)
	if normalized == "" {
		return keywords, false
	}
	for _, existing := range keywords {
		if existing == normalized {
			return keywords, false
		}
	}
	return append(keywords, normalized), true
}
