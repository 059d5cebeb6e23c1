package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//Normalize lowercases and strips combining marks so "Développeur" matches "developpeur"
func Normalize(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

//MatchesQuery reports whether the query occurs in the job title or description,
//ignoring case and diacritics. An empty query matches everything.
func MatchesQuery(title, description, query string) bool {
	q := Normalize(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(Normalize(title), q) || strings.Contains(Normalize(description), q)
}
