package search

import "strings"

// interrogatives are the leading tokens that mark a query as a question or
// request rather than a keyword lookup.
var interrogatives = map[string]struct{}{
	"how": {}, "what": {}, "why": {}, "when": {}, "where": {}, "which": {},
	"can": {}, "do": {}, "does": {}, "is": {}, "are": {}, "should": {},
	"would": {}, "could": {}, "explain": {}, "show": {}, "tell": {}, "help": {},
}

// IsNaturalLanguage reports whether a query reads like a natural-language
// question: it starts with an interrogative token, contains a question mark,
// or runs longer than three words.
func IsNaturalLanguage(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}

	words := strings.Fields(q)
	if _, ok := interrogatives[words[0]]; ok {
		return true
	}
	if strings.Contains(q, "?") {
		return true
	}
	return len(words) > 3
}
