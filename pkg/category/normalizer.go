package category

import (
	"strings"
)

// Clean canonicalizes a free-text category or subcategory label: surrounding
// whitespace is trimmed, internal whitespace runs collapse to a single space,
// and every word is title-cased. Empty input is returned unchanged.
//
// Clean is idempotent, so labels already stored in canonical form pass
// through untouched.
func Clean(value string) string {
	words := strings.Fields(value)
	if len(words) == 0 {
		return strings.TrimSpace(value)
	}
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
