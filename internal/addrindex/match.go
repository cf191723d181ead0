package addrindex

import (
	"strings"
	"unicode"
)

// Normalize folds an address into its grouping key: lower-cased, with
// whitespace, commas, periods and hyphens removed.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if unicode.IsSpace(r) || r == ',' || r == '.' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// MatchTokens reports whether every whitespace-separated token of query is a
// prefix of some whitespace-separated word of target. Matching is
// case-insensitive. An empty query matches every target.
func MatchTokens(query, target string) bool {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return true
	}

	words := strings.Fields(strings.ToLower(target))
	for _, tok := range tokens {
		if !hasWordWithPrefix(words, tok) {
			return false
		}
	}

	return true
}

func hasWordWithPrefix(words []string, prefix string) bool {
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}

	return false
}

// hasPrefixFold is a case-insensitive strings.HasPrefix.
func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
