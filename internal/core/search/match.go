// Package search implements the free-text matching used by the purchase search bar.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// MatchName reports whether every word of query is a prefix of some word of candidateText.
//
// Both inputs are split on runs of whitespace and case-folded. Punctuation stays
// part of the word, so "2%" only matches a word starting with "2%". Word order is
// ignored and one candidate word may satisfy several query words. An empty query
// matches anything; an empty candidate matches only an empty query.
func MatchName(candidateText, query string) bool {
	queryTokens := Tokenize(query)
	if len(queryTokens) == 0 {
		return true
	}

	candidateTokens := Tokenize(candidateText)
	if len(candidateTokens) == 0 {
		return false
	}

	for _, q := range queryTokens {
		if !hasPrefixToken(candidateTokens, q) {
			return false
		}
	}
	return true
}

// Tokenize splits s into case-folded whitespace-delimited words.
func Tokenize(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	// Casers carry state, so each call gets its own.
	return strings.Fields(cases.Fold().String(s))
}

func hasPrefixToken(tokens []string, prefix string) bool {
	for _, t := range tokens {
		if strings.HasPrefix(t, prefix) {
			return true
		}
	}
	return false
}
