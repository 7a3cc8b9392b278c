// Package idiom implements the lexical profiling engine: a tokenizer, a
// bounded decayed top-K tracker, and the dual-scope store that turns raw
// message streams into per-person "idiom" data (tokens weighted by how
// distinctive they are relative to the places the person posts in).
//
// All state is in-memory and rebuilt from history replay on registration;
// nothing in this package touches the network or disk.
package idiom

import (
	"strings"
	"unicode"
)

// Punctuation trimmed from token edges. Opening marks are stripped from the
// left, closing marks (plus sentence punctuation) from the right.
const (
	openingPunct = "([{'\"*`"
	closingPunct = ":.?!`;,)]}'\"*`"
)

// Tokenize splits text on whitespace and normalizes each token: edge
// punctuation is trimmed and capitalized tokens are folded to lowercase.
// Empty tokens (e.g. a bare "!!!") are kept; the store maps them to its
// reserved sentinel index.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, smartLower(trimPunct(f)))
	}
	return tokens
}

func trimPunct(token string) string {
	token = strings.TrimLeft(token, openingPunct)
	return strings.TrimRight(token, closingPunct)
}

// isCapitalized reports whether a token carries deliberate casing beyond an
// ordinary sentence-initial capital: it is capitalized unless every rune
// after the first is already lowercase.
func isCapitalized(token string) bool {
	first := true
	for _, r := range token {
		if first {
			first = false
			continue
		}
		if !unicode.IsLower(r) {
			return true
		}
	}
	return false
}

// smartLower folds capitalized tokens to lowercase and leaves the rest
// untouched, so "HELLO" becomes "hello" while "Hello" survives as typed.
func smartLower(token string) string {
	if isCapitalized(token) {
		return strings.ToLower(token)
	}
	return token
}
