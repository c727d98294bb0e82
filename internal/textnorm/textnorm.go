// Package textnorm cleans raw tweet text into the normalized form the
// distance metrics consume: lowercase words separated by single
// spaces, with URLs, @mentions, and symbols removed.
package textnorm

import (
	"strings"
	"unicode"
)

// Normalize cleans one raw tweet. URL and @mention tokens are dropped
// whole; remaining tokens are lowercased and stripped to letters and
// digits (a #hashtag keeps its word), and empty leftovers disappear.
// The result is rejoined with single spaces, ready for whitespace
// tokenization. No stemming is applied.
func Normalize(text string) string {
	fields := strings.Fields(text)
	cleaned := make([]string, 0, len(fields))
	for _, tok := range fields {
		if isURL(tok) || isMention(tok) {
			continue
		}
		word := stripSymbols(tok)
		if word != "" {
			cleaned = append(cleaned, word)
		}
	}
	return strings.Join(cleaned, " ")
}

// NormalizeAll cleans every text in order.
func NormalizeAll(texts []string) []string {
	cleaned := make([]string, len(texts))
	for i, text := range texts {
		cleaned[i] = Normalize(text)
	}
	return cleaned
}

func isURL(tok string) bool {
	lower := strings.ToLower(tok)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "www.")
}

func isMention(tok string) bool {
	return len(tok) > 1 && tok[0] == '@'
}

// stripSymbols lowercases tok and keeps only letters and digits.
func stripSymbols(tok string) string {
	var b strings.Builder
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
