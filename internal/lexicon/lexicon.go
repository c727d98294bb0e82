// Package lexicon implements a dictionary sentiment heuristic: each
// word of a cleaned tweet votes for the list it belongs to, and the
// side with more votes names the label. It needs no labeled reference
// set, which makes it a useful baseline next to the KNN classifier.
package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
)

// Labels produced by the heuristic.
const (
	Positive = "positive"
	Negative = "negative"
	Neutral  = "neutral"
)

// Lexicon holds immutable positive and negative word sets. Build one
// with New, LoadFiles, or Default; there is no mutation after that.
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the shared Lexicon built from the built-in word
// lists. The instance is created on first use and reused afterwards.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		defaultLex = New(builtinPositive, builtinNegative)
	})
	return defaultLex
}

// New builds a Lexicon from explicit word lists. Words are lowercased;
// duplicates collapse.
func New(positive, negative []string) *Lexicon {
	lex := &Lexicon{
		positive: make(map[string]struct{}, len(positive)),
		negative: make(map[string]struct{}, len(negative)),
	}
	for _, w := range positive {
		lex.positive[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range negative {
		lex.negative[strings.ToLower(w)] = struct{}{}
	}
	return lex
}

// LoadFiles builds a Lexicon from two word-list files, one word per
// line. Blank lines and lines starting with '#' are skipped. An empty
// path falls back to the built-in list for that side.
func LoadFiles(positivePath, negativePath string) (*Lexicon, error) {
	positive := builtinPositive
	negative := builtinNegative

	if positivePath != "" {
		words, err := readWordList(positivePath)
		if err != nil {
			return nil, fmt.Errorf("load positive word list: %w", err)
		}
		positive = words
	}
	if negativePath != "" {
		words, err := readWordList(negativePath)
		if err != nil {
			return nil, fmt.Errorf("load negative word list: %w", err)
		}
		negative = words
	}

	return New(positive, negative), nil
}

// Predict labels a cleaned tweet. Every token occurrence in the
// positive set is one positive vote, likewise for negative; the side
// with strictly more votes wins, and ties (including zero votes both
// ways) are Neutral.
func (l *Lexicon) Predict(text string) string {
	pos, neg := l.Score(text)
	switch {
	case pos > neg:
		return Positive
	case neg > pos:
		return Negative
	default:
		return Neutral
	}
}

// Score counts positive and negative votes for a cleaned tweet.
// Repeated words vote once per occurrence.
func (l *Lexicon) Score(text string) (positive, negative int) {
	for _, tok := range strings.Fields(text) {
		if _, ok := l.positive[tok]; ok {
			positive++
		}
		if _, ok := l.negative[tok]; ok {
			negative++
		}
	}
	return positive, negative
}

// Size reports how many words each side holds.
func (l *Lexicon) Size() (positive, negative int) {
	return len(l.positive), len(l.negative)
}

func readWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: no words found", path)
	}
	return words, nil
}
