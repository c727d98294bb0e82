package distance

import (
	"math"
	"testing"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"identical empty", "", "", 0},
		{"identical word", "hello", "hello", 0},
		{"identical unicode", "こんにちは", "こんにちは", 0},

		// Empty string cases
		{"empty a", "", "hello", 5},
		{"empty b", "hello", "", 5},
		{"empty a unicode", "", "こんにちは", 5},

		// Single character differences
		{"one substitution", "cat", "bat", 1},
		{"one insertion", "cat", "cart", 1},
		{"one deletion", "cart", "cat", 1},

		// Multiple differences
		{"two substitutions", "cat", "dog", 3},
		{"kitten to sitting", "kitten", "sitting", 3},
		{"saturday to sunday", "saturday", "sunday", 3},

		// Common tweet typos
		{"love to lvoe", "love", "lvoe", 2},
		{"great to grate", "great", "grate", 2},
		{"awesome to awsome", "awesome", "awsome", 1},

		// Case sensitivity
		{"case difference", "Hello", "hello", 1},
		{"all caps", "HELLO", "hello", 5},

		// Unicode
		{"unicode substitution", "café", "cafe", 1},
		{"unicode insertion", "naïve", "naive", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EditDistance(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("EditDistance(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}
			// Test symmetry: distance(a,b) should equal distance(b,a)
			resultReverse := EditDistance(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("EditDistance is not symmetric: (%q,%q)=%d, (%q,%q)=%d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		// Boundary values
		{"both empty", "", "", 0},
		{"identical", "good day", "good day", 0},
		{"nothing shared", "abc", "xyz", 1},
		{"empty vs word", "", "hello", 1},

		// Normalization by the longer string
		{"one edit of four", "cart", "cat", 0.25},
		{"half replaced", "ab", "ax", 0.5},
		{"kitten to sitting", "kitten", "sitting", 3.0 / 7.0},

		// Unicode lengths counted in runes, not bytes
		{"empty vs unicode", "", "こんにちは", 1},
		{"unicode one edit", "café", "cafe", 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LevenshteinDistance(tt.a, tt.b)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("LevenshteinDistance(%q, %q) = %v, want %v", tt.a, tt.b, result, tt.expected)
			}
			if result < 0 || result > 1 {
				t.Errorf("LevenshteinDistance(%q, %q) = %v, outside [0,1]", tt.a, tt.b, result)
			}
			// Test symmetry
			resultReverse := LevenshteinDistance(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("LevenshteinDistance is not symmetric: (%q,%q)=%v, (%q,%q)=%v",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestMin3(t *testing.T) {
	tests := []struct {
		a, b, c  int
		expected int
	}{
		{1, 2, 3, 1},
		{3, 1, 2, 1},
		{2, 3, 1, 1},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{-1, 0, 1, -1},
	}

	for _, tt := range tests {
		result := min3(tt.a, tt.b, tt.c)
		if result != tt.expected {
			t.Errorf("min3(%d, %d, %d) = %d, want %d", tt.a, tt.b, tt.c, result, tt.expected)
		}
	}
}

// Benchmark tests
func BenchmarkEditDistance_Short(b *testing.B) {
	for i := 0; i < b.N; i++ {
		EditDistance("kitten", "sitting")
	}
}

func BenchmarkLevenshteinDistance_Tweet(b *testing.B) {
	strA := "the quick brown fox jumps over the lazy dog"
	strB := "the quikc brown foz jumsp over teh lazy dog"
	for i := 0; i < b.N; i++ {
		LevenshteinDistance(strA, strB)
	}
}
