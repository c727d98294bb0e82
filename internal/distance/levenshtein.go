package distance

// LevenshteinDistance is the classic edit distance (insertions,
// deletions, substitutions at unit cost) over raw characters,
// normalized by the length of the longer string so the result stays
// in [0, 1]. Two empty strings are identical: distance 0.
func LevenshteinDistance(a, b string) float64 {
	lenA := len([]rune(a))
	lenB := len([]rune(b))
	if lenA == 0 && lenB == 0 {
		return 0
	}
	longest := lenA
	if lenB > longest {
		longest = lenB
	}
	return float64(EditDistance(a, b)) / float64(longest)
}

// EditDistance calculates the minimum number of single-character edits
// (insertions, deletions, or substitutions) required to change one
// string into another. This is a pure function with no side effects.
func EditDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len([]rune(b))
	}
	if len(b) == 0 {
		return len([]rune(a))
	}

	// Convert to runes for proper Unicode handling
	runesA := []rune(a)
	runesB := []rune(b)
	lenA := len(runesA)
	lenB := len(runesB)

	// Create a matrix to store distances
	// We only need two rows at a time for space efficiency
	prev := make([]int, lenB+1)
	curr := make([]int, lenB+1)

	// Initialize first row
	for j := 0; j <= lenB; j++ {
		prev[j] = j
	}

	// Fill in the rest of the matrix
	for i := 1; i <= lenA; i++ {
		curr[0] = i
		for j := 1; j <= lenB; j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}
			// Minimum of: deletion, insertion, substitution
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		// Swap rows
		prev, curr = curr, prev
	}

	return prev[lenB]
}

// min3 returns the minimum of three integers.
func min3(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}
