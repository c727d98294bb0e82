package distance

import "math"

// CosineDistance treats each string as a multiset of whitespace tokens
// and returns 1 minus the cosine similarity of the two count vectors
// over their shared vocabulary. If either vector has zero magnitude
// the distance is 1.
//
// The dot product and squared magnitudes are accumulated as integers
// so the result is identical regardless of map iteration order.
func CosineDistance(a, b string) float64 {
	countsA := wordCounts(a)
	countsB := wordCounts(b)

	var dot, magA, magB int
	for tok, n := range countsA {
		magA += n * n
		if m, ok := countsB[tok]; ok {
			dot += n * m
		}
	}
	for _, m := range countsB {
		magB += m * m
	}

	if magA == 0 || magB == 0 {
		return 1
	}
	return 1 - float64(dot)/(math.Sqrt(float64(magA))*math.Sqrt(float64(magB)))
}
