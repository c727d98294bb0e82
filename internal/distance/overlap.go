package distance

// WordOverlapDistance is the default metric. Both strings are split on
// whitespace into token sets; the distance is the share of the union
// not covered by the intersection: (|A∪B| - |A∩B|) / |A∪B|.
// Two documents with no tokens at all are maximally dissimilar (1),
// never similar.
func WordOverlapDistance(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	union := len(setA)
	intersection := 0
	for tok := range setB {
		if _, ok := setA[tok]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 1
	}
	return float64(union-intersection) / float64(union)
}

// JaccardDistance is 1 minus the Jaccard similarity of the two token
// sets: 1 - |A∩B| / |A∪B|. An empty union yields 1.
func JaccardDistance(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	union := len(setA)
	intersection := 0
	for tok := range setB {
		if _, ok := setA[tok]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 1
	}
	return 1 - float64(intersection)/float64(union)
}
