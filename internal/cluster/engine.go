package cluster

import "math"

// Linkage clusters the documents described by their pairwise distance
// matrix and returns the ordered merge history: exactly n-1
// MergeRecords for n >= 2 documents, an empty history otherwise
// (fewer than 2 documents cannot be clustered — callers treat that as
// insufficient data, not an error).
//
// Every document starts as its own active singleton cluster. Each
// iteration merges the two closest active clusters and recomputes the
// survivor's distances with the Lance-Williams recurrence for the
// chosen method. The matrix argument is never mutated; the engine
// works on a private copy.
func Linkage(matrix [][]float64, method Method) []MergeRecord {
	n := len(matrix)
	if n < 2 {
		return []MergeRecord{}
	}

	dist := make([][]float64, n)
	for i := range matrix {
		dist[i] = make([]float64, n)
		copy(dist[i], matrix[i])
	}

	// Slot bookkeeping: merged clusters keep living in the lower
	// slot of the pair, so the matrix never grows. id maps a slot to
	// its current identity in the extended index space.
	active := make([]bool, n)
	size := make([]int, n)
	id := make([]int, n)
	for i := 0; i < n; i++ {
		active[i] = true
		size[i] = 1
		id[i] = i
	}

	merges := make([]MergeRecord, 0, n-1)
	for step := 0; step < n-1; step++ {
		// Closest active pair. Strict less-than keeps the first pair
		// in ascending (i, j) scan order on ties, which makes
		// dendrograms reproducible bit for bit.
		minI, minJ := -1, -1
		minDist := math.MaxFloat64
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				if dist[i][j] < minDist {
					minDist = dist[i][j]
					minI, minJ = i, j
				}
			}
		}

		merges = append(merges, MergeRecord{
			Left:     id[minI],
			Right:    id[minJ],
			Distance: minDist,
			Count:    size[minI] + size[minJ],
		})

		// Fold cluster j into slot i, updating i's distances to every
		// remaining active cluster before sizes change.
		for k := 0; k < n; k++ {
			if !active[k] || k == minI || k == minJ {
				continue
			}
			d := updateDistance(method, dist[minI][k], dist[minJ][k], minDist, size[minI], size[minJ], size[k])
			dist[minI][k] = d
			dist[k][minI] = d
		}

		id[minI] = n + step
		size[minI] += size[minJ]
		active[minJ] = false
	}

	return merges
}

// updateDistance applies the Lance-Williams recurrence for the
// distance between the merged cluster (i absorbed j) and a bystander
// cluster k, given the pre-merge distances and sizes.
func updateDistance(method Method, dik, djk, dij float64, si, sj, sk int) float64 {
	switch method {
	case Complete:
		if dik > djk {
			return dik
		}
		return djk
	case Ward:
		ni := float64(si)
		nj := float64(sj)
		nk := float64(sk)
		num := (ni+nk)*dik*dik + (nj+nk)*djk*djk - nk*dij*dij
		return math.Sqrt(num / (ni + nj + nk))
	default:
		// Average linkage, also the fallback for unknown methods.
		return (dik*float64(si) + djk*float64(sj)) / float64(si+sj)
	}
}
