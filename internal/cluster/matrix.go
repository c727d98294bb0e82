package cluster

import "github.com/HananMiftah/TweetClassifier/internal/distance"

// NewDistanceMatrix computes the symmetric pairwise distance matrix
// for texts under the given metric. The diagonal is zero; each pair
// is evaluated once and mirrored, so metric symmetry holds exactly in
// the output even for a non-symmetric function.
func NewDistanceMatrix(texts []string, metric distance.Func) [][]float64 {
	n := len(texts)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric(texts[i], texts[j])
			matrix[i][j] = d
			matrix[j][i] = d
		}
	}
	return matrix
}
