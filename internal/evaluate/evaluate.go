// Package evaluate computes agreement statistics between predicted
// groupings and ground-truth sentiment labels: accuracy through
// majority-label alignment, a confusion matrix over the observed
// labels, and the Rand Index between two partitions.
package evaluate

import "sort"

// Result bundles the evaluation statistics for one run. Labels holds
// the sorted distinct ground-truth labels indexing both axes of
// Confusion (rows are true labels, columns predicted).
type Result struct {
	Accuracy  float64  `json:"accuracy"`
	Labels    []string `json:"labels"`
	Confusion [][]int  `json:"confusion"`
	RandIndex float64  `json:"rand_index"`
}

// Clusters scores a flat cluster assignment against ground-truth
// labels. Each cluster predicts its representative label (the mode of
// its members' ground truth) for every member. Mismatched input
// lengths yield the degenerate zero Result rather than a panic.
func Clusters(assignment []int, truth []string) Result {
	if len(assignment) != len(truth) {
		return degenerate()
	}
	predicted := PredictedLabels(assignment, truth)
	labels, confusion := ConfusionMatrix(predicted, truth)
	return Result{
		Accuracy:  Accuracy(predicted, truth),
		Labels:    labels,
		Confusion: confusion,
		RandIndex: RandIndex(assignment, truth),
	}
}

// Predictions scores per-document predicted labels (for example from
// the KNN classifier) against ground truth. The Rand Index compares
// the partition induced by the predicted labels with the one induced
// by the true labels.
func Predictions(predicted, truth []string) Result {
	if len(predicted) != len(truth) {
		return degenerate()
	}
	labels, confusion := ConfusionMatrix(predicted, truth)
	return Result{
		Accuracy:  Accuracy(predicted, truth),
		Labels:    labels,
		Confusion: confusion,
		RandIndex: RandIndex(predicted, truth),
	}
}

func degenerate() Result {
	return Result{Labels: []string{}, Confusion: [][]int{}}
}

// RepresentativeLabels maps each cluster id to the most frequent
// ground-truth label among its members. Ties go to the label that
// reached the winning count first while scanning documents in their
// original order.
func RepresentativeLabels(assignment []int, truth []string) map[int]string {
	counts := make(map[int]map[string]int)
	best := make(map[int]string)
	bestCount := make(map[int]int)

	for i, clusterID := range assignment {
		if i >= len(truth) {
			break
		}
		label := truth[i]
		if counts[clusterID] == nil {
			counts[clusterID] = make(map[string]int)
		}
		counts[clusterID][label]++
		if counts[clusterID][label] > bestCount[clusterID] {
			bestCount[clusterID] = counts[clusterID][label]
			best[clusterID] = label
		}
	}
	return best
}

// PredictedLabels expands cluster representative labels back onto the
// documents: document i is predicted as its cluster's representative.
func PredictedLabels(assignment []int, truth []string) []string {
	representatives := RepresentativeLabels(assignment, truth)
	predicted := make([]string, len(assignment))
	for i, clusterID := range assignment {
		predicted[i] = representatives[clusterID]
	}
	return predicted
}

// Accuracy returns the fraction of documents whose predicted label
// equals the ground truth. Mismatched or empty inputs score 0.
func Accuracy(predicted, truth []string) float64 {
	if len(predicted) != len(truth) || len(truth) == 0 {
		return 0
	}
	matches := 0
	for i := range truth {
		if predicted[i] == truth[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(truth))
}

// ConfusionMatrix builds a square matrix indexed by the sorted
// distinct ground-truth labels; rows count true labels, columns
// predicted ones. Predictions outside the ground-truth label set have
// no column and are not counted. Mismatched input lengths yield an
// empty matrix.
func ConfusionMatrix(predicted, truth []string) ([]string, [][]int) {
	if len(predicted) != len(truth) {
		return []string{}, [][]int{}
	}

	seen := make(map[string]bool)
	labels := make([]string, 0)
	for _, label := range truth {
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)

	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}

	matrix := make([][]int, len(labels))
	for i := range matrix {
		matrix[i] = make([]int, len(labels))
	}
	for i := range truth {
		row := index[truth[i]]
		col, ok := index[predicted[i]]
		if !ok {
			continue
		}
		matrix[row][col]++
	}
	return labels, matrix
}

// RandIndex measures pairwise agreement between two partitions of the
// same documents: over all unordered pairs, the fraction where both
// partitions co-group the pair or both separate it. Defined as 0 for
// fewer than 2 documents and for mismatched input lengths.
func RandIndex[A comparable, B comparable](a []A, b []B) float64 {
	n := len(a)
	if n != len(b) || n < 2 {
		return 0
	}
	agreeing := 0
	total := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			total++
			if (a[i] == a[j]) == (b[i] == b[j]) {
				agreeing++
			}
		}
	}
	return float64(agreeing) / float64(total)
}
