// Package knn implements the k-nearest-neighbor sentiment classifier
// over the shared distance metrics.
package knn

import (
	"sort"

	"github.com/HananMiftah/TweetClassifier/internal/distance"
)

// Vote types accepted by Classify.
const (
	VoteMajority = "majority"
	VoteWeighted = "weighted"
)

// DefaultLabel is returned when the reference set is empty. The
// contract expects callers to supply a non-empty reference, but a
// degenerate input yields a defined answer rather than a crash.
const DefaultLabel = "neutral"

// epsilon keeps inverse-distance weights finite for non-zero
// distances.
const epsilon = 0.0001

// Example is one labeled reference document.
type Example struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Params configure one classification call.
type Params struct {
	K            int    `json:"k"`
	VoteType     string `json:"vote_type"`
	DistanceType string `json:"distance_type"`
}

// Neighbor is a reference example ranked by its distance to a query.
// Index points back into the caller's reference slice.
type Neighbor struct {
	Index    int     `json:"index"`
	Label    string  `json:"label"`
	Distance float64 `json:"distance"`
}

// Classify predicts a label for query by voting over its nearest
// reference examples. Pure and deterministic: the same inputs always
// produce the same label.
func Classify(query string, reference []Example, params Params) string {
	return Vote(Nearest(query, reference, params), params.VoteType)
}

// Nearest returns the min(k, len(reference)) reference examples
// closest to query under the configured metric, sorted ascending by
// distance. Exact ties keep the original reference order so results
// are reproducible.
func Nearest(query string, reference []Example, params Params) []Neighbor {
	if len(reference) == 0 {
		return nil
	}

	metric := distance.ByName(params.DistanceType)
	neighbors := make([]Neighbor, len(reference))
	for i, ex := range reference {
		neighbors[i] = Neighbor{
			Index:    i,
			Label:    ex.Label,
			Distance: metric(query, ex.Text),
		}
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Distance < neighbors[j].Distance
	})

	k := params.K
	if k < 1 {
		k = 1
	}
	if k > len(neighbors) {
		k = len(neighbors)
	}
	return neighbors[:k]
}

// Vote aggregates neighbor labels into a prediction. Majority counts
// each neighbor once; weighted scores each neighbor 1 when its
// distance is exactly zero and 1/(distance+epsilon) otherwise. Both
// break ties in favor of the label that reached the winning total
// first in distance order. Unrecognized vote types fall back to
// majority. An empty neighbor set yields DefaultLabel.
func Vote(neighbors []Neighbor, voteType string) string {
	if len(neighbors) == 0 {
		return DefaultLabel
	}
	if voteType == VoteWeighted {
		return weightedVote(neighbors)
	}
	return majorityVote(neighbors)
}

func majorityVote(neighbors []Neighbor) string {
	counts := make(map[string]int, len(neighbors))
	best := ""
	bestCount := 0
	for _, n := range neighbors {
		counts[n.Label]++
		if counts[n.Label] > bestCount {
			bestCount = counts[n.Label]
			best = n.Label
		}
	}
	return best
}

func weightedVote(neighbors []Neighbor) string {
	weights := make(map[string]float64, len(neighbors))
	best := ""
	bestWeight := 0.0
	for _, n := range neighbors {
		weight := 1.0
		if n.Distance != 0 {
			weight = 1.0 / (n.Distance + epsilon)
		}
		weights[n.Label] += weight
		if weights[n.Label] > bestWeight {
			bestWeight = weights[n.Label]
			best = n.Label
		}
	}
	return best
}
