package models

import (
	"github.com/HananMiftah/TweetClassifier/internal/cluster"
	"github.com/HananMiftah/TweetClassifier/internal/evaluate"
)

// Prediction pairs one document with its predicted label.
type Prediction struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Label     string `json:"label,omitempty"`
	Predicted string `json:"predicted"`
}

// ClassifyReport is the result of classifying a query or evaluating a
// whole dataset with KNN or the lexicon heuristic.
type ClassifyReport struct {
	Dataset string `json:"dataset,omitempty"`
	// Kind is "knn" or "lexicon".
	Kind   string `json:"kind"`
	K      int    `json:"k,omitempty"`
	Vote   string `json:"vote,omitempty"`
	Metric string `json:"metric,omitempty"`
	// Predictions holds one entry per classified document, in dataset
	// order; a single-query run holds exactly one.
	Predictions []Prediction `json:"predictions"`
	// Evaluation is nil for single-query runs and for datasets without
	// full ground-truth labels.
	Evaluation *evaluate.Result `json:"evaluation,omitempty"`
	QueryTime  int64            `json:"query_time_ms"`
}

// ClusterSummary describes one extracted cluster.
type ClusterSummary struct {
	ID   int `json:"id"`
	Size int `json:"size"`
	// Label is the representative ground-truth label of the members,
	// empty when the dataset is unlabeled.
	Label string `json:"label,omitempty"`
	// Members lists document IDs in original dataset order.
	Members []string `json:"members"`
}

// ClusterReport is the full result of one clustering run: merge
// history, flat assignment, per-cluster summaries, and scores.
type ClusterReport struct {
	Dataset    string                `json:"dataset,omitempty"`
	Method     string                `json:"method"`
	Metric     string                `json:"metric"`
	K          int                   `json:"k"`
	Dendrogram []cluster.MergeRecord `json:"dendrogram"`
	Assignment []int                 `json:"assignment"`
	Clusters   []ClusterSummary      `json:"clusters"`
	// Evaluation is nil when the dataset lacks full ground-truth labels.
	Evaluation *evaluate.Result `json:"evaluation,omitempty"`
	QueryTime  int64            `json:"query_time_ms"`
}
