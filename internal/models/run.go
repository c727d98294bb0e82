package models

import "time"

// Run kinds stored in history.
const (
	RunKindKNN     = "knn"
	RunKindCluster = "cluster"
	RunKindLexicon = "lexicon"
)

// Run is one stored history row: what ran, with which parameters, and
// the headline scores. Only summaries are stored, never documents.
type Run struct {
	ID      string `json:"id" db:"id"`
	Kind    string `json:"kind" db:"kind"`
	Dataset string `json:"dataset" db:"dataset"`
	// Params is the JSON-encoded parameter set of the run.
	Params    string    `json:"params" db:"params"`
	Accuracy  float64   `json:"accuracy" db:"accuracy"`
	RandIndex float64   `json:"rand_index" db:"rand_index"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
