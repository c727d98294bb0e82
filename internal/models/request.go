package models

import (
	"fmt"
	"strings"
)

// Defaults applied by Validate when a request leaves a field unset.
const (
	DefaultK        = 3
	DefaultClusters = 3
	DefaultVote     = "majority"
	DefaultMethod   = "average"
	DefaultMetric   = "default"
	MaxK            = 100
)

// ClassifyRequest asks for a prediction of one query text against a
// labeled dataset.
type ClassifyRequest struct {
	Query   string `json:"query"`
	Dataset string `json:"dataset,omitempty"`
	K       int    `json:"k,omitempty"`
	Vote    string `json:"vote,omitempty"`
	Metric  string `json:"metric,omitempty"`
}

// ApplyDefaults fills unset parameter fields. Unrecognized vote or
// metric names are left alone; the classifier falls back silently.
func (r *ClassifyRequest) ApplyDefaults() {
	if r.K <= 0 {
		r.K = DefaultK
	}
	if r.K > MaxK {
		r.K = MaxK
	}
	if r.Vote == "" {
		r.Vote = DefaultVote
	}
	if r.Metric == "" {
		r.Metric = DefaultMetric
	}
}

// Validate ensures the request has a query and fills in defaults.
func (r *ClassifyRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return fmt.Errorf("query cannot be empty")
	}
	r.ApplyDefaults()
	return nil
}

// ClusterRequest asks for a clustering run over a named dataset or
// inline documents.
type ClusterRequest struct {
	Dataset   string          `json:"dataset,omitempty"`
	Documents []DocumentInput `json:"documents,omitempty"`
	Method    string          `json:"method,omitempty"`
	Metric    string          `json:"metric,omitempty"`
	Clusters  int             `json:"clusters,omitempty"`
}

// ApplyDefaults fills unset parameter fields.
func (r *ClusterRequest) ApplyDefaults() {
	if r.Clusters <= 0 {
		r.Clusters = DefaultClusters
	}
	if r.Method == "" {
		r.Method = DefaultMethod
	}
	if r.Metric == "" {
		r.Metric = DefaultMetric
	}
}

// Validate ensures the request names a dataset or carries non-empty
// inline documents, then fills in defaults.
func (r *ClusterRequest) Validate() error {
	if r.Dataset == "" && len(r.Documents) == 0 {
		return fmt.Errorf("dataset name or inline documents required")
	}
	for i, doc := range r.Documents {
		if strings.TrimSpace(doc.Text) == "" {
			return fmt.Errorf("document %d: text cannot be empty", i)
		}
	}
	r.ApplyDefaults()
	return nil
}
