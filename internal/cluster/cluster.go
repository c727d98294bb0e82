// Package cluster implements agglomerative hierarchical clustering
// over pairwise document distances, plus flat-cluster extraction from
// the resulting dendrogram. The engine is pure and deterministic:
// the same matrix, linkage method, and document order always produce
// the same merge history.
package cluster

// Method selects the linkage rule used to recompute inter-cluster
// distances after each merge.
type Method string

const (
	// Average recomputes distances as the size-weighted mean of the
	// two merged clusters' distances.
	Average Method = "average"
	// Complete keeps the larger of the two merged clusters' distances.
	Complete Method = "complete"
	// Ward applies the Lance-Williams Ward recurrence directly to the
	// input dissimilarities. On non-Euclidean input the merge
	// distances are not guaranteed to be monotonic.
	Ward Method = "ward"
)

// Methods lists the supported linkage methods in presentation order.
func Methods() []Method {
	return []Method{Average, Complete, Ward}
}

// ParseMethod maps a configuration string onto a linkage method.
// Unrecognized names fall back to average linkage rather than failing
// the run.
func ParseMethod(name string) Method {
	switch Method(name) {
	case Complete:
		return Complete
	case Ward:
		return Ward
	default:
		return Average
	}
}

// MergeRecord is one merge event in a dendrogram. Left and Right
// index an extended space: values below n refer to original
// documents, and n+m refers to the cluster created by the m-th merge
// (0-based, chronological). Count is the number of original documents
// subsumed by the new cluster. Distance is the linkage distance at
// which the merge occurred.
type MergeRecord struct {
	Left     int     `json:"left"`
	Right    int     `json:"right"`
	Distance float64 `json:"distance"`
	Count    int     `json:"count"`
}
