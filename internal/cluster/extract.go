package cluster

// Extract cuts a dendrogram over n original documents into a flat
// assignment of roughly k clusters. Intended for 2 <= k <= n.
//
// Every document starts assigned to its own index. The last k-1
// merges (the ones closest to the root) are then replayed: whenever
// such a merge cites an original document directly, that document is
// reassigned to the merge's synthetic index. Children that are
// themselves earlier merges are not expanded, so a document absorbed
// into a subtree below the cut keeps its own stale id unless the
// subtree's root merge is among the selected ones. The resulting ids
// are renumbered densely from 0 in first-seen document order; the
// number of distinct clusters can therefore differ from k in both
// directions. This granularity quirk is long-standing observed
// behavior and downstream evaluation depends on it staying stable.
func Extract(merges []MergeRecord, k, n int) []int {
	assignment := make([]int, n)
	for i := range assignment {
		assignment[i] = i
	}
	if n == 0 {
		return assignment
	}

	take := k - 1
	if take > len(merges) {
		take = len(merges)
	}
	if take < 0 {
		take = 0
	}

	for pos := len(merges) - take; pos < len(merges); pos++ {
		m := merges[pos]
		clusterID := n + pos
		if m.Left < n {
			assignment[m.Left] = clusterID
		}
		if m.Right < n {
			assignment[m.Right] = clusterID
		}
	}

	return renumber(assignment)
}

// renumber maps arbitrary cluster ids onto a dense 0..k'-1 range in
// first-seen order.
func renumber(assignment []int) []int {
	dense := make(map[int]int, len(assignment))
	result := make([]int, len(assignment))
	next := 0
	for i, a := range assignment {
		mapped, ok := dense[a]
		if !ok {
			mapped = next
			dense[a] = mapped
			next++
		}
		result[i] = mapped
	}
	return result
}
