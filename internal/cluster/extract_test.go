package cluster

import (
	"reflect"
	"testing"

	"github.com/HananMiftah/TweetClassifier/internal/distance"
)

func TestExtractTwoTightPairs(t *testing.T) {
	// Dendrogram over 4 documents:
	//   merge 0 (cluster 4): documents 0,1
	//   merge 1 (cluster 5): documents 2,3
	//   merge 2 (cluster 6): clusters 4,5
	merges := []MergeRecord{
		{Left: 0, Right: 1, Distance: 0, Count: 2},
		{Left: 2, Right: 3, Distance: 0, Count: 2},
		{Left: 4, Right: 5, Distance: 1, Count: 4},
	}

	tests := []struct {
		name     string
		k        int
		expected []int
	}{
		// k=4 selects all three merges; the leaf citations in merges
		// 0 and 1 land both pairs, and the root cites no leaves, so
		// only two groups remain.
		{"k=4 collapses to the two pairs", 4, []int{0, 0, 1, 1}},

		// k=3 selects merges 1 and 2: documents 2,3 join cluster 5
		// while 0,1 keep their own stale ids.
		{"k=3 pairs only the cited leaves", 3, []int{0, 1, 2, 2}},

		// k=2 selects only the root, which cites no original
		// documents, so every document keeps its initial id.
		{"k=2 root cites no leaves", 2, []int{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(merges, tt.k, 4)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Extract(k=%d) = %v, want %v", tt.k, got, tt.expected)
			}
		})
	}
}

func TestExtractChain(t *testing.T) {
	// Chained dendrogram over 4 documents:
	//   merge 0 (cluster 4): documents 0,1
	//   merge 1 (cluster 5): cluster 4, document 2
	//   merge 2 (cluster 6): cluster 5, document 3
	merges := []MergeRecord{
		{Left: 0, Right: 1, Distance: 0.1, Count: 2},
		{Left: 4, Right: 2, Distance: 0.4, Count: 3},
		{Left: 5, Right: 3, Distance: 0.9, Count: 4},
	}

	tests := []struct {
		name     string
		k        int
		expected []int
	}{
		// All merges selected: 0,1 -> cluster 4; 2 -> cluster 5;
		// 3 -> cluster 6. Three groups despite k=4.
		{"k=4", 4, []int{0, 0, 1, 2}},

		// Last two merges: documents 2 and 3 are cited directly,
		// documents 0,1 keep stale singleton ids.
		{"k=3", 3, []int{0, 1, 2, 3}},

		// Only the root: document 3 cited, everything else stale.
		{"k=2", 2, []int{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(merges, tt.k, 4)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Extract(k=%d) = %v, want %v", tt.k, got, tt.expected)
			}
		})
	}
}

func TestExtractAssignsDenseIDsInFirstSeenOrder(t *testing.T) {
	// Dendrogram over 3 documents: merge 0 (cluster 3) joins
	// documents 1,2; merge 1 (cluster 4) joins cluster 3 with
	// document 0. Renumbering walks documents in position order, so
	// whatever id document 0 ends up with becomes dense id 0.
	merges := []MergeRecord{
		{Left: 1, Right: 2, Distance: 0.2, Count: 2},
		{Left: 3, Right: 0, Distance: 0.7, Count: 3},
	}

	got := Extract(merges, 2, 3)
	// Only the root is selected: document 0 moves to synthetic id 4,
	// documents 1,2 keep stale ids 1,2. Dense: 4->0, 1->1, 2->2.
	expected := []int{0, 1, 2}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Extract = %v, want %v", got, expected)
	}

	got = Extract(merges, 3, 3)
	// Both merges selected: documents 1,2 land in cluster 3,
	// document 0 in cluster 4. Dense: 4->0, 3->1.
	expected = []int{0, 1, 1}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Extract(k=3) = %v, want %v", got, expected)
	}
}

func TestExtractProperties(t *testing.T) {
	texts := []string{
		"i love this team",
		"i love this squad",
		"refund please now",
		"refund please immediately",
		"the bus is late",
		"the train is late",
	}
	matrix := NewDistanceMatrix(texts, distance.WordOverlapDistance)
	merges := Linkage(matrix, Average)

	for k := 2; k <= len(texts); k++ {
		assignment := Extract(merges, k, len(texts))
		if len(assignment) != len(texts) {
			t.Fatalf("k=%d: assignment length %d, want %d", k, len(assignment), len(texts))
		}

		// Dense renumbering: ids must be 0..k'-1 with every value in
		// between present, in first-seen order.
		seen := make(map[int]bool)
		next := 0
		for _, id := range assignment {
			if id < 0 {
				t.Fatalf("k=%d: negative cluster id %d", k, id)
			}
			if !seen[id] {
				if id != next {
					t.Fatalf("k=%d: ids not dense in first-seen order: %v", k, assignment)
				}
				seen[id] = true
				next++
			}
		}
	}
}

func TestExtractDegenerateInputs(t *testing.T) {
	// Empty dendrogram: every document stays a singleton.
	got := Extract([]MergeRecord{}, 2, 3)
	if !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("Extract with empty dendrogram = %v, want [0 1 2]", got)
	}

	// No documents: empty assignment.
	got = Extract(nil, 2, 0)
	if len(got) != 0 {
		t.Errorf("Extract with n=0 = %v, want empty", got)
	}

	// k larger than the merge history clamps to all merges.
	merges := []MergeRecord{{Left: 0, Right: 1, Distance: 0.5, Count: 2}}
	got = Extract(merges, 10, 2)
	if !reflect.DeepEqual(got, []int{0, 0}) {
		t.Errorf("Extract with oversized k = %v, want [0 0]", got)
	}
}

func TestExtractScenarioPureClusters(t *testing.T) {
	// Two identical positive tweets and one negative tweet: the
	// positives merge at distance 0; cutting at k=2 leaves each
	// document in a pure group (the positives keep stale singleton
	// ids because their merge sits below the cut).
	texts := []string{"i love this", "i love this", "i hate this"}
	matrix := NewDistanceMatrix(texts, distance.WordOverlapDistance)
	merges := Linkage(matrix, Average)

	assignment := Extract(merges, 2, 3)
	if !reflect.DeepEqual(assignment, []int{0, 1, 2}) {
		t.Errorf("Extract = %v, want [0 1 2]", assignment)
	}
}
