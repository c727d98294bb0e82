package cluster

import (
	"testing"

	"github.com/HananMiftah/TweetClassifier/internal/distance"
)

func TestNewDistanceMatrix(t *testing.T) {
	texts := []string{"i love this", "i hate this", "i love this"}
	matrix := NewDistanceMatrix(texts, distance.WordOverlapDistance)

	if len(matrix) != 3 {
		t.Fatalf("matrix has %d rows, want 3", len(matrix))
	}
	for i, row := range matrix {
		if len(row) != 3 {
			t.Fatalf("row %d has %d columns, want 3", i, len(row))
		}
	}

	// Zero diagonal
	for i := range matrix {
		if matrix[i][i] != 0 {
			t.Errorf("matrix[%d][%d] = %v, want 0", i, i, matrix[i][i])
		}
	}

	// Symmetric off-diagonal values
	for i := range matrix {
		for j := range matrix {
			if matrix[i][j] != matrix[j][i] {
				t.Errorf("matrix[%d][%d] = %v but matrix[%d][%d] = %v",
					i, j, matrix[i][j], j, i, matrix[j][i])
			}
		}
	}

	// Known values: shared {i, this} of union size 4 -> 0.5
	if matrix[0][1] != 0.5 {
		t.Errorf("matrix[0][1] = %v, want 0.5", matrix[0][1])
	}
	if matrix[0][2] != 0 {
		t.Errorf("matrix[0][2] = %v, want 0 (identical documents)", matrix[0][2])
	}
}

func TestNewDistanceMatrixEmpty(t *testing.T) {
	matrix := NewDistanceMatrix(nil, distance.WordOverlapDistance)
	if len(matrix) != 0 {
		t.Errorf("matrix over no documents has %d rows, want 0", len(matrix))
	}

	matrix = NewDistanceMatrix([]string{"solo"}, distance.WordOverlapDistance)
	if len(matrix) != 1 || matrix[0][0] != 0 {
		t.Errorf("single-document matrix = %v, want [[0]]", matrix)
	}
}
