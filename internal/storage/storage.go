// Package storage persists the history of analysis runs.
package storage

import (
	"context"
	"errors"

	"github.com/HananMiftah/TweetClassifier/internal/models"
)

// ErrRunNotFound is returned when a run id has no stored row.
var ErrRunNotFound = errors.New("run not found")

// Store defines run-history persistence operations.
type Store interface {
	SaveRun(ctx context.Context, run *models.Run) error
	GetRun(ctx context.Context, id string) (*models.Run, error)
	// ListRuns returns the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]*models.Run, error)
	CountRuns(ctx context.Context) (int64, error)

	Close() error
}
