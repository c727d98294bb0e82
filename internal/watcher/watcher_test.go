package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestWatcher_ReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tweets.csv")
	writeFile(t, path, "text,label\n")

	var mu sync.Mutex
	var changed []string
	onChange := func(p string) {
		mu.Lock()
		changed = append(changed, p)
		mu.Unlock()
	}

	w := NewWatcher(path, 50*time.Millisecond, onChange, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	writeFile(t, path, "text,label\ngood,positive\n")
	time.Sleep(500 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(changed) < 1 {
		t.Fatalf("expected at least one change callback, got %d", len(changed))
	}
	if filepath.Clean(changed[0]) != filepath.Clean(path) {
		t.Errorf("callback path: got %s, want %s", changed[0], path)
	}
}

func TestWatcher_DebounceCollapsesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tweets.csv")
	writeFile(t, path, "a\n")

	var mu sync.Mutex
	count := 0
	onChange := func(string) {
		mu.Lock()
		count++
		mu.Unlock()
	}

	w := NewWatcher(path, 250*time.Millisecond, onChange, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	for i := 0; i < 3; i++ {
		writeFile(t, path, "a\nb\n")
		time.Sleep(20 * time.Millisecond)
	}
	time.Sleep(700 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != 1 {
		t.Errorf("expected a single debounced callback, got %d", count)
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tweets.csv")
	writeFile(t, path, "a\n")

	var mu sync.Mutex
	count := 0
	onChange := func(string) {
		mu.Lock()
		count++
		mu.Unlock()
	}

	w := NewWatcher(path, 50*time.Millisecond, onChange, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	writeFile(t, filepath.Join(dir, "other.csv"), "unrelated\n")
	time.Sleep(400 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if count != 0 {
		t.Errorf("sibling file change should be ignored, got %d callbacks", count)
	}
}

func TestWatcher_StartMissingFile(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing.csv"), 0, func(string) {}, zap.NewNop())
	if err := w.Start(context.Background()); err == nil {
		t.Error("expected error for missing dataset file")
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tweets.csv")
	writeFile(t, path, "a\n")

	w := NewWatcher(path, 0, func(string) {}, zap.NewNop())
	if err := w.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()
}
