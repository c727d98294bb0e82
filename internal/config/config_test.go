package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: "127.0.0.1"
  port: 9000
storage:
  database_path: "./runs.db"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
	if cfg.Analysis.K != 3 || cfg.Analysis.Metric != "default" {
		t.Errorf("analysis defaults not applied: %+v", cfg.Analysis)
	}
}

func TestLoad_debugTrue(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  host: "localhost"
  port: 8080
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Debug {
		t.Error("debug should be true when set in config")
	}
}

func TestLoad_expandPathDotSlashRelativeToConfigDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
storage:
  database_path: "./data/runs.db"
datasets:
  - name: sample
    path: "./data/sample.csv"
lexicon:
  positive_path: "./words/pos.txt"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	wantDB := filepath.Join(dir, "data", "runs.db")
	if cfg.Storage.DatabasePath != wantDB {
		t.Errorf("database_path = %s, want %s", cfg.Storage.DatabasePath, wantDB)
	}
	if len(cfg.Datasets) != 1 {
		t.Fatalf("datasets: got %d", len(cfg.Datasets))
	}
	wantDS := filepath.Join(dir, "data", "sample.csv")
	if cfg.Datasets[0].Path != wantDS {
		t.Errorf("dataset path = %s, want %s", cfg.Datasets[0].Path, wantDS)
	}
	wantPos := filepath.Join(dir, "words", "pos.txt")
	if cfg.Lexicon.PositivePath != wantPos {
		t.Errorf("lexicon positive_path = %s, want %s", cfg.Lexicon.PositivePath, wantPos)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	if cfg.Server.Host != "localhost" {
		t.Errorf("default host: got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port: got %d", cfg.Server.Port)
	}
	if cfg.Analysis.K != 3 {
		t.Errorf("default k: got %d", cfg.Analysis.K)
	}
	if cfg.Analysis.Vote != "majority" || cfg.Analysis.Method != "average" {
		t.Errorf("analysis defaults: %+v", cfg.Analysis)
	}
	if cfg.Analysis.MaxDocuments != 2000 {
		t.Errorf("default max_documents: got %d", cfg.Analysis.MaxDocuments)
	}
	if cfg.Watch.DebounceMS != 500 {
		t.Errorf("default debounce_ms: got %d", cfg.Watch.DebounceMS)
	}
	if cfg.Lexicon.PositivePath != "" {
		t.Errorf("lexicon paths should stay empty by default, got %s", cfg.Lexicon.PositivePath)
	}
}

func TestResolve_flagBeatsEnv(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flag.yaml")
	envPath := filepath.Join(dir, "env.yaml")
	if err := os.WriteFile(flagPath, []byte("server:\n  port: 9001\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(envPath, []byte("server:\n  port: 9002\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, envPath)

	cfg, source, err := Resolve(flagPath)
	if err != nil {
		t.Fatal(err)
	}
	if source != flagPath {
		t.Errorf("source = %s, want %s", source, flagPath)
	}
	if cfg.Server.Port != 9001 {
		t.Errorf("port = %d, want 9001", cfg.Server.Port)
	}
}

func TestResolve_env(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "env.yaml")
	if err := os.WriteFile(envPath, []byte("server:\n  port: 9002\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, envPath)

	cfg, source, err := Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if source != envPath {
		t.Errorf("source = %s, want %s", source, envPath)
	}
	if cfg.Server.Port != 9002 {
		t.Errorf("port = %d, want 9002", cfg.Server.Port)
	}
}

func TestResolve_defaultsWhenNothingFound(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if source != "" {
		t.Errorf("source = %q, want empty", source)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want default 8080", cfg.Server.Port)
	}
}

func TestResolve_missingFlagFileIsError(t *testing.T) {
	_, _, err := Resolve(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestDatasetPath(t *testing.T) {
	cfg := &Config{Datasets: []DatasetConfig{{Name: "tweets", Path: "/data/tweets.csv"}}}
	if path, ok := cfg.DatasetPath("tweets"); !ok || path != "/data/tweets.csv" {
		t.Errorf("DatasetPath(tweets) = %q, %v", path, ok)
	}
	if _, ok := cfg.DatasetPath("missing"); ok {
		t.Error("DatasetPath(missing) should report not found")
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Host: "0.0.0.0", Port: 9999}}
	if got := cfg.Addr(); got != "0.0.0.0:9999" {
		t.Errorf("Addr() = %s", got)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "saved.yaml")
	cfg := &Config{
		Server:  ServerConfig{Host: "localhost", Port: 9090},
		Storage: StorageConfig{DatabasePath: "/tmp/runs.db"},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("loaded port: got %d", loaded.Server.Port)
	}
}
