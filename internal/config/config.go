// Package config provides configuration loading and structs for the
// tweet classifier CLI and server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no
// --config flag is given.
const EnvConfigPath = "TWEETCLASSIFIER_CONFIG"

// DefaultConfigFile is the config filename looked up in the working
// directory as the last resort before built-in defaults.
const DefaultConfigFile = "tweetclassifier.yaml"

// Config holds all configuration for the application.
type Config struct {
	Debug    bool            `yaml:"debug"`
	Server   ServerConfig    `yaml:"server"`
	Storage  StorageConfig   `yaml:"storage"`
	Analysis AnalysisConfig  `yaml:"analysis"`
	Datasets []DatasetConfig `yaml:"datasets"`
	Lexicon  LexiconConfig   `yaml:"lexicon"`
	Watch    WatchConfig     `yaml:"watch"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig holds the run-history database path.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// AnalysisConfig holds default parameters for classification and
// clustering runs. Flags and request fields override these.
type AnalysisConfig struct {
	K        int    `yaml:"k"`
	Vote     string `yaml:"vote"`
	Metric   string `yaml:"metric"`
	Method   string `yaml:"method"`
	Clusters int    `yaml:"clusters"`
	// MaxDocuments bounds how many documents a clustering run accepts;
	// the merge loop is cubic in n.
	MaxDocuments int `yaml:"max_documents"`
}

// DatasetConfig names a dataset file so the server and TUI can refer
// to it without a path.
type DatasetConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// LexiconConfig points at custom word-list files. Empty paths use the
// built-in lists.
type LexiconConfig struct {
	PositivePath string `yaml:"positive_path"`
	NegativePath string `yaml:"negative_path"`
}

// WatchConfig holds dataset watch settings.
type WatchConfig struct {
	// DebounceMS collapses bursts of file events into one re-analysis.
	DebounceMS int `yaml:"debounce_ms"`
}

// Load reads and parses the config file at path, applies defaults, and
// expands relative paths. Returns an error if the file cannot be read
// or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	expandPaths(&cfg, filepath.Dir(path))

	return &cfg, nil
}

// Resolve picks the config source in precedence order: the explicit
// flag path, the TWEETCLASSIFIER_CONFIG environment variable, a
// tweetclassifier.yaml in the working directory, and finally built-in
// defaults. The returned source is the file used, empty for defaults.
// Only an explicitly named file that fails to load is an error.
func Resolve(flagPath string) (cfg *Config, source string, err error) {
	if flagPath != "" {
		cfg, err = Load(flagPath)
		return cfg, flagPath, err
	}
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		cfg, err = Load(envPath)
		return cfg, envPath, err
	}
	if _, statErr := os.Stat(DefaultConfigFile); statErr == nil {
		cfg, err = Load(DefaultConfigFile)
		return cfg, DefaultConfigFile, err
	}
	return DefaultConfig(), "", nil
}

// DefaultConfig returns the built-in configuration with paths expanded
// relative to the working directory.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	expandPaths(cfg, ".")
	return cfg
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// DatasetPath looks up a configured dataset by name.
func (c *Config) DatasetPath(name string) (string, bool) {
	for _, ds := range c.Datasets {
		if ds.Name == name {
			return ds.Path, true
		}
	}
	return "", false
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func expandPaths(cfg *Config, configDir string) {
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)
	if cfg.Lexicon.PositivePath != "" {
		cfg.Lexicon.PositivePath = expandPath(cfg.Lexicon.PositivePath, configDir)
	}
	if cfg.Lexicon.NegativePath != "" {
		cfg.Lexicon.NegativePath = expandPath(cfg.Lexicon.NegativePath, configDir)
	}
	for i := range cfg.Datasets {
		cfg.Datasets[i].Path = expandPath(cfg.Datasets[i].Path, configDir)
	}
}

// expandPath converts a path to absolute. Paths starting with "./" are
// relative to configDir; other relative paths are relative to the home
// directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
