package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "./tweetclassifier.db"
	}
	if cfg.Analysis.K == 0 {
		cfg.Analysis.K = 3
	}
	if cfg.Analysis.Vote == "" {
		cfg.Analysis.Vote = "majority"
	}
	if cfg.Analysis.Metric == "" {
		cfg.Analysis.Metric = "default"
	}
	if cfg.Analysis.Method == "" {
		cfg.Analysis.Method = "average"
	}
	if cfg.Analysis.Clusters == 0 {
		cfg.Analysis.Clusters = 3
	}
	if cfg.Analysis.MaxDocuments == 0 {
		cfg.Analysis.MaxDocuments = 2000
	}
	if cfg.Watch.DebounceMS == 0 {
		cfg.Watch.DebounceMS = 500
	}
}
