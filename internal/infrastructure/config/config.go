// Package config loads filescout configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	History HistoryConfig
	Scan    ScanConfig
	Logging LogConfig
}

// HistoryConfig holds access history store configuration.
type HistoryConfig struct {
	Path string `envconfig:"HISTORY_PATH"`
}

// ScanConfig holds scan thresholds and limits.
type ScanConfig struct {
	DuplicateMinSize int64 `envconfig:"DUPLICATE_MIN_SIZE" default:"1048576"`
	DigestChunkSize  int   `envconfig:"DIGEST_CHUNK_SIZE" default:"65536"`
	DigestWorkers    int   `envconfig:"DIGEST_WORKERS" default:"0"`
	LargeFileMinSize int64 `envconfig:"LARGE_FILE_MIN_SIZE" default:"104857600"`
	OldFileMinAge    int   `envconfig:"OLD_FILE_MIN_AGE_DAYS" default:"365"`
	ResultLimit      int   `envconfig:"RESULT_LIMIT" default:"50"`
	FrequentLimit    int   `envconfig:"FREQUENT_LIMIT" default:"20"`
	SuggestionLimit  int   `envconfig:"SUGGESTION_LIMIT" default:"10"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from FILESCOUT_-prefixed environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("filescout", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.History.Path == "" {
		cfg.History.Path = defaultHistoryPath()
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		History: HistoryConfig{
			Path: defaultHistoryPath(),
		},
		Scan: ScanConfig{
			DuplicateMinSize: 1 << 20,
			DigestChunkSize:  64 << 10,
			DigestWorkers:    0,
			LargeFileMinSize: 100 << 20,
			OldFileMinAge:    365,
			ResultLimit:      50,
			FrequentLimit:    20,
			SuggestionLimit:  10,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}

// defaultHistoryPath places the history document under the user config
// directory, falling back to the working directory when it is unknown.
func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "filescout_history.json"
	}
	return filepath.Join(dir, "filescout", "history.json")
}
