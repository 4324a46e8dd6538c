package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NotEmpty(t, cfg.History.Path)

	assert.Equal(t, int64(1<<20), cfg.Scan.DuplicateMinSize)
	assert.Equal(t, 64<<10, cfg.Scan.DigestChunkSize)
	assert.Equal(t, 0, cfg.Scan.DigestWorkers)
	assert.Equal(t, int64(100<<20), cfg.Scan.LargeFileMinSize)
	assert.Equal(t, 365, cfg.Scan.OldFileMinAge)
	assert.Equal(t, 50, cfg.Scan.ResultLimit)
	assert.Equal(t, 20, cfg.Scan.FrequentLimit)
	assert.Equal(t, 10, cfg.Scan.SuggestionLimit)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, int64(1<<20), cfg.Scan.DuplicateMinSize)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	t.Setenv("FILESCOUT_HISTORY_PATH", "/tmp/hist.json")
	t.Setenv("FILESCOUT_DUPLICATE_MIN_SIZE", "2048")
	t.Setenv("FILESCOUT_LARGE_FILE_MIN_SIZE", "4096")
	t.Setenv("FILESCOUT_OLD_FILE_MIN_AGE_DAYS", "30")
	t.Setenv("FILESCOUT_RESULT_LIMIT", "5")
	t.Setenv("FILESCOUT_LOG_LEVEL", "debug")
	t.Setenv("FILESCOUT_LOG_DEV", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/hist.json", cfg.History.Path)
	assert.Equal(t, int64(2048), cfg.Scan.DuplicateMinSize)
	assert.Equal(t, int64(4096), cfg.Scan.LargeFileMinSize)
	assert.Equal(t, 30, cfg.Scan.OldFileMinAge)
	assert.Equal(t, 5, cfg.Scan.ResultLimit)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}
