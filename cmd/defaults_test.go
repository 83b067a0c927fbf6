package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasty-shawarma/shawarma-sim/sim"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_EmptyPath_ReturnsDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultConfig(), cfg)
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	// GIVEN a file that only shortens the day
	path := writeFile(t, "day_duration_seconds: 30\nmax_queue_length: 6\n")

	// WHEN it is loaded
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	// THEN the named fields change and the rest keep their defaults
	want := sim.DefaultConfig()
	want.DayDurationSeconds = 30
	want.MaxQueueLength = 6
	assert.Equal(t, want, cfg)
}

func TestLoadConfig_EmptyFile_ReturnsDefaults(t *testing.T) {
	cfg, err := loadConfig(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultConfig(), cfg)
}

func TestLoadConfig_UnknownField_Rejected(t *testing.T) {
	_, err := loadConfig(writeFile(t, "day_duraton_seconds: 30\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day_duraton_seconds")
}

func TestLoadConfig_InvalidValue_Rejected(t *testing.T) {
	_, err := loadConfig(writeFile(t, "max_queue_length: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_queue_length")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestWriteDefaults_RoundTripsThroughLoader(t *testing.T) {
	// GIVEN the printed defaults
	var buf bytes.Buffer
	require.NoError(t, writeDefaults(&buf))
	assert.Contains(t, buf.String(), "spawn_interval_floor_ms: 2000")

	// THEN feeding them back through --config is a no-op
	cfg, err := loadConfig(writeFile(t, buf.String()))
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultConfig(), cfg)
}
