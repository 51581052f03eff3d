package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/disgo/pkg/config"
)

func TestBuildJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := build("disctl", config.Logging{Level: "debug"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug().Int("pdus", 3).Msg("decoded")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "debug", event["level"])
	assert.Equal(t, "disctl", event["app"])
	assert.Equal(t, "decoded", event["message"])
	assert.Equal(t, float64(3), event["pdus"])
}

func TestBuildLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := build("disctl", config.Logging{Level: "WARN"}, &buf)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestBuildDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := build("disctl", config.Logging{}, &buf)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestBuildConsoleWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := build("disctl", config.Logging{Level: "info", Console: true}, &buf)
	require.NoError(t, err)

	logger.Info().Msg("listening")
	assert.Contains(t, buf.String(), "listening")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestBuildInvalidLevel(t *testing.T) {
	_, _, err := build("disctl", config.Logging{Level: "chatty"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestBuildRotatingFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "logging_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	logFile := filepath.Join(tmpDir, "logs", "disctl.log")
	logger, closer, err := build("disctl", config.Logging{
		Level:      "info",
		File:       logFile,
		MaxSizeMB:  1,
		MaxBackups: 1,
	}, &bytes.Buffer{})
	require.NoError(t, err)

	logger.Info().Str("path", "capture.dis").Msg("replay started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "replay started")
}
