package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formcheck/infrastructure/config"
)

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "debug"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	logger.WithField("scenario", "submit-escape").Debug("step started")
	assert.Contains(t, buf.String(), "step started")
	assert.Contains(t, buf.String(), "scenario=submit-escape")
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.WithField("run_id", "abc").Info("step passed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "step passed", entry["msg"])
	assert.Equal(t, "abc", entry["run_id"])
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	logger, _, err := New(config.LogConfig{Level: "chatty"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestUnknownFormat(t *testing.T) {
	_, _, err := New(config.LogConfig{Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "formcheck.log")
	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "info", File: path, MaxSizeMB: 1}, &buf)
	require.NoError(t, err)

	logger.Warn("attachment captured")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "attachment captured")
	assert.Contains(t, buf.String(), "attachment captured")
}
