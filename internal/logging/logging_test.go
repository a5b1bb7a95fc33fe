package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/jask/filepanel/internal/config"
)

func TestNewWritesJSONLinesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "panel.log")
	logger, closer, err := New(config.LogConfig{Path: path, Level: "debug"})
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("op", "submit").Info("accepted")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	require.Equal(t, "submit", entry["op"])
	require.Equal(t, "accepted", entry["msg"])
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, closer, err := New(config.LogConfig{Level: "chatty"})
	require.Error(t, err)
	require.NotNil(t, closer)
}

func TestNewWithoutPathDiscards(t *testing.T) {
	t.Parallel()

	logger, closer, err := New(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	logger.Info("dropped")
}
