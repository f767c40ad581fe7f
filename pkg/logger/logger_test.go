package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Sink(t *testing.T) {
	t.Parallel()
	sink := filepath.Join(t.TempDir(), "shelf.log")
	log := NewLogger(Log{LogLevel: zapcore.InfoLevel, Sink: sink}, "shelf")

	log.Debug("hidden")
	log.Named("repo").Info("loaded", zap.Int("books", 4))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(sink)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &entry))
	require.Equal(t, "INFO", entry["level"])
	require.Equal(t, "shelf.repo", entry["logger"])
	require.Equal(t, "loaded", entry["msg"])
	require.EqualValues(t, 4, entry["books"])
}
