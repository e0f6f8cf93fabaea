package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreGlobal resets the global logger after a test mutates it
func restoreGlobal(t *testing.T) {
	t.Helper()
	original := L.Logger
	t.Cleanup(func() {
		L = logrus.NewEntry(original)
		original.SetOutput(os.Stderr)
		original.SetLevel(DefaultLevel)
		setLoggerFormat(original, "text")
	})
}

func TestNewLogger(t *testing.T) {
	logger := newLogger()

	assert.Equal(t, DefaultLevel, logger.GetLevel())
	formatter, ok := logger.Formatter.(*logrus.TextFormatter)
	require.True(t, ok)
	assert.Equal(t, time.RFC3339Nano, formatter.TimestampFormat)
	assert.True(t, formatter.FullTimestamp)
}

func TestGetLogger(t *testing.T) {
	t.Run("from context", func(t *testing.T) {
		custom := logrus.NewEntry(logrus.New()).WithField("skill", "writer")
		ctx := WithLogger(context.Background(), custom)

		retrieved := G(ctx)
		assert.Equal(t, "writer", retrieved.Data["skill"])
	})

	t.Run("falls back to global", func(t *testing.T) {
		retrieved := G(context.Background())
		assert.Equal(t, L.Logger, retrieved.Logger)
	})
}

func TestConfigure(t *testing.T) {
	restoreGlobal(t)

	var buf bytes.Buffer
	SetLogOutput(&buf)

	require.NoError(t, Configure("debug", "json"))
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())

	G(context.Background()).WithField("skill", "writer").Debug("disabled skill")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "disabled skill", entry["message"])
	assert.Equal(t, "debug", entry["logLevel"])
	assert.Equal(t, "writer", entry["skill"])
	assert.Contains(t, entry, "timestamp")
}

func TestConfigureKeepsLevelWhenEmpty(t *testing.T) {
	restoreGlobal(t)

	require.NoError(t, SetLogLevel("info"))
	require.NoError(t, Configure("", "text"))
	assert.Equal(t, logrus.InfoLevel, L.Logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, L.Logger.Formatter)
}

func TestConfigureInvalidLevel(t *testing.T) {
	restoreGlobal(t)

	err := Configure("loud", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level 'loud'")
	assert.Equal(t, DefaultLevel, L.Logger.GetLevel())
}

func TestDefaultLevelSuppressesDebug(t *testing.T) {
	restoreGlobal(t)

	var buf bytes.Buffer
	SetLogOutput(&buf)

	G(context.Background()).Debug("hidden")
	G(context.Background()).Info("hidden too")
	assert.Empty(t, buf.String())

	G(context.Background()).Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
