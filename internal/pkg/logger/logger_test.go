package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Development(t *testing.T) {
	l := NewLogger("development", "")
	require.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_Production(t *testing.T) {
	l := NewLogger("production", "")
	require.NotNil(t, l)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestNewLogger_WithLogLevel(t *testing.T) {
	l := NewLogger("production", "debug")
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l = NewLogger("development", "warn")
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestNewLogger_WithInvalidLogLevel(t *testing.T) {
	// 無効なレベルでも既定レベルで動作する
	l := NewLogger("production", "invalid_level")
	require.NotNil(t, l)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestInit(t *testing.T) {
	original := Get()
	defer Set(original)

	l := Init("production", "error")
	assert.Same(t, l, Get())
	assert.False(t, Get().Core().Enabled(zapcore.WarnLevel))
}

func TestSet(t *testing.T) {
	original := Get()
	defer Set(original)

	newLogger := zap.NewNop()
	Set(newLogger)

	assert.Equal(t, newLogger, Get())
}

func TestPackageFunctions_WriteToCurrentLogger(t *testing.T) {
	original := Get()
	defer Set(original)

	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))

	Debug("debug message")
	Info("info message", zap.String("key", "value"))
	Warn("warn message")
	Error("error message", zap.Int("status", 500))
	Named("rsvp").Info("named message")
	With(zap.String("request_id", "abc")).Info("with message")

	entries := logs.AllUntimed()
	require.Len(t, entries, 6)
	assert.Equal(t, "debug message", entries[0].Message)
	assert.Equal(t, "value", entries[1].ContextMap()["key"])
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, int64(500), entries[3].ContextMap()["status"])
	assert.Equal(t, "rsvp", entries[4].LoggerName)
	assert.Equal(t, "abc", entries[5].ContextMap()["request_id"])
}

func TestSync(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = Sync()
	})
}
