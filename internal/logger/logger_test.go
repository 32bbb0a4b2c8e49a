package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	log = New(core)
	return logs
}

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, log)
}

func TestConfigure(t *testing.T) {
	require.NoError(t, Configure("production", "info"))
	require.NoError(t, Configure("development", "debug"))
	assert.Error(t, Configure("production", "loud"))
}

func TestInfo(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	Info("test message", "schedule_id", 7)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "test message", entry.Message)
	assert.Equal(t, int64(7), entry.ContextMap()["schedule_id"])
}

func TestError(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	Error("test error")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestDebugFilteredAtInfo(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	Debug("hidden")
	Debugf("hidden %s", "too")

	assert.Equal(t, 0, logs.Len())
}

func TestInfof(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	Infof("test %s", "message")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "test message", logs.All()[0].Message)
}

func TestErrorf(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	Errorf("test %s", "error")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "test error", logs.All()[0].Message)
}

func TestWithError(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	WithError(assert.AnError).Info("test with error")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, assert.AnError.Error(), logs.All()[0].ContextMap()["error"])
}

func TestWithFields(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	WithFields(map[string]interface{}{
		"key1": "value1",
		"key2": 123,
	}).Info("test with fields")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "value1", fields["key1"])
	assert.Equal(t, int64(123), fields["key2"])
}
