package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerValidLevel(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLoggerUnrecognisedLevelFallsBackToInfo(t *testing.T) {
	logger, err := NewLogger("not-a-level")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNewLoggerIsCaseInsensitive(t *testing.T) {
	logger, err := NewLogger("WARN")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))
}

func TestDebugSearchLevel(t *testing.T) {
	assert.Equal(t, "debug", DebugSearchLevel("1", "info"))
	assert.Equal(t, "debug", DebugSearchLevel("anything", "warn"))
	assert.Equal(t, "info", DebugSearchLevel("", "info"))
}
