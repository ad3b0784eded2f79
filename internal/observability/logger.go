// Package observability wires the structured logger shared by both
// binaries. Builder progress and searcher term-lookup diagnostics
// both flow through it.
package observability

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a console-encoded zap logger at the given level
// name ("debug", "info", "warn", "error"). An unrecognised level falls
// back to info.
func NewLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	cfg.EncoderConfig.TimeKey = "" // batch CLI output; timestamps add noise, not signal

	return cfg.Build()
}

// DebugSearchLevel returns "debug" if DEBUG_SEARCH is set to any
// non-empty value, otherwise fallback. This is the one place that
// environment variable is consulted; everything downstream takes an
// explicit *zap.Logger.
func DebugSearchLevel(debugSearchEnv, fallback string) string {
	if debugSearchEnv != "" {
		return "debug"
	}
	return fallback
}
