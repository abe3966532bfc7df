package internal

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"ERROR": LogLevelError,
		"warn":  LogLevelWarn,
		"":      LogLevelInfo,
		"bogus": LogLevelInfo,
		"DEBUG": LogLevelDebug,
		"trace": LogLevelTrace,
	}
	for input, want := range tests {
		if got := ParseLogLevel(input); got != want {
			t.Errorf("ParseLogLevel(%q) = %d, want %d", input, got, want)
		}
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := &Logger{level: LogLevelWarn, sugar: zap.New(core).Sugar()}

	logger.Debug("hidden %d", 1)
	logger.Info("hidden %d", 2)
	logger.Warn("shown %d", 3)
	logger.Error("shown %d", 4)

	if logs.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", logs.Len())
	}
	if msg := logs.All()[0].Message; msg != "shown 3" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestLoggerWithAddsContext(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := (&Logger{level: LogLevelDebug, sugar: zap.New(core).Sugar()}).With("run_id", "abc")

	logger.Debug("resampling")
	entry := logs.All()[0]
	if entry.ContextMap()["run_id"] != "abc" {
		t.Errorf("Expected run_id context, got %v", entry.ContextMap())
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Error("discarded")
	if logger.GetLevel() != LogLevelError {
		t.Errorf("unexpected level %d", logger.GetLevel())
	}
}
