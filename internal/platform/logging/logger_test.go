package logging

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/janisto/profile-gallery/internal/platform/timeutil"
)

// captureLogOutput captures a single log entry emitted by logFn and returns it as a map.
func captureLogOutput(t *testing.T, logFn func(*zap.Logger)) map[string]any {
	t.Helper()

	resetLoggerForTest()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	defer func() { _ = r.Close() }()

	origStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = origStdout }()

	logger := Logger()
	logFn(logger)
	_ = logger.Sync()

	if closeErr := w.Close(); closeErr != nil {
		t.Fatalf("failed to close writer: %v", closeErr)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read log output: %v", err)
	}

	line := strings.TrimSpace(string(data))
	if line == "" {
		t.Fatalf("expected log output, got empty string")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("failed to unmarshal log JSON: %v", err)
	}
	return payload
}

// resetLoggerForTest clears the singleton state so tests can capture fresh log output.
func resetLoggerForTest() {
	loggerOnce = sync.Once{}
	baseLogger = nil
	sugarLogger = nil
	loggerErr = nil
	atomicLevel.SetLevel(zapcore.InfoLevel)
}

type captureArrayEncoder struct {
	zapcore.PrimitiveArrayEncoder
	values []string
}

func (c *captureArrayEncoder) AppendString(v string) {
	c.values = append(c.values, v)
}

func TestLoggerStructuredOutput(t *testing.T) {
	payload := captureLogOutput(t, func(l *zap.Logger) {
		l.Info("profiles loaded")
	})

	if got := payload["severity"]; got != "INFO" {
		t.Fatalf("expected severity INFO, got %v", got)
	}
	if _, exists := payload["level"]; exists {
		t.Fatalf("did not expect level field")
	}
	if msg, ok := payload["message"].(string); !ok || msg != "profiles loaded" {
		t.Fatalf("expected message 'profiles loaded', got %v", payload["message"])
	}
	ts, ok := payload["timestamp"].(string)
	if !ok {
		t.Fatalf("expected timestamp field to be a string, got %T", payload["timestamp"])
	}
	if _, err := time.Parse(timeutil.RFC3339Micros, ts); err != nil {
		t.Fatalf("timestamp is not RFC3339Micros: %v", err)
	}
}

func TestSetLevelEnablesDebug(t *testing.T) {
	payload := captureLogOutput(t, func(l *zap.Logger) {
		SetLevel("debug")
		l.Debug("debug enabled")
	})

	if got := payload["severity"]; got != "DEBUG" {
		t.Fatalf("expected severity DEBUG, got %v", got)
	}
}

func TestSetLevelUnknownFallsBackToInfo(t *testing.T) {
	resetLoggerForTest()
	SetLevel("chatty")
	if atomicLevel.Level() != zapcore.InfoLevel {
		t.Fatalf("expected info level, got %s", atomicLevel.Level())
	}
	SetLevel("ERROR")
	if atomicLevel.Level() != zapcore.ErrorLevel {
		t.Fatalf("expected error level, got %s", atomicLevel.Level())
	}
	resetLoggerForTest()
}

func TestEncodeSeverityMapping(t *testing.T) {
	tests := []struct {
		level    zapcore.Level
		expected string
	}{
		{zapcore.DebugLevel, "DEBUG"},
		{zapcore.InfoLevel, "INFO"},
		{zapcore.WarnLevel, "WARNING"},
		{zapcore.ErrorLevel, "ERROR"},
		{zapcore.DPanicLevel, "CRITICAL"},
		{zapcore.PanicLevel, "ALERT"},
		{zapcore.FatalLevel, "EMERGENCY"},
		{zapcore.Level(99), "DEFAULT"},
	}

	for _, tt := range tests {
		enc := &captureArrayEncoder{}
		encodeSeverity(tt.level, enc)
		if len(enc.values) != 1 || enc.values[0] != tt.expected {
			t.Fatalf("encodeSeverity(%v) = %v, want %s", tt.level, enc.values, tt.expected)
		}
	}
}

func TestLoggerSingletonBehavior(t *testing.T) {
	resetLoggerForTest()

	if Logger() != Logger() {
		t.Fatal("expected Logger() to return the same instance")
	}
	if Sugar().Desugar().Core() != Logger().Core() {
		t.Fatal("expected Logger and Sugar to share the same core")
	}
	if err := Err(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
