// File: logger_test.go
// Title: Logger Tests
// Description: Tests for logger configuration, context copies, level
//              filtering, formatters and structured error logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive logger tests
// - 2025-10-14 v0.2.0: Merged level and formatter tests into this file

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	szerror "github.com/msto63/stringz/foundation/core/error"
)

func newTestLogger(buf *bytes.Buffer, format Format) *Logger {
	return NewWithConfig(Config{
		Level:  LevelTrace,
		Format: format,
		Output: buf,
		Name:   "test",
	})
}

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}

	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	})

	if logger.GetLevel() != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.GetLevel(), LevelError)
	}

	if logger.Name() != "test-logger" {
		t.Errorf("NewWithConfig() name = %v, want test-logger", logger.Name())
	}

	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLoggerWithLevel(t *testing.T) {
	logger := New()
	newLogger := logger.WithLevel(LevelDebug)

	if newLogger == logger {
		t.Error("WithLevel() should return a new logger instance")
	}

	if newLogger.GetLevel() != LevelDebug {
		t.Errorf("WithLevel() level = %v, want %v", newLogger.GetLevel(), LevelDebug)
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
}

func TestWithFieldDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, FormatLogfmt)
	child := base.WithField("component", "registry")

	base.Info("from base")
	if strings.Contains(buf.String(), "component=") {
		t.Errorf("base logger picked up child field: %s", buf.String())
	}

	buf.Reset()
	child.Info("from child")
	if !strings.Contains(buf.String(), `component="registry"`) {
		t.Errorf("child logger missing field: %s", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, FormatText).WithLevel(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below warn were written: %s", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 lines, got: %q", out)
	}
}

func TestLevelOffSilences(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, FormatText).WithLevel(LevelOff)
	logger.Error("nothing")
	if buf.Len() != 0 {
		t.Errorf("LevelOff logger wrote %q", buf.String())
	}

	Discard().Error("nothing")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, FormatJSON).WithCorrelationID("run-1")

	logger.Info("installed", Field("method", "fmt"))

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	want := map[string]interface{}{
		"level":          "info",
		"message":        "installed",
		"logger":         "test",
		"correlation_id": "run-1",
		"method":         "fmt",
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("%s = %v, want %v", k, data[k], v)
		}
	}
}

func TestConsoleFormatAlignsName(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true
	f.DisableTimestamp = true
	f.NameWidth = 6

	tests := []struct {
		name string
		want string
	}{
		{"cli", "[INF] {cli   } hello\n"},
		{"registry", "[INF] {regist} hello\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := NewEntry(LevelInfo, "hello")
			entry.Logger = tt.name
			out, err := f.Format(entry)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if string(out) != tt.want {
				t.Errorf("Format() = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestTextFormatSortsFields(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true

	entry := NewEntry(LevelWarn, "skipped")
	entry.Fields = Fields{"b": 2, "a": 1}

	out, _ := f.Format(entry)
	if string(out) != "[WRN] skipped [a=1 b=2]\n" {
		t.Errorf("Format() = %q", out)
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"low severity", szerror.New("bad size").WithCode(szerror.CodeInvalidArgument), "info"},
		{"medium severity", szerror.New("odd"), "warn"},
		{"high severity", szerror.New("broken config").WithCode(szerror.CodeConfigError), "error"},
		{"plain error", errors.New("plain"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTestLogger(&buf, FormatJSON).LogError(tt.err)

			var data map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
				t.Fatalf("invalid JSON %q: %v", buf.String(), err)
			}
			if data["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", data["level"], tt.wantLevel)
			}
		})
	}

	var buf bytes.Buffer
	newTestLogger(&buf, FormatJSON).LogError(nil)
	if buf.Len() != 0 {
		t.Error("LogError(nil) should write nothing")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARNING ", LevelWarn, false},
		{"off", LevelOff, false},
		{"err", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"Console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
