// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields, formats and the
//              severity mapping of LogError.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf, Name: "test"}), &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"verbose", LevelInfo, true},
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

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	logger.Warn("visible")
	if !strings.Contains(buf.String(), "[WRN]") || !strings.Contains(buf.String(), "visible") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestWithMethodsDoNotMutate(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo, FormatJSON)
	child := base.WithField("calendar", "hebrew").WithCorrelationID("cid-1")

	base.Info("base")
	child.Info("child")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var first, second map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}
	if _, ok := first["calendar"]; ok {
		t.Error("base logger picked up child field")
	}
	if second["calendar"] != "hebrew" || second["correlation_id"] != "cid-1" {
		t.Errorf("child entry = %v", second)
	}
}

func TestFormats(t *testing.T) {
	tests := []struct {
		format Format
		want   []string
	}{
		{FormatJSON, []string{`"message":"hello"`, `"year":5785`}},
		{FormatText, []string{"[INF]", "{test}", "hello", "[year=5785]"}},
		{FormatLogfmt, []string{`message="hello"`, "level=info", "year=5785"}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			logger, buf := newBufferLogger(LevelInfo, tt.format)
			logger.Info("hello", Field("year", 5785))
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output %q missing %q", buf.String(), w)
				}
			}
		})
	}
}

func TestLogErrorSeverity(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatLogfmt)

	logger.LogError(mdwerror.New("bad month").WithCode(mdwerror.CodeOutOfBounds))
	if !strings.Contains(buf.String(), "level=info") || !strings.Contains(buf.String(), "error_category=\"range\"") {
		t.Errorf("range error output = %q", buf.String())
	}

	buf.Reset()
	logger.LogError(errors.New("plain"))
	if !strings.Contains(buf.String(), "level=error") {
		t.Errorf("plain error output = %q", buf.String())
	}

	buf.Reset()
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("nil error must not log")
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatLogfmt)

	timer := logger.StartTimer("yearData").WithField("calendar", "persian")
	timer.Stop()
	if got := timer.Stop(); got != 0 {
		t.Errorf("second Stop() = %v, want 0", got)
	}

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected one line, got %q", out)
	}
	for _, w := range []string{"yearData completed", `operation="yearData"`, `calendar="persian"`, "duration_ms="} {
		if !strings.Contains(out, w) {
			t.Errorf("timer output %q missing %q", out, w)
		}
	}
}

func TestNilAndDiscardLoggers(t *testing.T) {
	var nilLogger *Logger
	nilLogger.Debug("no panic")
	if nilLogger.IsLevelEnabled(LevelError) {
		t.Error("nil logger must report disabled")
	}

	d := Discard()
	if d.IsLevelEnabled(LevelError) {
		t.Error("discard logger must drop errors")
	}
}
