package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/msto63/chronos/foundation/core/log"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LoggerConfig
		wantLevel mdwlog.Level
	}{
		{"defaults", DefaultLoggerConfig("chronos"), mdwlog.LevelInfo},
		{"debug", LoggerConfig{Name: "chronos", Level: "debug"}, mdwlog.LevelDebug},
		{"unknown level", LoggerConfig{Name: "chronos", Level: "loud"}, mdwlog.LevelInfo},
		{"warning alias", LoggerConfig{Name: "chronos", Level: "warning"}, mdwlog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.cfg)
			if logger.GetLevel() != tt.wantLevel {
				t.Errorf("GetLevel() = %v, want %v", logger.GetLevel(), tt.wantLevel)
			}
		})
	}
}

func TestNewLogger_OutputAndCorrelation(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:              "cli",
		Level:             "info",
		Format:            "logfmt",
		CorrelationID:     "abc-123",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("resolved", mdwlog.Field("zone", "Europe/Berlin"))

	for _, buf := range []*bytes.Buffer{&primary, &extra} {
		out := buf.String()
		if !strings.Contains(out, "correlation_id=abc-123") {
			t.Errorf("output %q missing correlation id", out)
		}
		if !strings.Contains(out, `zone="Europe/Berlin"`) {
			t.Errorf("output %q missing field", out)
		}
	}
}
