package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    LogLevel
		expected zerolog.Level
	}{
		{LevelDebug, zerolog.DebugLevel},
		{LevelInfo, zerolog.InfoLevel},
		{LevelWarn, zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{LevelError, zerolog.ErrorLevel},
		{"garbage", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewLogger_ComponentField(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{Level: LevelInfo, Output: buf})

	logger := NewLogger("lcw-service")
	logger.Info().Str("symbol", "BTC").Msg("Fetched and cached coin")

	out := buf.String()
	if !strings.Contains(out, `"component":"lcw-service"`) {
		t.Errorf("output missing component field: %q", out)
	}
	if !strings.Contains(out, `"symbol":"BTC"`) {
		t.Errorf("output missing context field: %q", out)
	}
}

func TestSetup_LevelFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	Setup(Config{Level: LevelWarn, Output: buf})

	logger := NewLogger("test")
	logger.Debug().Msg("cache hit")
	logger.Info().Msg("fetched")
	logger.Warn().Msg("cache set error")

	out := buf.String()
	if strings.Contains(out, "cache hit") || strings.Contains(out, "fetched") {
		t.Errorf("below-threshold messages leaked: %q", out)
	}
	if !strings.Contains(out, "cache set error") {
		t.Errorf("warn message missing: %q", out)
	}
}
