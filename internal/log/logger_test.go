package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/holocron-dev/holocron/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogFormatJSON, "INFO")
	logger.Info("hello", slog.Int("id", 7))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if record["msg"] != "hello" {
		t.Errorf("msg = %v", record["msg"])
	}
	if record["id"] != float64(7) {
		t.Errorf("id = %v", record["id"])
	}
}

func TestNew_PrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogFormatPretty, "INFO")
	logger.Info("hello")

	out := stripANSI(buf.String())
	if !strings.Contains(out, "INFO") || !strings.Contains(out, "hello") {
		t.Errorf("unexpected pretty output: %q", out)
	}
	if json.Valid(buf.Bytes()) {
		t.Error("pretty format produced JSON")
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogFormatJSON, "ERROR")

	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	if buf.Len() != 0 {
		t.Errorf("records below error leaked: %s", buf.String())
	}

	logger.Error("e")
	if buf.Len() == 0 {
		t.Error("error record not written")
	}
}
