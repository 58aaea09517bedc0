package log

import (
	"bytes"
	"log/slog"
	"regexp"
	"strings"
	"testing"
)

// stripANSI removes color escapes so assertions can match plain text.
var ansiPattern = regexp.MustCompile(`\033\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func consoleLine(t *testing.T, level slog.Leveler, fn func(*slog.Logger)) string {
	t.Helper()
	var buf bytes.Buffer
	fn(slog.New(NewConsoleHandler(&buf, level)))
	return stripANSI(buf.String())
}

func TestConsoleHandler_LineFormat(t *testing.T) {
	line := consoleLine(t, slog.LevelInfo, func(l *slog.Logger) {
		l.Info("server started", slog.String("addr", "0.0.0.0:8080"))
	})

	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2} INFO  server started addr=0\.0\.0\.0:8080\n$`).MatchString(line) {
		t.Errorf("unexpected line: %q", line)
	}
}

func TestConsoleHandler_LevelLabels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(*slog.Logger)
		label string
	}{
		{"debug", func(l *slog.Logger) { l.Debug("m") }, "DEBUG"},
		{"info", func(l *slog.Logger) { l.Info("m") }, "INFO "},
		{"warn", func(l *slog.Logger) { l.Warn("m") }, "WARN "},
		{"error", func(l *slog.Logger) { l.Error("m") }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := consoleLine(t, slog.LevelDebug, tt.log)
			if !strings.Contains(line, " "+tt.label+" ") {
				t.Errorf("line %q missing label %q", line, tt.label)
			}
		})
	}
}

func TestConsoleHandler_LevelFiltering(t *testing.T) {
	line := consoleLine(t, slog.LevelWarn, func(l *slog.Logger) {
		l.Info("hidden")
		l.Warn("visible")
	})

	if strings.Contains(line, "hidden") {
		t.Errorf("info record leaked through a warn-level handler: %q", line)
	}
	if !strings.Contains(line, "visible") {
		t.Errorf("warn record missing: %q", line)
	}
}

func TestConsoleHandler_QuotesValuesWithSpaces(t *testing.T) {
	line := consoleLine(t, slog.LevelInfo, func(l *slog.Logger) {
		l.Info("lookup", slog.String("name", "Luke Skywalker"))
	})

	if !strings.Contains(line, `name="Luke Skywalker"`) {
		t.Errorf("value not quoted: %q", line)
	}
}

func TestConsoleHandler_WithAttrsPrefix(t *testing.T) {
	line := consoleLine(t, slog.LevelInfo, func(l *slog.Logger) {
		l.With(slog.String("component", "hydrator")).Info("miss", slog.Int("id", 1))
	})

	if !strings.Contains(line, "component=hydrator") || !strings.Contains(line, "id=1") {
		t.Errorf("attrs missing: %q", line)
	}
	if strings.Index(line, "component=") > strings.Index(line, "id=") {
		t.Errorf("WithAttrs attributes should precede record attributes: %q", line)
	}
}

func TestConsoleHandler_GroupsDotKeys(t *testing.T) {
	line := consoleLine(t, slog.LevelInfo, func(l *slog.Logger) {
		l.WithGroup("http").Info("request", slog.Int("status", 200))
	})

	if !strings.Contains(line, "http.status=200") {
		t.Errorf("grouped key not dotted: %q", line)
	}

	inline := consoleLine(t, slog.LevelInfo, func(l *slog.Logger) {
		l.Info("request", slog.Group("db", slog.String("driver", "sqlite")))
	})
	if !strings.Contains(inline, "db.driver=sqlite") {
		t.Errorf("inline group not dotted: %q", inline)
	}
}

func TestConsoleHandler_EmptyAttrElided(t *testing.T) {
	line := consoleLine(t, slog.LevelInfo, func(l *slog.Logger) {
		l.Info("bare", slog.Attr{})
	})

	if strings.Contains(strings.TrimRight(line, "\n"), "=") {
		t.Errorf("empty attr rendered: %q", line)
	}
}
