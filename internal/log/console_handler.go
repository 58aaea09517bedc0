package log

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	escReset  = "\033[0m"
	escFaint  = "\033[2m"
	escRed    = "\033[31m"
	escGreen  = "\033[32m"
	escYellow = "\033[33m"
	escBlue   = "\033[34m"
)

// ConsoleHandler is a slog.Handler producing compact colored lines for
// interactive use:
//
//	15:04:05 INFO  starting holocron addr=0.0.0.0:8080
//
// JSON output for log collectors is handled by slog.NewJSONHandler; this
// handler only exists for the pretty format.
type ConsoleHandler struct {
	mu    *sync.Mutex
	out   io.Writer
	level slog.Leveler

	// prefix holds attributes accumulated via WithAttrs, already rendered.
	// group is the dotted prefix applied to subsequent attribute keys.
	prefix string
	group  string
}

// NewConsoleHandler creates a handler writing to w at the given level.
func NewConsoleHandler(w io.Writer, level slog.Leveler) *ConsoleHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &ConsoleHandler{
		mu:    &sync.Mutex{},
		out:   w,
		level: level,
	}
}

// Enabled reports whether records at the given level are written.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders one record as a single line.
func (h *ConsoleHandler) Handle(_ context.Context, rec slog.Record) error {
	buf := make([]byte, 0, 256)

	when := rec.Time
	if when.IsZero() {
		when = time.Now()
	}
	buf = append(buf, escFaint...)
	buf = when.AppendFormat(buf, "15:04:05")
	buf = append(buf, escReset...)
	buf = append(buf, ' ')

	buf = append(buf, levelColor(rec.Level)...)
	buf = append(buf, levelLabel(rec.Level)...)
	buf = append(buf, escReset...)
	buf = append(buf, ' ')

	buf = append(buf, rec.Message...)
	buf = append(buf, h.prefix...)
	rec.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.group, a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf)
	return err
}

// WithAttrs renders the attributes eagerly into the line prefix.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	buf := []byte(h.prefix)
	for _, a := range attrs {
		buf = appendAttr(buf, h.group, a)
	}
	next := *h
	next.prefix = string(buf)
	return &next
}

// WithGroup extends the key prefix for subsequent attributes.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = h.group + name + "."
	return &next
}

func levelLabel(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO "
	case level < slog.LevelError:
		return "WARN "
	default:
		return "ERROR"
	}
}

func levelColor(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return escBlue
	case level < slog.LevelWarn:
		return escGreen
	case level < slog.LevelError:
		return escYellow
	default:
		return escRed
	}
}

func appendAttr(buf []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	if a.Value.Kind() == slog.KindGroup {
		sub := group
		if a.Key != "" {
			sub = group + a.Key + "."
		}
		for _, member := range a.Value.Group() {
			buf = appendAttr(buf, sub, member)
		}
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, escFaint...)
	buf = append(buf, group...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	buf = append(buf, escReset...)
	return appendValue(buf, a.Value)
}

func appendValue(buf []byte, v slog.Value) []byte {
	s := v.String()
	if strings.ContainsAny(s, " \t\n\"=") {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}
