package service

import (
	"context"
	"log/slog"

	"github.com/holocron-dev/holocron/domain/audit"
	"github.com/holocron-dev/holocron/domain/galaxy"
)

// AccessLog records successful entity lookups in the search log. Recording
// is fire-and-forget: a failed append is logged and swallowed, it never
// fails the lookup that triggered it.
type AccessLog struct {
	store  audit.SearchLogStore
	logger *slog.Logger
}

// NewAccessLog creates a new AccessLog recorder.
func NewAccessLog(store audit.SearchLogStore, logger *slog.Logger) *AccessLog {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccessLog{store: store, logger: logger}
}

// Record appends one search log entry for a successful lookup.
func (a *AccessLog) Record(ctx context.Context, requester string, kind galaxy.Kind, id int64) {
	entry := audit.NewSearchLog(requester, kind.String(), id)
	if _, err := a.store.Append(ctx, entry); err != nil {
		a.logger.Warn("failed to record search log entry",
			slog.String("requester", requester),
			slog.String("kind", kind.String()),
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
	}
}
