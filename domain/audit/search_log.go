// Package audit defines the append-only search log written after every
// successful entity lookup.
package audit

import (
	"context"
	"time"
)

// SearchLog records a single successful lookup: who asked, for which entity
// kind, and for which upstream id. Rows are append-only.
type SearchLog struct {
	id         int64
	requester  string
	searchType string
	searchID   int64
	createdAt  time.Time
}

// NewSearchLog creates an unsaved SearchLog entry.
func NewSearchLog(requester, searchType string, searchID int64) SearchLog {
	return SearchLog{
		requester:  requester,
		searchType: searchType,
		searchID:   searchID,
	}
}

// ReconstructSearchLog rebuilds a SearchLog from persisted state.
func ReconstructSearchLog(id int64, requester, searchType string, searchID int64, createdAt time.Time) SearchLog {
	return SearchLog{
		id:         id,
		requester:  requester,
		searchType: searchType,
		searchID:   searchID,
		createdAt:  createdAt,
	}
}

// ID returns the log row id.
func (l SearchLog) ID() int64 { return l.id }

// Requester returns the identity that performed the lookup.
func (l SearchLog) Requester() string { return l.requester }

// SearchType returns the entity kind tag ("character", "planet", ...).
func (l SearchLog) SearchType() string { return l.searchType }

// SearchID returns the upstream id that was looked up.
func (l SearchLog) SearchID() int64 { return l.searchID }

// CreatedAt returns when the lookup was recorded.
func (l SearchLog) CreatedAt() time.Time { return l.createdAt }

// Filter narrows a Recent listing. Zero-valued fields do not filter.
type Filter struct {
	// Requester restricts to lookups by one identity.
	Requester string
	// Kinds restricts to the given entity kind tags.
	Kinds []string
	// Limit caps the number of entries; zero means unlimited.
	Limit int
	// Offset skips the first n entries for paging.
	Offset int
	// Oldest returns entries oldest-first instead of newest-first.
	Oldest bool
}

// SearchLogStore appends and lists search log entries.
type SearchLogStore interface {
	Append(ctx context.Context, entry SearchLog) (SearchLog, error)
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, filter Filter) ([]SearchLog, error)
}
