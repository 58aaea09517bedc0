package persistence

import (
	"context"
	"fmt"

	"github.com/holocron-dev/holocron/domain/audit"
	"github.com/holocron-dev/holocron/domain/galaxy"
	"github.com/holocron-dev/holocron/internal/database"
)

// SearchLogStore implements audit.SearchLogStore using GORM.
type SearchLogStore struct {
	database.Repository[audit.SearchLog, SearchLogModel]
}

// NewSearchLogStore creates a new SearchLogStore.
func NewSearchLogStore(db database.Database) SearchLogStore {
	return SearchLogStore{
		Repository: database.NewRepository[audit.SearchLog, SearchLogModel](db, SearchLogMapper{}, "search log"),
	}
}

// Append inserts a new search log row. Rows are never updated or deleted.
func (s SearchLogStore) Append(ctx context.Context, entry audit.SearchLog) (audit.SearchLog, error) {
	model := s.Mapper().ToModel(entry)
	result := s.DB(ctx).Create(&model)
	if result.Error != nil {
		return audit.SearchLog{}, fmt.Errorf("append search log: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// Count returns the number of search log rows.
func (s SearchLogStore) Count(ctx context.Context) (int64, error) {
	return s.Repository.Count(ctx)
}

// Recent lists search log rows, newest first unless filter.Oldest is set.
func (s SearchLogStore) Recent(ctx context.Context, filter audit.Filter) ([]audit.SearchLog, error) {
	order := galaxy.WithOrderDesc("id")
	if filter.Oldest {
		order = galaxy.WithOrderAsc("id")
	}
	options := []galaxy.Option{order}

	if filter.Requester != "" {
		options = append(options, galaxy.WithCondition("requester", filter.Requester))
	}
	if len(filter.Kinds) > 0 {
		options = append(options, galaxy.WithConditionIn("search_type", filter.Kinds))
	}
	if filter.Limit > 0 {
		options = append(options, galaxy.WithLimit(filter.Limit))
	}
	if filter.Offset > 0 {
		options = append(options, galaxy.WithOffset(filter.Offset))
	}
	return s.Find(ctx, options...)
}
