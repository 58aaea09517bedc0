// Package holocron provides a caching lookup layer over a remote Star Wars
// entity catalog.
//
// Entities are fetched by upstream numeric id. A lookup first consults the
// local relational store; on a miss the entity and its direct references are
// pulled from the catalog, persisted in one transaction, and returned.
//
// Basic usage:
//
//	client, err := holocron.New(
//	    holocron.WithSQLite(".holocron/data.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	character, created, err := client.Galaxy.Character(ctx, "default", 1)
package holocron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/holocron-dev/holocron/application/service"
	"github.com/holocron-dev/holocron/domain/audit"
	"github.com/holocron-dev/holocron/domain/galaxy"
	"github.com/holocron-dev/holocron/infrastructure/persistence"
	"github.com/holocron-dev/holocron/infrastructure/swapi"
	"github.com/holocron-dev/holocron/internal/config"
	"github.com/holocron-dev/holocron/internal/database"
)

// Client is the main entry point for the holocron library.
//
// Access resources via struct fields:
//
//	client.Galaxy.Character(ctx, requester, id)
//	client.Galaxy.Film(ctx, requester, id)
type Client struct {
	// Public resource fields (direct service access)
	Galaxy *service.Hydrator

	db         database.Database
	stores     galaxy.Stores
	searchLogs audit.SearchLogStore
	upstream   *swapi.Client
	accessLog  *service.AccessLog
	apiKeys    []string
	logger     *slog.Logger
	closed     atomic.Bool
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.dbURL == "" {
		return nil, ErrNoDatabase
	}

	// Set up logger
	logger := cfg.logger
	if logger == nil {
		logger = config.DefaultLogger()
	}

	// Open database
	ctx := context.Background()
	db, err := database.NewDatabase(ctx, cfg.dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Run auto migration
	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	// Validate schema matches GORM models
	if err := persistence.ValidateSchema(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("validate schema: %w", err), errClose)
	}

	// Create stores
	stores := persistence.NewStores(db)
	searchLogs := persistence.NewSearchLogStore(db)
	uow := persistence.NewUnitOfWork(db)

	// Create upstream catalog client
	upstream := swapi.NewClient(cfg.upstreamBaseURL, cfg.httpClient, logger)

	accessLog := service.NewAccessLog(searchLogs, logger)

	client := &Client{
		db:         db,
		stores:     stores,
		searchLogs: searchLogs,
		upstream:   upstream,
		accessLog:  accessLog,
		apiKeys:    cfg.apiKeys,
		logger:     logger,
	}

	// Initialize service fields directly
	client.Galaxy = service.NewHydrator(upstream, stores, uow, accessLog, logger)

	return client, nil
}

// Close releases all resources.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}

	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	c.logger.Info("holocron client closed")
	return nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// APIKeys returns the API keys configured on the client.
func (c *Client) APIKeys() []string {
	keys := make([]string, len(c.apiKeys))
	copy(keys, c.apiKeys)
	return keys
}

// Upstream returns the upstream catalog client.
func (c *Client) Upstream() *swapi.Client {
	return c.upstream
}

// SearchLogs returns the search log store for audit queries.
func (c *Client) SearchLogs() audit.SearchLogStore {
	return c.searchLogs
}

// RecentSearches lists recorded lookups matching the filter, newest first
// unless the filter orders oldest-first.
func (c *Client) RecentSearches(ctx context.Context, filter audit.Filter) ([]audit.SearchLog, error) {
	return c.searchLogs.Recent(ctx, filter)
}
