package holocron

import (
	"errors"
	"log/slog"
	"net/http"
)

// ErrNoDatabase indicates no database was configured.
var ErrNoDatabase = errors.New("holocron: no database configured, use WithSQLite or WithPostgres")

// ErrClientClosed indicates the client has already been closed.
var ErrClientClosed = errors.New("holocron: client is closed")

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	dbURL           string
	upstreamBaseURL string
	httpClient      *http.Client
	apiKeys         []string
	logger          *slog.Logger
}

func newClientConfig() *clientConfig {
	return &clientConfig{}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.dbURL = "sqlite:///" + path
	}
}

// WithPostgres configures PostgreSQL as the database.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.dbURL = dsn
	}
}

// WithDatabaseURL configures the database from a URL
// (sqlite:///path or postgres://...).
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.dbURL = url
	}
}

// WithUpstreamBaseURL sets the base URL of the remote entity catalog.
// Defaults to the public SWAPI endpoint.
func WithUpstreamBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.upstreamBaseURL = url
	}
}

// WithHTTPClient sets the HTTP client used for upstream catalog requests.
// Useful for tests and for callers that need custom timeouts or transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// WithAPIKeys sets the API keys the HTTP server accepts.
func WithAPIKeys(keys []string) Option {
	return func(c *clientConfig) {
		c.apiKeys = keys
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
