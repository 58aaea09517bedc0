// Package swapi provides the client for the upstream Star Wars catalog API.
package swapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the public upstream catalog.
const DefaultBaseURL = "https://swapi.dev/api/"

// ErrNotFound indicates the upstream has no entity with the requested id.
var ErrNotFound = errors.New("swapi: entity not found")

// ErrUnavailable indicates the upstream could not be reached or returned a
// response that could not be used (non-2xx other than 404, or bad JSON).
var ErrUnavailable = errors.New("swapi: upstream unavailable")

// Resource is an upstream collection path segment.
type Resource string

// Upstream resources.
const (
	ResourcePeople   Resource = "people"
	ResourcePlanets  Resource = "planets"
	ResourceFilms    Resource = "films"
	ResourceVehicles Resource = "vehicles"
	ResourceSpecies  Resource = "species"
)

// Client fetches raw entity records from the upstream catalog. It performs
// no retries and holds no state beyond its configuration; every call is one
// outbound GET.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client for the given base URL. An empty baseURL selects
// DefaultBaseURL; a nil httpClient gets a 30s-timeout default.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// BaseURL returns the configured upstream base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch retrieves the raw record for one entity. A 404 maps to ErrNotFound;
// transport failures, other non-2xx statuses, and malformed bodies map to
// ErrUnavailable. Callers decide usability from the record's fields.
func (c *Client) Fetch(ctx context.Context, resource Resource, id int64) (Record, error) {
	url := fmt.Sprintf("%s%s/%d/", c.baseURL, resource, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching upstream entity",
		slog.String("resource", string(resource)),
		slog.Int64("id", id),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s/%d", ErrNotFound, resource, id)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s/%d returned status %d", ErrUnavailable, resource, id, resp.StatusCode)
	}

	var record Record
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: decode %s/%d: %v", ErrUnavailable, resource, id, err)
	}
	return record, nil
}

// Person fetches a person record by upstream id.
func (c *Client) Person(ctx context.Context, id int64) (Record, error) {
	return c.Fetch(ctx, ResourcePeople, id)
}

// Planet fetches a planet record by upstream id.
func (c *Client) Planet(ctx context.Context, id int64) (Record, error) {
	return c.Fetch(ctx, ResourcePlanets, id)
}

// Film fetches a film record by upstream id.
func (c *Client) Film(ctx context.Context, id int64) (Record, error) {
	return c.Fetch(ctx, ResourceFilms, id)
}

// Vehicle fetches a vehicle record by upstream id.
func (c *Client) Vehicle(ctx context.Context, id int64) (Record, error) {
	return c.Fetch(ctx, ResourceVehicles, id)
}

// Species fetches a species record by upstream id.
func (c *Client) Species(ctx context.Context, id int64) (Record, error) {
	return c.Fetch(ctx, ResourceSpecies, id)
}
