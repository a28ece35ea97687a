package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/vmctl/internal/cachestore"
)

// DefaultEndpoint is the default instance metadata endpoint.
const DefaultEndpoint = "https://billing.vmctl.dev/v1/metadata/instances"

const (
	catalogCacheKey = "pricing/catalog"
	catalogTTL      = time.Hour
)

// Client fetches the billing catalog from the metadata endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        logr.Logger
}

// NewClient creates a catalog client. An empty endpoint uses the default.
func NewClient(endpoint string, log logr.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// Fetch retrieves the current catalog from the endpoint.
func (c *Client) Fetch(ctx context.Context) (Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(body, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog response: %w", err)
	}

	c.log.V(1).Info("fetched billing catalog", "entries", len(catalog))
	return catalog, nil
}

// FetchOrCached serves the catalog from the cache store when a fresh entry
// exists, fetching and repopulating the cache otherwise.
func (c *Client) FetchOrCached(ctx context.Context, store *cachestore.Store) (Catalog, error) {
	var catalog Catalog
	if store.Get(catalogCacheKey, &catalog) {
		c.log.V(1).Info("billing catalog served from cache", "entries", len(catalog))
		return catalog, nil
	}

	catalog, err := c.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := store.Set(catalogCacheKey, catalog, catalogTTL); err != nil {
		return nil, fmt.Errorf("failed to cache catalog: %w", err)
	}
	return catalog, nil
}
