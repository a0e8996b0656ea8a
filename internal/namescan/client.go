package namescan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/surfaid/vetflow/internal/common"
	"github.com/surfaid/vetflow/internal/model"
	"github.com/surfaid/vetflow/internal/service"
)

// DefaultBaseURL is the production emerald API endpoint.
const DefaultBaseURL = "https://api.namescan.io"

const (
	personScanPath       = "/v3/person-scans/emerald"
	organisationScanPath = "/v3/organisation-scans/emerald"

	// defaultMatchRate is the minimum match sensitivity requested from the
	// service, same default the spreadsheet rows carried historically.
	defaultMatchRate = 50
)

// Client calls the Namescan emerald API and caches raw responses by
// supplier hash so unchanged rows never hit the network twice.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      service.ScanCache
	retry      service.RetryOptions
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used in tests).
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithCache attaches a response cache.
func WithCache(cache service.ScanCache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithRetryOptions overrides the retry behavior.
func WithRetryOptions(opts service.RetryOptions) Option {
	return func(c *Client) { c.retry = opts }
}

// NewClient creates an emerald API client.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: namescan api key", common.ErrMissingConfig)
	}
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Screen returns every candidate watchlist match for the supplier, in the
// order the service ranks them. Organizations and individuals use their
// respective scan endpoints; suppliers without a declared entity type are
// screened as persons, matching the original spreadsheet semantics.
func (c *Client) Screen(ctx context.Context, supplier model.Supplier) ([]model.ScreeningHit, error) {
	if cached, ok := c.fromCache(ctx, supplier); ok {
		return cached, nil
	}

	path := personScanPath
	var payload any
	if supplier.EntityType == model.EntityOrganization {
		path = organisationScanPath
		payload = organisationScanRequest{
			Name:      supplier.Name,
			Country:   supplier.Country,
			MatchRate: defaultMatchRate,
		}
	} else {
		payload = personScanRequest{
			Name:       supplier.Name,
			FirstName:  supplier.FirstName,
			MiddleName: supplier.MiddleName,
			LastName:   supplier.LastName,
			Gender:     supplier.Gender,
			DOB:        requestDate(supplier.DateOfBirth),
			Country:    supplier.Country,
			MatchRate:  defaultMatchRate,
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding scan request: %w", err)
	}

	var raw []byte
	err = common.WithRetry(ctx, func() error {
		var opErr error
		raw, opErr = c.post(ctx, path, body)
		return opErr
	}, c.retry)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if cacheErr := c.cache.Put(ctx, supplier.Hash(), raw); cacheErr != nil {
			slog.Warn("Failed to cache scan response", "supplier", supplier.Name, "error", cacheErr)
		}
	}

	return decodeHits(raw)
}

func (c *Client) fromCache(ctx context.Context, supplier model.Supplier) ([]model.ScreeningHit, bool) {
	if c.cache == nil {
		return nil, false
	}
	raw, err := c.cache.Get(ctx, supplier.Hash())
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			slog.Warn("Scan cache read failed", "supplier", supplier.Name, "error", err)
		}
		return nil, false
	}
	hits, err := decodeHits(raw)
	if err != nil {
		slog.Warn("Discarding corrupt cached scan response", "supplier", supplier.Name, "error", err)
		return nil, false
	}
	return hits, true
}

func (c *Client) post(ctx context.Context, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrScreeningFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", common.ErrScreeningFailed, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return raw, nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, common.ErrRateLimit
	case resp.StatusCode >= 500:
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("%w: status %d", common.ErrScreeningFailed, resp.StatusCode),
			Retryable: true,
		}
	default:
		// 4xx responses are terminal: bad key, bad payload.
		return nil, &common.RetryableError{
			Err:       fmt.Errorf("%w: status %d: %s", common.ErrScreeningFailed, resp.StatusCode, raw),
			Retryable: false,
		}
	}
}

func decodeHits(raw []byte) ([]model.ScreeningHit, error) {
	var scan scanResponse
	if err := json.Unmarshal(raw, &scan); err != nil {
		return nil, fmt.Errorf("decoding scan response: %w", err)
	}
	return scan.hits(), nil
}
