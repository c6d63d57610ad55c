// Package client fetches the two fleet API collections the dashboard
// depends on. Acquisition is all-or-nothing: the summary endpoint is only
// attempted after the data endpoint succeeds, and any failure at either
// stage collapses into a single error.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leapstack-labs/fleetdash/internal/fleet"
)

// DefaultBaseURL is the compiled-in backend address, matching the port
// fleetdash serve listens on by default.
const DefaultBaseURL = "http://localhost:5000"

const defaultTimeout = 10 * time.Second

// Snapshot holds one acquisition's results. ID tags the log lines of a
// single fetch cycle.
type Snapshot struct {
	ID        string          `json:"id"`
	Data      []fleet.Record  `json:"data"`
	Summary   []fleet.Summary `json:"summary"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// Client acquires fleet data from the backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-acquisition HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client for the given base URL. An empty base URL falls
// back to DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch acquires both collections. The summary request is only attempted
// after the data request succeeds. Errors from either stage name the
// failing collection; no partial snapshot is ever returned.
func (c *Client) Fetch(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{ID: uuid.NewString()}
	logger := c.logger.With("acquisition_id", snap.ID)

	logger.Debug("fetching fleet data", "url", c.baseURL+"/api/fleet-data")
	if err := c.getJSON(ctx, "/api/fleet-data", &snap.Data); err != nil {
		return nil, fmt.Errorf("fleet data fetch failed: %w", err)
	}

	logger.Debug("fetching fleet summary", "url", c.baseURL+"/api/fleet-summary")
	if err := c.getJSON(ctx, "/api/fleet-summary", &snap.Summary); err != nil {
		return nil, fmt.Errorf("fleet summary fetch failed: %w", err)
	}

	snap.FetchedAt = time.Now()
	logger.Debug("acquisition complete", "records", len(snap.Data), "fleets", len(snap.Summary))
	return snap, nil
}

// getJSON performs one GET request and decodes the body into out after
// checking for a successful status.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid JSON from %s: %w", path, err)
	}
	return nil
}
