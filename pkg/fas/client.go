// Package fas is a client for the USDA Foreign Agricultural Service
// Open Data API (PSD and ESR endpoint families).
package fas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public USDA FAS Open Data API root.
const DefaultBaseURL = "https://api.fas.usda.gov/api"

type Options struct {
	BaseURL string
	APIKey  string
	// Timeout of 0 leaves the transport default in place.
	Timeout time.Duration
}

type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
}

// APIError describes a response that arrived with a non-2xx status.
// A transport failure with no response at all is reported as a plain
// wrapped error instead.
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request to %s failed (HTTP %d)", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("request to %s failed (HTTP %d): %s", e.URL, e.StatusCode, e.Body)
}

func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("API key is required")
	}

	base, err := normalizeBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:    base,
		apiKey:     strings.TrimSpace(opts.APIKey),
		httpClient: &http.Client{Timeout: opts.Timeout},
	}, nil
}

// Get performs one authenticated GET against path and returns the
// decoded JSON value exactly as the service sent it.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (any, error) {
	targetURL := *c.baseURL
	targetURL.Path = strings.TrimRight(targetURL.Path, "/") + path
	targetURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", targetURL.String(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", targetURL.String(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			URL:        targetURL.String(),
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON response from %s: %w", targetURL.String(), err)
	}
	return payload, nil
}

func normalizeBaseURL(rawBaseURL string) (*url.URL, error) {
	base := strings.TrimSpace(rawBaseURL)
	if base == "" {
		base = DefaultBaseURL
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Scheme == "" {
		u.Scheme = "https"
	}
	if u.Host == "" {
		u.Host = u.Path
		u.Path = ""
	}
	return u, nil
}
