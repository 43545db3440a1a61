package vendors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// HTTPDirectory fetches the vendor roster from the staff's sheets
// webapp and matches locally.
type HTTPDirectory struct {
	url    string
	key    string
	client *http.Client
}

// HTTPDirectoryOption configures the HTTPDirectory.
type HTTPDirectoryOption func(*HTTPDirectory)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) HTTPDirectoryOption {
	return func(d *HTTPDirectory) {
		d.client = c
	}
}

// NewHTTPDirectory creates a directory client for the given webapp URL
// and access key.
func NewHTTPDirectory(webappURL, key string, opts ...HTTPDirectoryOption) *HTTPDirectory {
	d := &HTTPDirectory{
		url:    webappURL,
		key:    key,
		client: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type rosterResponse struct {
	Vendors []string `json:"vendors"`
}

// List fetches the full vendor roster.
func (d *HTTPDirectory) List(ctx context.Context) ([]string, error) {
	u, err := url.Parse(d.url)
	if err != nil {
		return nil, fmt.Errorf("parsing directory URL: %w", err)
	}
	q := u.Query()
	q.Set("key", d.key)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling vendor directory: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"vendor directory error (status %d): %s",
			resp.StatusCode,
			string(body),
		)
	}

	var roster rosterResponse
	if err := json.Unmarshal(body, &roster); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	return roster.Vendors, nil
}

// BestMatch fetches the roster and applies the matching policy.
func (d *HTTPDirectory) BestMatch(ctx context.Context, query string) (string, error) {
	names, err := d.List(ctx)
	if err != nil {
		return "", err
	}
	return BestMatch(names, query), nil
}
