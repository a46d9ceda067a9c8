package easybroker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"propfinder/config"
	"propfinder/models"
)

// ErrMissingCredential is returned before any network call when no API
// key is configured for the source.
var ErrMissingCredential = errors.New("easybroker: missing API credential")

// UpstreamError is a non-success page response from the listing
// source. It aborts the whole pagination run.
type UpstreamError struct {
	Status int
	Page   int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("easybroker: page %d returned status %d: %s", e.Page, e.Status, e.Body)
}

// Client fetches listing pages from one configured source.
type Client struct {
	http   *http.Client
	source *config.SourceConfig
	apiKey string
}

func NewClient(httpClient *http.Client, source *config.SourceConfig, apiKey string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		http:   httpClient,
		source: source,
		apiKey: apiKey,
	}
}

// FetchPage retrieves a single page of published listings.
func (c *Client) FetchPage(ctx context.Context, page, limit int) (*models.PageResponse, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}

	endpoint := c.source.BaseURL + c.source.Endpoints["properties"]
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("easybroker: invalid endpoint %q: %w", endpoint, err)
	}

	q := u.Query()
	q.Set("status", "published")
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(c.source.AuthHeader, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("easybroker: page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			Status: resp.StatusCode,
			Page:   page,
			Body:   readBodyExcerpt(resp.Body),
		}
	}

	var result models.PageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("easybroker: decode page %d: %w", page, err)
	}

	return &result, nil
}

// Ping fetches a minimal page to verify the source is reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.FetchPage(ctx, 1, 1)
	return err
}

// readBodyExcerpt keeps error bodies small enough to log safely.
func readBodyExcerpt(r io.Reader) string {
	const maxExcerpt = 512
	body, _ := io.ReadAll(io.LimitReader(r, maxExcerpt))
	return string(body)
}
