// Package apiclient is a thin typed client for the items API. It performs one
// request per call with no retry or backoff: transient failures surface to the
// caller unchanged.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// Client provides access to the items REST API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New constructs a Client bound to the provided base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("apiclient: base URL is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("apiclient: invalid base URL: %w", err)
	}

	c := &Client{
		baseURL: parsed,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// List returns all items, newest first.
func (c *Client) List(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Get returns a single item by id.
func (c *Client) Get(ctx context.Context, id string) (Item, error) {
	var it Item
	err := c.doJSON(ctx, http.MethodGet, "/api/v1/items/"+url.PathEscape(id), nil, &it)
	return it, err
}

// Create stores a new item and returns the server's copy.
func (c *Client) Create(ctx context.Context, title, description string) (Item, error) {
	var it Item
	payload := itemPayload{Title: title, Description: description}
	err := c.doJSON(ctx, http.MethodPost, "/api/v1/items", payload, &it)
	return it, err
}

// Update replaces an item's title and description and returns the updated copy.
func (c *Client) Update(ctx context.Context, id, title, description string) (Item, error) {
	var it Item
	payload := itemPayload{Title: title, Description: description}
	err := c.doJSON(ctx, http.MethodPut, "/api/v1/items/"+url.PathEscape(id), payload, &it)
	return it, err
}

// Delete removes an item and returns the server's confirmation message.
func (c *Client) Delete(ctx context.Context, id string) (string, error) {
	var body msgBody
	err := c.doJSON(ctx, http.MethodDelete, "/api/v1/items/"+url.PathEscape(id), nil, &body)
	return body.Message, err
}

// doJSON executes a single JSON request against the API. Non-2xx responses
// decode into an APIError carrying the server's {"error": ...} message.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("apiclient: encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	ref := &url.URL{Path: path}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.ResolveReference(ref).String(), body)
	if err != nil {
		return fmt.Errorf("apiclient: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("apiclient: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errBody
		if json.Unmarshal(raw, &eb) == nil && eb.Error != "" {
			apiErr.Message = eb.Error
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("apiclient: decode response: %w", err)
		}
	}
	return nil
}
