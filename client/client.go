// Package client is a thin consumer of the catalog HTTP API. It speaks
// the same envelope and paging contract as the server and is what
// desktop shells and the seeding command drive.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ncobase/catalog/model"
)

// NextCursorHeader mirrors the server-side continuation header.
const NextCursorHeader = "X-Next-Cursor"

// Client calls the catalog API.
type Client struct {
	baseURL string
	hc      *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a failure envelope surfaced as an error.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// ItemPage is one offset-mode page of items with its metadata.
type ItemPage struct {
	Items      []model.Item
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// ItemRequest is the create/update payload.
type ItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// envelope mirrors the wire format; Data stays raw until the caller
// decodes it into the right shape.
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

// do performs a request and decodes the envelope, translating failure
// envelopes into *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*envelope, *http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer res.Body.Close()

	var env envelope
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success {
		return nil, nil, &APIError{Status: res.StatusCode, Message: env.Message}
	}
	return &env, res, nil
}

func decodeItems(env *envelope) ([]model.Item, error) {
	items := make([]model.Item, 0)
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return items, nil
	}
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

// List fetches all items without pagination.
func (c *Client) List(ctx context.Context) ([]model.Item, error) {
	env, _, err := c.do(ctx, http.MethodGet, "/api/items", nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeItems(env)
}

// Page fetches one offset-mode page, optionally filtered by query text.
func (c *Client) Page(ctx context.Context, query string, page, pageSize int) (*ItemPage, error) {
	path := "/api/items"
	q := url.Values{}
	if query != "" {
		path = "/api/items/search"
		q.Set("query", query)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	env, _, err := c.do(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, err
	}

	items, err := decodeItems(env)
	if err != nil {
		return nil, err
	}
	return &ItemPage{
		Items:      items,
		Total:      env.Total,
		Page:       env.Page,
		PageSize:   env.PageSize,
		TotalPages: env.TotalPages,
	}, nil
}

// Cursor fetches one cursor-mode page. The returned token feeds the next
// call; an empty token signals exhaustion.
func (c *Client) Cursor(ctx context.Context, cursor string, pageSize int) ([]model.Item, string, error) {
	q := url.Values{}
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}

	env, res, err := c.do(ctx, http.MethodGet, "/api/items/cursor", q, nil)
	if err != nil {
		return nil, "", err
	}

	items, err := decodeItems(env)
	if err != nil {
		return nil, "", err
	}
	return items, res.Header.Get(NextCursorHeader), nil
}

// Get fetches a single item by id.
func (c *Client) Get(ctx context.Context, id int64) (*model.Item, error) {
	env, _, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/items/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var it model.Item
	if err := json.Unmarshal(env.Data, &it); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}
	return &it, nil
}

// Create stores a new item.
func (c *Client) Create(ctx context.Context, req ItemRequest) (*model.Item, error) {
	env, _, err := c.do(ctx, http.MethodPost, "/api/items", nil, req)
	if err != nil {
		return nil, err
	}

	var it model.Item
	if err := json.Unmarshal(env.Data, &it); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}
	return &it, nil
}

// Update replaces an existing item's fields.
func (c *Client) Update(ctx context.Context, id int64, req ItemRequest) (*model.Item, error) {
	env, _, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/items/%d", id), nil, req)
	if err != nil {
		return nil, err
	}

	var it model.Item
	if err := json.Unmarshal(env.Data, &it); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}
	return &it, nil
}

// Delete removes an item permanently.
func (c *Client) Delete(ctx context.Context, id int64) error {
	_, _, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/items/%d", id), nil, nil)
	return err
}
