package searchapi

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

const defaultTimeout = 65 * time.Second

// Client talks to a catalogue search API instance.
type Client struct {
	baseURL string
	http    *http.Client
	apiKey  string
}

// HealthStatus is the decoded /health response.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("searchapi: base URL required")
	}

	cfg := &clientConfig{timeout: defaultTimeout}
	for _, o := range opts {
		o.apply(cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		apiKey:  cfg.apiKey,
	}, nil
}

// Items runs an item search. params uses the site parameter names
// (keyword, page, sort, facet fields); translation happens server-side.
func (c *Client) Items(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/items", params)
}

// Collections runs a collection search.
func (c *Client) Collections(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/collections", params)
}

// Summary runs an item search and returns only the header and facet
// counts, without the matching documents.
func (c *Client) Summary(ctx context.Context, params url.Values) (json.RawMessage, error) {
	return c.get(ctx, "/summary", params)
}

// PutItem indexes an item document. doc must marshal to a JSON object
// with a non-empty "id". Returns the status Solr reported.
func (c *Client) PutItem(ctx context.Context, doc any) (int, error) {
	return c.put(ctx, "/item", doc)
}

// PutCollection indexes a collection document. doc must carry
// name.url-slug. Returns the status Solr reported.
func (c *Client) PutCollection(ctx context.Context, doc any) (int, error) {
	return c.put(ctx, "/collection", doc)
}

// DeleteItem removes an item by id.
func (c *Client) DeleteItem(ctx context.Context, id string) (int, error) {
	return c.delete(ctx, "/item/"+url.PathEscape(id))
}

// DeleteCollection removes a collection by id.
func (c *Client) DeleteCollection(ctx context.Context, id string) (int, error) {
	return c.delete(ctx, "/collection/"+url.PathEscape(id))
}

// Health reports component health. A degraded service is not an error;
// the caller inspects Status.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", http.NoBody)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("searchapi: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("searchapi: health request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var hs HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&hs); err != nil {
		return HealthStatus{}, fmt.Errorf("searchapi: decode health response: %w", err)
	}
	return hs, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("searchapi: build request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) put(ctx context.Context, path string, doc any) (int, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("searchapi: marshal document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("searchapi: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return 0, err
	}
	return decodeIndexStatus(body)
}

func (c *Client) delete(ctx context.Context, path string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("searchapi: build request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return 0, err
	}
	return decodeIndexStatus(body)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searchapi: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("searchapi: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, apiErrorFromBody(resp.StatusCode, body)
	}
	return body, nil
}

func decodeIndexStatus(body []byte) (int, error) {
	var resp struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("searchapi: decode index response: %w", err)
	}
	return resp.Status, nil
}

func apiErrorFromBody(status int, body []byte) error {
	var er struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &er); err != nil || er.Code == "" {
		return &APIError{
			StatusCode: status,
			Code:       CodeInternalError,
			Message:    http.StatusText(status),
		}
	}
	return &APIError{
		StatusCode: status,
		Code:       er.Code,
		Message:    er.Message,
	}
}
