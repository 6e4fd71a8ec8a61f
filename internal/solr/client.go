// Package solr is the HTTP client for the upstream Solr instance.
package solr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cdcp/search-api/internal/domain"
	"github.com/cdcp/search-api/internal/metrics"
)

// Select handlers. The spell handler wraps the default select with
// spellcheck suggestions, which the site uses for "did you mean".
const (
	HandlerSelect = "select"
	HandlerSpell  = "spell"
)

// Config holds the Solr client settings.
type Config struct {
	BaseURL        string
	ItemCore       string
	CollectionCore string
	SelectHandler  string
	Timeout        time.Duration
	Logger         *zap.Logger
}

// Client talks to a single Solr instance over HTTP.
type Client struct {
	http          *http.Client
	baseURL       string
	itemCore      string
	collCore      string
	selectHandler string
	logger        *zap.Logger
}

// NewClient creates a Solr client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	handler := cfg.SelectHandler
	if handler == "" {
		handler = HandlerSpell
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		http:          &http.Client{Timeout: timeout},
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		itemCore:      cfg.ItemCore,
		collCore:      cfg.CollectionCore,
		selectHandler: handler,
		logger:        logger,
	}
}

// CoreFor returns the Solr core name for a resource type.
func (c *Client) CoreFor(r domain.Resource) (string, error) {
	switch r {
	case domain.ResourceItem:
		return c.itemCore, nil
	case domain.ResourceCollection:
		return c.collCore, nil
	default:
		return "", fmt.Errorf("resource %q: %w", r, domain.ErrUnknownResource)
	}
}

// Select runs a search against a core and returns the raw JSON response body.
func (c *Client) Select(ctx context.Context, core string, params url.Values) ([]byte, error) {
	u := fmt.Sprintf("%s/solr/%s/%s?%s", c.baseURL, core, c.selectHandler, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build select request: %w", err)
	}

	body, _, err := c.do(req, core, "select")
	if err != nil {
		return nil, err
	}
	return body, nil
}

// Update posts a JSON document to the core's update/json/docs handler.
// params carry Solr field-mapping options (split, f). Returns the upstream
// status code.
func (c *Client) Update(ctx context.Context, core string, params url.Values, doc []byte) (int, error) {
	u := fmt.Sprintf("%s/solr/%s/update/json/docs", c.baseURL, core)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(doc))
	if err != nil {
		return 0, fmt.Errorf("build update request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	_, status, err := c.do(req, core, "update")
	if err != nil {
		return status, err
	}
	return status, nil
}

// DeleteByQuery issues a delete command against the core's update handler.
// Returns the upstream status code.
func (c *Client) DeleteByQuery(ctx context.Context, core, query string) (int, error) {
	cmd := fmt.Sprintf(`{"delete":{"query":%q}}`, query)

	u := fmt.Sprintf("%s/solr/%s/update", c.baseURL, core)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(cmd))
	if err != nil {
		return 0, fmt.Errorf("build delete request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	_, status, err := c.do(req, core, "delete")
	if err != nil {
		return status, err
	}
	return status, nil
}

// Ping checks Solr availability via the item core's ping handler.
func (c *Client) Ping(ctx context.Context) error {
	u := fmt.Sprintf("%s/solr/%s/admin/ping", c.baseURL, c.itemCore)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}

	if _, _, err := c.do(req, c.itemCore, "ping"); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// WaitForReady polls Ping until Solr responds or timeout expires.
func (c *Client) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for solr: %w", ctx.Err())
		case <-ticker.C:
			if err := c.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// do executes the request with metrics, mapping failures to domain errors.
func (c *Client) do(req *http.Request, core, operation string) ([]byte, int, error) {
	start := time.Now()

	resp, err := c.http.Do(req)

	duration := time.Since(start)

	if err != nil {
		metrics.SolrRequestsTotal.WithLabelValues(core, operation, "unreachable").Inc()
		c.logger.Warn("solr request failed",
			zap.String("core", core),
			zap.String("operation", operation),
			zap.Error(err),
		)
		return nil, 0, transportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.SolrRequestsTotal.WithLabelValues(core, operation, "unreachable").Inc()
		return nil, resp.StatusCode, fmt.Errorf("read solr response: %w", domain.ErrUpstreamUnavailable)
	}

	metrics.SolrRequestsTotal.
		WithLabelValues(core, operation, statusClass(resp.StatusCode)).Inc()
	metrics.SolrRequestDuration.WithLabelValues(core, operation).Observe(duration.Seconds())

	if resp.StatusCode >= 400 {
		return nil, resp.StatusCode, parseSolrError(resp.StatusCode, body)
	}

	return body, resp.StatusCode, nil
}

func transportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("solr request canceled: %w", err)
	}
	return fmt.Errorf("solr request failed: %w", domain.ErrUpstreamUnavailable)
}

func statusClass(code int) string {
	switch {
	case code < 400:
		return "success"
	case code < 500:
		return "client_error"
	default:
		return "server_error"
	}
}
