// Package catalog fetches and normalizes pages of the artwork catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public Art Institute of Chicago API.
const DefaultBaseURL = "https://api.artic.edu/api/v1"

// Config holds client settings.
type Config struct {
	// BaseURL is the API root; the client appends /artworks.
	BaseURL string

	// PageLimit is sent as the limit parameter when > 0. Zero sends only the page.
	PageLimit int

	// Timeout bounds a single page request. Zero means no client-side deadline.
	Timeout time.Duration

	UserAgent string

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client loads artwork pages. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   *url.URL
	config     Config
	logger     zerolog.Logger
	metrics    *Metrics
}

// New validates cfg and builds a client. metrics may be nil.
func New(cfg Config, logger zerolog.Logger, metrics *Metrics) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(base, "/") + "/artworks")
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url must be http or https (got %q)", base)
	}
	if cfg.PageLimit < 0 {
		return nil, fmt.Errorf("page limit must be >= 0 (got %d)", cfg.PageLimit)
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{
		httpClient: hc,
		endpoint:   u,
		config:     cfg,
		logger:     logger.With().Str("component", "catalog").Logger(),
		metrics:    metrics,
	}, nil
}

// PageURL returns the request URL for page n.
func (c *Client) PageURL(page int) string {
	u := *c.endpoint
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if c.config.PageLimit > 0 {
		q.Set("limit", strconv.Itoa(c.config.PageLimit))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// FetchPage requests page n and normalizes it. Every failure is a *FetchError.
func (c *Client) FetchPage(ctx context.Context, page int) (Page, error) {
	if page < 1 {
		return Page{}, &FetchError{Page: page, Class: ErrorClassStatus, Err: fmt.Errorf("page must be >= 1")}
	}
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	reqID := uuid.NewString()
	logger := c.logger.With().Int("page", page).Str("request_id", reqID).Logger()
	start := time.Now()
	defer func() {
		c.metrics.ObserveDuration(time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.PageURL(page), nil)
	if err != nil {
		return Page{}, c.fail(logger, &FetchError{Page: page, Class: ErrorClassNetwork, Err: err})
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	logger.Debug().Str("url", req.URL.String()).Msg("fetching artworks page")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Page{}, c.fail(logger, &FetchError{Page: page, Class: classifyTransport(err), Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Page{}, c.fail(logger, &FetchError{
			Page:       page,
			Class:      ErrorClassStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		})
	}

	var raw rawPage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		class := ErrorClassDecode
		if ctx.Err() != nil {
			class = classifyTransport(ctx.Err())
		}
		return Page{}, c.fail(logger, &FetchError{Page: page, Class: class, StatusCode: resp.StatusCode, Err: err})
	}
	if raw.Data == nil || raw.Pagination == nil {
		return Page{}, c.fail(logger, &FetchError{Page: page, Class: ErrorClassShape, StatusCode: resp.StatusCode, Err: ErrMalformedResponse})
	}

	p := normalizePage(page, raw)
	c.metrics.IncRequest("ok")
	c.metrics.AddRecords(len(p.Records))
	logger.Debug().
		Int("records", len(p.Records)).
		Int("total", p.Total).
		Dur("duration", time.Since(start)).
		Msg("artworks page loaded")
	return p, nil
}

func (c *Client) fail(logger zerolog.Logger, err *FetchError) error {
	c.metrics.IncRequest("error")
	c.metrics.IncError(err.Class)
	logger.Debug().Err(err.Err).Str("error_class", string(err.Class)).Int("status_code", err.StatusCode).Msg("artworks page failed")
	return err
}
