// internal/app/system/reporting/client.go
package reporting

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is where the reporting backend lives in a local setup.
const DefaultBaseURL = "http://localhost:8000/reporting-module/"

// Endpoint paths, relative to the base URL.
const (
	PathCommunicationFrequency  = "communication-frequency"
	PathEngagementEffectiveness = "engagement-effectiveness"
	PathOverdueTrends           = "overdue-trends"
	PathReports                 = "reports"
	PathActivityLog             = "activity-log"
	PathReportList              = "reports/"
	PathDownloadCSV             = "reports/download/csv"
	PathDownloadPDF             = "reports/download/pdf"
)

// maxErrorBody caps how much of a failed response is kept on an HTTPError.
const maxErrorBody = 512

// HTTPError is returned when the backend answers with a non-2xx status.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
	}
	return fmt.Sprintf("%s %s: %s: %s", e.Method, e.URL, e.Status, e.Body)
}

// Client reads from the reporting backend. Requests carry no body, headers,
// or credentials and are never retried.
type Client struct {
	base *url.URL
	http *http.Client
	log  *zap.Logger
}

// New builds a Client for baseURL. A missing trailing slash is added so
// relative paths resolve under the base path rather than beside it.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	base, err := ParseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		base: base,
		http: &http.Client{Timeout: timeout},
		log:  logger,
	}, nil
}

// ParseBaseURL validates an absolute http(s) base URL and normalizes its path
// to end in "/".
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("parse reporting base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("reporting base url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("reporting base url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// URL resolves an endpoint path against the base URL.
func (c *Client) URL(path string) string {
	return ResolveURL(c.base, path)
}

// ResolveURL resolves path against base, keeping any trailing slash on path.
func ResolveURL(base *url.URL, path string) string {
	return base.ResolveReference(&url.URL{Path: strings.TrimPrefix(path, "/")}).String()
}

// GetJSON issues a GET for path and decodes the response body into dst.
// The request lives exactly as long as ctx.
func (c *Client) GetJSON(ctx context.Context, path string, dst any) error {
	target := c.URL(path)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{
			Method:     http.MethodGet,
			URL:        target,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", target, err)
	}

	c.log.Debug("reporting fetch ok",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// Ping reports whether the backend answers HTTP at its base URL. Any status
// code counts; only transport failures are errors.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("ping %s: %w", c.base, err)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	return resp.Body.Close()
}

// CloseIdleConnections releases pooled connections to the backend.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}
