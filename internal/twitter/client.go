// Package twitter is a minimal Twitter API v2 client covering the calls the
// analytics endpoints need: profile lookup, user timelines, recent search,
// conversation replies and single-tweet fetch.
package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.twitter.com/2"

// Client talks to the Twitter API v2 with app-only bearer auth.
type Client struct {
	BaseURL     string
	bearerToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at a different API root (used in tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.BaseURL = strings.TrimRight(u, "/") }
}

// WithRateLimit overrides the request pacing. The default keeps well under
// the v2 app-only read quotas.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

// NewClient creates a client authenticated with the given bearer token.
func NewClient(bearerToken string, opts ...Option) *Client {
	c := &Client{
		BaseURL:     defaultBaseURL,
		bearerToken: bearerToken,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		limiter:     rate.NewLimiter(rate.Limit(1), 3),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a GET request and decodes the response into result. On HTTP
// 429 it waits until the advertised reset time and retries once, matching
// the wait-on-rate-limit behavior of the upstream API wrappers.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	body, status, header, err := c.doOnce(ctx, path, params)
	if err != nil {
		return err
	}

	if status == http.StatusTooManyRequests {
		reset := parseRateLimitReset(header.Get("x-rate-limit-reset"))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(reset)):
		}
		body, status, _, err = c.doOnce(ctx, path, params)
		if err != nil {
			return err
		}
	}

	if status == http.StatusNotFound {
		return ErrNotFound
	}
	if status < 200 || status >= 300 {
		apiErr := &APIError{StatusCode: status}
		_ = json.Unmarshal(body, apiErr)
		if apiErr.Title == "" {
			apiErr.Title = http.StatusText(status)
		}
		return apiErr
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("parsing twitter response: %w", err)
	}
	return nil
}

func (c *Client) doOnce(ctx context.Context, path string, params url.Values) ([]byte, int, http.Header, error) {
	u := c.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("request to %s failed: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("reading twitter response: %w", err)
	}
	return body, resp.StatusCode, resp.Header, nil
}

// clampMaxResults keeps max_results inside the API window.
func clampMaxResults(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
