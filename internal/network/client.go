package network

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RateLimitedClient delays each request until the limiter allows it.
// Waiting honours the request context.
type RateLimitedClient struct {
	client  HTTPClient
	limiter *rate.Limiter
}

func NewRateLimitedClient(client HTTPClient, limiter *rate.Limiter) *RateLimitedClient {
	return &RateLimitedClient{
		client:  client,
		limiter: limiter,
	}
}

func (c *RateLimitedClient) Do(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	return c.client.Do(req)
}

// WithRateLimit wraps client when requestsPerSecond is positive and returns
// it unchanged otherwise.
func WithRateLimit(client HTTPClient, requestsPerSecond float64, burst int) HTTPClient {
	if requestsPerSecond <= 0 {
		return client
	}
	if burst < 1 {
		burst = 1
	}
	return NewRateLimitedClient(client, rate.NewLimiter(rate.Limit(requestsPerSecond), burst))
}

// CheckStatus reports non-2xx responses as errors.
func CheckStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	url := ""
	if resp.Request != nil && resp.Request.URL != nil {
		url = resp.Request.URL.Redacted()
	}

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return fmt.Errorf("rate limit exceeded (429) for %s", url)
	case http.StatusForbidden:
		return fmt.Errorf("access forbidden (403) for %s", url)
	case http.StatusNotFound:
		return fmt.Errorf("not found (404) for %s", url)
	case http.StatusInternalServerError:
		return fmt.Errorf("server error (500) for %s", url)
	case http.StatusBadGateway:
		return fmt.Errorf("bad gateway (502) for %s", url)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("service unavailable (503) for %s", url)
	case http.StatusGatewayTimeout:
		return fmt.Errorf("gateway timeout (504) for %s", url)
	}
	return fmt.Errorf("unexpected status %q for %s", resp.Status, url)
}
