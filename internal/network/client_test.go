package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestWithRateLimit(t *testing.T) {
	base := &http.Client{}

	t.Run("disabled", func(t *testing.T) {
		assert.Same(t, base, WithRateLimit(base, 0, 5))
	})

	t.Run("enabled", func(t *testing.T) {
		client := WithRateLimit(base, 2, 0)

		limited, ok := client.(*RateLimitedClient)
		require.True(t, ok)
		assert.Equal(t, 1, limited.limiter.Burst())
	})
}

func TestRateLimitedClient_Do(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	t.Run("passes request through", func(t *testing.T) {
		client := NewRateLimitedClient(server.Client(), rate.NewLimiter(rate.Inf, 1))
		req, err := http.NewRequest(http.MethodGet, server.URL, nil)
		require.NoError(t, err)

		resp, err := client.Do(req)

		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("cancelled context while waiting", func(t *testing.T) {
		limiter := rate.NewLimiter(rate.Every(24*time.Hour), 1)
		require.True(t, limiter.Allow())
		client := NewRateLimitedClient(server.Client(), limiter)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL, nil)
		require.NoError(t, err)

		resp, err := client.Do(req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "rate limiter")
		assert.Nil(t, resp)
	})
}

func TestCheckStatus(t *testing.T) {
	pageURL, _ := url.Parse("https://example.com/page")

	tests := []struct {
		name    string
		status  int
		text    string
		wantErr string
	}{
		{"ok", http.StatusOK, "200 OK", ""},
		{"no content", http.StatusNoContent, "204 No Content", ""},
		{"not found", http.StatusNotFound, "404 Not Found", "not found (404) for https://example.com/page"},
		{"rate limited", http.StatusTooManyRequests, "429 Too Many Requests", "rate limit exceeded (429)"},
		{"unavailable", http.StatusServiceUnavailable, "503 Service Unavailable", "service unavailable (503)"},
		{"teapot", http.StatusTeapot, "418 I'm a teapot", `unexpected status "418 I'm a teapot"`},
		{"redirect not followed", http.StatusFound, "302 Found", "unexpected status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{
				StatusCode: tt.status,
				Status:     tt.text,
				Request:    &http.Request{URL: pageURL},
			}

			err := CheckStatus(resp)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
