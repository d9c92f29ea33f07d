package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/muratoffalex/pagefetch/internal/buffer"
	"github.com/muratoffalex/pagefetch/internal/encoding"
	"github.com/muratoffalex/pagefetch/internal/logger"
	"github.com/muratoffalex/pagefetch/internal/network"
)

// Fetcher downloads a page and decodes it using the charset the page
// declares, falling back to UTF-8. A Fetcher holds no per-request state and
// may be shared between goroutines.
type Fetcher struct {
	client      HTTPClient
	userAgent   string
	headers     map[string]string
	maxBodySize int64
	logger      logger.Logger
}

func New(client HTTPClient, l logger.Logger, opts ...Option) *Fetcher {
	f := &Fetcher{
		client: client,
		logger: l.WithField("component", "fetcher"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch issues a GET for rawURL and returns the decoded body. The body is
// buffered, decoded once as UTF-8 to look for a "charset=" declaration, and
// decoded again with the declared charset if there is one.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := f.newRequest(ctx, rawURL)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if err := network.CheckStatus(resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	buf, err := buffer.MaterializeLimit(resp.Body, f.maxBodySize)
	if err != nil {
		return "", err
	}
	defer buf.Close()

	return f.decode(buf, f.logger.WithField("url", req.URL.Redacted()))
}

func (f *Fetcher) decode(buf *buffer.Buffer, l logger.Logger) (string, error) {
	text, err := buf.DecodeString(nil)
	if err != nil {
		return "", err
	}

	id, found, err := SniffCharset(text)
	if err != nil {
		return "", err
	}
	if !found {
		l.Debug("No charset declared, using ", encoding.Name(nil))
		return text, nil
	}

	enc, err := encoding.Resolve(id)
	if err != nil {
		return "", err
	}
	l.WithFields(logger.Fields{
		"charset":  id,
		"encoding": encoding.Name(enc),
	}).Debug("Charset declared")

	if _, err := buf.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return buf.DecodeString(enc)
}

func (f *Fetcher) newRequest(ctx context.Context, rawURL string) (*http.Request, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("%w: URL cannot be empty", ErrInvalidArgument)
	}
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid URL: %w", ErrInvalidArgument, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported URL scheme: %q", ErrInvalidArgument, parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return nil, fmt.Errorf("%w: URL must have a host", ErrInvalidArgument)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrInvalidArgument, err)
	}

	userAgent := f.userAgent
	if userAgent == "" {
		userAgent = RandomUserAgent()
	}
	req.Header.Set("User-Agent", userAgent)
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}

	return req, nil
}
