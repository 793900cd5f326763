package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/danielmarass/webmark/internal/logger"
)

// Chrome user agent for better compatibility with bot-protected sites
const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"

// StaticConfig holds configuration for the static fetcher.
type StaticConfig struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultStaticConfig returns sensible defaults.
func DefaultStaticConfig() StaticConfig {
	return StaticConfig{
		UserAgent: defaultUserAgent,
		Timeout:   30 * time.Second,
	}
}

// Static fetches resources over plain HTTP using Colly.
// It implements the Fetcher interface.
type Static struct {
	config StaticConfig
}

// NewStatic creates a new static fetcher.
func NewStatic(cfg StaticConfig) *Static {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultStaticConfig().UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultStaticConfig().Timeout
	}
	return &Static{config: cfg}
}

// Text retrieves a resource body as a string.
func (f *Static) Text(ctx context.Context, url string) (string, error) {
	body, _, err := f.get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Binary retrieves a resource body and its Content-Type header.
func (f *Static) Binary(ctx context.Context, url string) ([]byte, string, error) {
	return f.get(ctx, url)
}

// get performs a single request with a fresh collector per call.
func (f *Static) get(ctx context.Context, url string) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	logger.Debug("fetch starting", "url", url)

	c := colly.NewCollector(
		colly.UserAgent(f.config.UserAgent),
	)
	c.SetRequestTimeout(f.config.Timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		r.Headers.Set("Accept-Language", "en-US,en;q=0.5")
	})

	var (
		body        []byte
		contentType string
		status      int
	)

	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		contentType = r.Headers.Get("Content-Type")
		body = r.Body
		logger.Debug("fetch response received",
			"status", r.StatusCode,
			"content_type", contentType,
			"body_size", len(r.Body))
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
		logger.Debug("fetch error", "url", url, "status", status, "error", err)
	})

	visitErr := c.Visit(url)

	if status != 0 && (status < 200 || status >= 300) {
		return nil, "", &TransportError{Status: status, StatusText: http.StatusText(status)}
	}
	if visitErr != nil {
		return nil, "", fmt.Errorf("failed to fetch %s: %w", url, visitErr)
	}

	logger.Debug("fetch complete", "url", url)
	return body, contentType, nil
}

// Close releases resources.
func (f *Static) Close() error {
	return nil
}
