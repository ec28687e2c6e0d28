// Package fetch downloads geometry documents over HTTP so that the CLI can
// render a URL as readily as a file.
//
// Bodies are cached under the URL hash and transient failures (network
// errors, 5xx responses) are retried with backoff:
//
//	c := fetch.NewClient(cache.NewNullCache(), time.Hour, nil)
//	data, err := c.Fetch(ctx, "https://example.com/parks.geojson", false)
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/matzehuels/geosvg/pkg/buildinfo"
	"github.com/matzehuels/geosvg/pkg/cache"
	errs "github.com/matzehuels/geosvg/pkg/errors"
)

const (
	httpTimeout = 30 * time.Second

	// MaxBodySize bounds a downloaded document.
	MaxBodySize = 32 << 20
)

var (
	// ErrNotFound is returned when the server answers 404.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// DefaultBackoff spaces retries for a remote web server.
var DefaultBackoff = cache.Backoff{Attempts: 3, Delay: 500 * time.Millisecond}

// Client fetches and caches remote documents.
type Client struct {
	http    *http.Client
	cache   cache.Cache
	ttl     time.Duration
	headers map[string]string
	backoff cache.Backoff
}

// NewClient creates a Client storing bodies in c for ttl. Headers are sent
// with every request; pass nil for none.
func NewClient(c cache.Cache, ttl time.Duration, headers map[string]string) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Client{
		http:    &http.Client{Timeout: httpTimeout},
		cache:   c,
		ttl:     ttl,
		headers: headers,
		backoff: DefaultBackoff,
	}
}

// IsURL reports whether s names an http or https resource.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Key is the cache key of a downloaded body.
func Key(rawURL string) string {
	return "fetch:" + cache.Hash([]byte(rawURL))
}

// Fetch returns the body at rawURL. Unless refresh is set, a cached body is
// returned without a request.
func (c *Client) Fetch(ctx context.Context, rawURL string, refresh bool) ([]byte, error) {
	if !IsURL(rawURL) {
		return nil, errs.New(errs.ErrCodeInvalidInput, "not an http(s) URL: %q", rawURL)
	}
	key := Key(rawURL)
	if !refresh {
		if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
			return data, nil
		}
	}

	var body []byte
	err := cache.RetryWithBackoff(ctx, c.backoff, func() error {
		var err error
		body, err = c.get(ctx, rawURL)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "fetch %s", rawURL)
		}
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "fetch %s", rawURL)
	}

	_ = c.cache.Set(ctx, key, body, c.ttl)
	return body, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", buildinfo.Product())
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, cache.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	defer resp.Body.Close()

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, cache.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	if len(data) > MaxBodySize {
		return nil, fmt.Errorf("body exceeds %d bytes", MaxBodySize)
	}
	return data, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return cache.Retryable(fmt.Errorf("%w: status %d", ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

// Name returns the last path element of rawURL for display and format
// detection, e.g. "parks.geojson".
func Name(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if i := strings.LastIndex(u.Path, "/"); i >= 0 && i < len(u.Path)-1 {
		return u.Path[i+1:]
	}
	return u.Host
}
