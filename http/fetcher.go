// Package http provides an HTTP-based implementation of sharh.Fetcher for
// static pages served in legacy single-byte encodings.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/sharh"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultCharset is assumed for pages that declare no encoding and are not
// valid UTF-8.
const DefaultCharset = "windows-1256"

// DefaultUserAgent identifies the fetcher to servers.
const DefaultUserAgent = "Mozilla/5.0 (compatible; sharh/1.0)"

// DefaultMaxBodySize caps how much of a response is read.
const DefaultMaxBodySize = 8 << 20

// Ensure Fetcher implements sharh.Fetcher at compile time.
var _ sharh.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests and decodes
// it to UTF-8.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	charset   string
	maxBody   int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithDefaultCharset sets the encoding label used when a page does not
// declare one. Unknown labels fall back to DefaultCharset.
func WithDefaultCharset(label string) Option {
	return func(f *Fetcher) {
		f.charset = label
	}
}

// WithMaxBodySize limits the number of bytes read from a response. Larger
// responses fail instead of being truncated.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBody = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		charset:   DefaultCharset,
		maxBody:   DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return "", sharh.Errorf(sharh.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return "", err
	}
	if int64(len(body)) > f.maxBody {
		return "", fmt.Errorf("response from %s exceeds %d bytes", url, f.maxBody)
	}

	return f.decode(body, resp.Header.Get("Content-Type"))
}

// decode converts body to UTF-8. A BOM, the Content-Type charset or a <meta>
// declaration wins; otherwise valid UTF-8 is kept and anything else is read
// as the default charset.
func (f *Fetcher) decode(body []byte, contentType string) (string, error) {
	enc, name, certain := charset.DetermineEncoding(body, contentType)
	if !certain && name == "windows-1252" && !declaresCharset(body) {
		enc = f.fallback()
	}

	out, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	return string(out), nil
}

func (f *Fetcher) fallback() encoding.Encoding {
	if e, _ := charset.Lookup(f.charset); e != nil {
		return e
	}
	e, _ := charset.Lookup(DefaultCharset)
	return e
}

// declaresCharset reports whether the prescan window of the document
// mentions a charset. DetermineEncoding reports its locale guess and a
// declared windows-1252 the same way.
func declaresCharset(body []byte) bool {
	if len(body) > 1024 {
		body = body[:1024]
	}
	return bytes.Contains(bytes.ToLower(body), []byte("charset"))
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}
