package engine

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

const (
	// DefaultUserAgent identifies the bot to the sites it fetches.
	DefaultUserAgent = "DelRayScraperBot/1.0"

	// DefaultMaxBytes is the hard cap on returned page text (200 KiB).
	DefaultMaxBytes = 200 * 1024

	// DefaultTimeout bounds a single fetch, including reading the body.
	DefaultTimeout = 15 * time.Second

	// readFactor bounds how many raw bytes are read per byte of output.
	// No supported charset shrinks by more than 2x when decoded to UTF-8.
	readFactor = 4
)

// HTTPEngine fetches pages with a plain net/http client and returns the
// body as UTF-8 text cut to MaxBytes.
type HTTPEngine struct {
	client    *http.Client
	userAgent string
	maxBytes  int
	timeout   time.Duration
}

// HTTPOption configures an HTTPEngine.
type HTTPOption func(*HTTPEngine)

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) HTTPOption {
	return func(e *HTTPEngine) {
		if ua != "" {
			e.userAgent = ua
		}
	}
}

// WithMaxBytes overrides the byte cap on returned text.
func WithMaxBytes(n int) HTTPOption {
	return func(e *HTTPEngine) {
		if n > 0 {
			e.maxBytes = n
		}
	}
}

// WithTimeout overrides the default per-fetch timeout.
func WithTimeout(d time.Duration) HTTPOption {
	return func(e *HTTPEngine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// NewHTTPEngine creates an HTTPEngine with the bot User-Agent, a 200 KiB
// cap and a 15s timeout unless overridden.
func NewHTTPEngine(opts ...HTTPOption) *HTTPEngine {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 10 * time.Second,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
	}
	e := &HTTPEngine{
		client: &http.Client{
			Transport:     transport,
			CheckRedirect: checkRedirect,
		},
		userAgent: DefaultUserAgent,
		maxBytes:  DefaultMaxBytes,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= 10 {
		return fmt.Errorf("too many redirects")
	}
	return nil
}

func (e *HTTPEngine) Name() string { return "http" }

// Fetch issues a GET for req.URL and returns the decoded body. Any status
// code is accepted; only transport and read failures are errors.
func (e *HTTPEngine) Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("http_engine: build request: %w", err)
	}
	httpReq.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("http_engine: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, int64(e.maxBytes)*readFactor))
	if err != nil {
		return nil, fmt.Errorf("http_engine: read body: %w", err)
	}

	ct := resp.Header.Get("Content-Type")
	text, truncated := Truncate(decode(raw, ct), e.maxBytes)

	return &FetchResult{
		HTML:        text,
		StatusCode:  resp.StatusCode,
		ContentType: ct,
		FinalURL:    resp.Request.URL.String(),
		EngineName:  e.Name(),
		Truncated:   truncated,
	}, nil
}

// Truncate keeps the first n bytes of s. The cut is exact, so a
// multi-byte rune straddling the boundary is split. n <= 0 disables it.
func Truncate(s string, n int) (string, bool) {
	if n <= 0 || len(s) <= n {
		return s, false
	}
	return s[:n], true
}

// decode converts raw to UTF-8. A BOM or Content-Type charset is always
// honoured. Otherwise the bytes are kept as UTF-8 when they are valid
// UTF-8, and only transcoded with the <meta> prescan result (or the
// windows-1252 fallback) when they are not. Undecodable input is returned
// as-is.
func decode(raw []byte, contentType string) string {
	if len(raw) == 0 {
		return ""
	}
	enc, _, certain := charset.DetermineEncoding(raw, contentType)
	if !certain && validUTF8(raw) {
		return string(raw)
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// validUTF8 reports whether b is valid UTF-8, ignoring one incomplete rune
// at the end left by the bounded read.
func validUTF8(b []byte) bool {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				b = b[:i]
			}
			break
		}
	}
	return utf8.Valid(b)
}
