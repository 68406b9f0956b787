package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/delray/scrapebot/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEngine struct {
	html string
	err  error
	urls []string
}

func (e *stubEngine) Name() string { return "stub" }

func (e *stubEngine) Fetch(_ context.Context, req *engine.FetchRequest) (*engine.FetchResult, error) {
	e.urls = append(e.urls, req.URL)
	if e.err != nil {
		return nil, e.err
	}
	return &engine.FetchResult{HTML: e.html, StatusCode: http.StatusOK, EngineName: e.Name()}, nil
}

func TestScrape_ExtractsGuessAndLinks(t *testing.T) {
	eng := &stubEngine{html: `<html><head>
<meta property="og:title" content="Jazz Night">
<title>Ignored</title>
<meta name="description" content="Live music downtown">
</head><body>
<time datetime="2024-05-01T20:00">Doors at 8</time>
<div class="venue">Arts Garage</div>
<address>94 NE 2nd Ave</address>
<a href="#top">top</a><a href="/about">about</a><a href="https://x.com">x</a>
</body></html>`}

	res := NewScraper(eng).Scrape(context.Background(), "https://example.com/e/1")

	require.Equal(t, []string{"https://example.com/e/1"}, eng.urls)
	assert.Equal(t, eng.html, res.HTML)
	assert.Equal(t, []string{"/about", "https://x.com"}, res.Links)
	require.NotNil(t, res.Guess.EventTitle)
	assert.Equal(t, "Jazz Night", *res.Guess.EventTitle)
	require.NotNil(t, res.Guess.Start)
	assert.Equal(t, "2024-05-01T20:00", *res.Guess.Start)
	assert.Nil(t, res.Guess.End)
	require.NotNil(t, res.Guess.Location)
	assert.Equal(t, "Arts Garage", *res.Guess.Location)
	require.NotNil(t, res.Guess.Address)
	assert.Equal(t, "94 NE 2nd Ave", *res.Guess.Address)
	require.NotNil(t, res.Guess.Summary)
	assert.Equal(t, "Live music downtown", *res.Guess.Summary)
}

func TestScrape_FetchFailureDegrades(t *testing.T) {
	eng := &stubEngine{err: errors.New("dial tcp: connection refused")}

	res := NewScraper(eng).Scrape(context.Background(), "https://unreachable.invalid")

	assert.Equal(t, "", res.HTML)
	assert.NotNil(t, res.Links)
	assert.Empty(t, res.Links)
	assert.Nil(t, res.Guess.EventTitle)
	assert.Nil(t, res.Guess.Start)
	assert.Nil(t, res.Guess.End)
	assert.Nil(t, res.Guess.Location)
	assert.Nil(t, res.Guess.Address)
	assert.Nil(t, res.Guess.Summary)
}

func TestScrape_Idempotent(t *testing.T) {
	eng := &stubEngine{html: `<title>Fixed</title><p>same</p><a href="/a">a</a><a href="/b">b</a>`}
	s := NewScraper(eng)

	first := s.Scrape(context.Background(), "https://example.com")
	second := s.Scrape(context.Background(), "https://example.com")

	assert.Equal(t, first.Guess, second.Guess)
	assert.Equal(t, first.Links, second.Links)
}

func TestScrape_WithHTTPEngine(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<title>Sunset Cinema</title><a href="/tickets">Tickets</a>`))
	}))
	defer srv.Close()

	res := NewScraper(engine.NewHTTPEngine()).Scrape(context.Background(), srv.URL)

	require.NotNil(t, res.Guess.EventTitle)
	assert.Equal(t, "Sunset Cinema", *res.Guess.EventTitle)
	assert.Equal(t, []string{"/tickets"}, res.Links)
}
