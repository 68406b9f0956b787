package scraper

import (
	"context"
	"log/slog"

	"github.com/delray/scrapebot/engine"
	"github.com/delray/scrapebot/extract"
	"github.com/delray/scrapebot/models"
)

// Scraper fetches one page and extracts an event guess from it.
// It holds no per-request state and is safe for concurrent use.
type Scraper struct {
	engine engine.Engine
}

// NewScraper creates a Scraper that fetches through eng.
func NewScraper(eng engine.Engine) *Scraper {
	return &Scraper{engine: eng}
}

// Scrape runs fetch → parse → extract for url. It never fails: a fetch
// error degrades to empty page text, which yields an all-null guess and
// no links.
func (s *Scraper) Scrape(ctx context.Context, url string) *models.ScrapeResult {
	page := s.fetch(ctx, url)

	doc := extract.Parse(page)

	return &models.ScrapeResult{
		HTML:  page,
		Links: extract.Links(doc),
		Guess: extract.Guess(doc),
	}
}

// fetch returns the page text or "" on any failure.
func (s *Scraper) fetch(ctx context.Context, url string) string {
	result, err := s.engine.Fetch(ctx, &engine.FetchRequest{URL: url})
	if err != nil {
		slog.Warn("fetch failed, continuing with empty page",
			"url", url, "engine", s.engine.Name(), "error", err,
		)
		return ""
	}
	slog.Debug("page fetched",
		"url", url,
		"finalURL", result.FinalURL,
		"status", result.StatusCode,
		"contentType", result.ContentType,
		"bytes", len(result.HTML),
		"truncated", result.Truncated,
	)
	return result.HTML
}
