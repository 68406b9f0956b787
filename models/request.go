package models

// ScrapeRequest is the payload for POST /api/scrape.
type ScrapeRequest struct {
	// URL is the page to fetch. Required; no format validation beyond
	// presence.
	URL string `json:"url" binding:"required"`
}
