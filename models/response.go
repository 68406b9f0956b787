package models

// ScrapeResult is the 200 response for POST /api/scrape.
type ScrapeResult struct {
	// HTML is the fetched page text, cut to the byte cap. Empty when the
	// fetch failed.
	HTML string `json:"html"`

	// Links holds up to 20 anchor hrefs in document order, fragment-only
	// hrefs excluded. Never nil.
	Links []string `json:"links"`

	// Guess is the best-effort event metadata.
	Guess EventGuess `json:"guess"`
}

// EventGuess holds heuristically extracted event fields. A nil field
// serializes as null and means no signal was found.
type EventGuess struct {
	EventTitle *string `json:"event_title"`
	Start      *string `json:"start"`
	End        *string `json:"end"` // never populated
	Location   *string `json:"location"`
	Address    *string `json:"address"`
	Summary    *string `json:"summary"`
}

// HealthResponse is the response for GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
