package engine

import "context"

// Engine is the interface that all fetch engines must implement.
type Engine interface {
	// Name returns the engine identifier (e.g. "http").
	Name() string

	// Fetch retrieves the page content for the given request.
	Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error)
}

// FetchRequest contains everything an engine needs to fetch a page.
type FetchRequest struct {
	URL string
}

// FetchResult is the output of a successful engine fetch.
type FetchResult struct {
	// HTML is the decoded page text, already cut to the engine's byte cap.
	HTML        string
	StatusCode  int
	ContentType string
	FinalURL    string
	EngineName  string

	// Truncated reports whether the body was longer than the byte cap.
	Truncated bool
}
