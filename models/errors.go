package models

// Client-facing error messages. These are the only two failures the
// scrape endpoint reports; everything after validation degrades to empty
// values.
const (
	ErrMsgMethodNotAllowed = "POST only"
	ErrMsgMissingURL       = "Missing url"
)

// ErrorResponse is the JSON body of a 4xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse wraps msg in an ErrorResponse.
func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}
