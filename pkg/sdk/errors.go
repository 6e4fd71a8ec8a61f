package searchapi

import "fmt"

// APIError is a structured error response from the server.
// Use errors.As() to inspect the code and upstream status.
type APIError struct {
	StatusCode int    // HTTP status returned by the API
	Code       string // machine-readable error code
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("searchapi: %s (%s, http %d)", e.Message, e.Code, e.StatusCode)
}

// Error codes returned by the API.
const (
	CodeBadRequest          = "bad_request"
	CodeInvalidDocument     = "invalid_document"
	CodeUnknownResource     = "unknown_resource"
	CodeUpstreamError       = "upstream_error"
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeInternalError       = "internal_error"
)
