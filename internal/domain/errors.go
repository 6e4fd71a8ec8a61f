// Package domain holds the core types and error taxonomy of the search API.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownResource signals a resource type with no configured Solr core.
	ErrUnknownResource = errors.New("unknown resource type")
	// ErrInvalidDocument signals a document payload that does not conform to expectations.
	ErrInvalidDocument = errors.New("document does not conform to expectations")
	// ErrUpstreamUnavailable signals that Solr could not be reached.
	ErrUpstreamUnavailable = errors.New("search backend unavailable")
	// ErrUpstream signals an error reported by Solr itself.
	ErrUpstream = errors.New("search backend error")
)

// UpstreamError wraps ErrUpstream with the status and message Solr reported,
// so the transport layer can propagate them to the client.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", ErrUpstream.Error(), e.Status, e.Message)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// NewUpstreamError creates an upstream error from a Solr error payload.
func NewUpstreamError(status int, message string) error {
	return &UpstreamError{Status: status, Message: message}
}
