package models

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrMissingLookup indicates neither a handle nor an id was supplied
	ErrMissingLookup = errors.New("provide either 'handle' or 'id'")

	// ErrChannelNotFound indicates no channel matched the lookup
	ErrChannelNotFound = errors.New("channel not found")
)

// UpstreamError is returned when the YouTube API answers with a non-200
// status. The status code is mirrored back to the caller and Detail holds
// a truncated excerpt of the upstream body.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("youtube api returned status %d: %s", e.StatusCode, e.Detail)
}
