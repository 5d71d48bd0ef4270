package ynab

import (
	"errors"

	"github.com/EdgeCaseLabs/ynab-mcp/internal/types"
)

// ErrMissingAccessToken is returned by NewClient when no access token is
// configured. This is a fatal construction error, not a per-call error.
var ErrMissingAccessToken = errors.New("ynab: access token is required")

// Sentinel errors surfaced by the transport. These are aliases so callers
// can match with errors.Is without importing internal packages.
var (
	// ErrNotAuthenticated is returned when the token is missing or rejected
	ErrNotAuthenticated = types.ErrNotAuthenticated

	// ErrRateLimited is returned when rate limited
	ErrRateLimited = types.ErrRateLimited

	// ErrTimeout is returned on timeout
	ErrTimeout = types.ErrTimeout

	// ErrNotFound is returned when a resource does not exist
	ErrNotFound = types.ErrNotFound

	// ErrServerError is returned for remote server errors
	ErrServerError = types.ErrServerError
)

// Error is the structured API error carried alongside the sentinels.
type Error = types.Error

// IsRetryable checks if error is retryable
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimited) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServerError) {
		return true
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 || apiErr.StatusCode == 429
	}

	return false
}
