package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in service-specific error types
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrNotOwned indicates a resource is owned by a different user than the one making the request.
	// API layer should map this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrEntryNotFound indicates that the journal entry does not exist
	// (or is not visible to the requesting user).
	// API layer should map this to HTTP 404 Not Found.
	ErrEntryNotFound = errors.New("journal entry not found")

	// ErrEmptyContent indicates a journal entry was submitted with no content.
	// API layer should map this to HTTP 400 Bad Request.
	ErrEmptyContent = errors.New("journal entry content cannot be empty")
)
