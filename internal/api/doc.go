// Package api implements the HTTP handlers for the journal, stats, and
// authentication endpoints, plus the error mapping between internal
// errors and HTTP responses.
package api
