// Package mocks provides hand-written mock implementations of the
// store and service interfaces for unit testing. Each mock exposes
// function fields for per-test customization with sensible defaults.
package mocks
