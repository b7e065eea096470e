// Package service provides application-level services for managing
// journal entries, user stats, and users. Services orchestrate the
// domain engines and the store layer, and own the transaction
// boundaries for multi-step operations.
package service
