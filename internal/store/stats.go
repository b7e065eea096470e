package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lifequest/lifequest-api/internal/domain"
)

// UserStatsStore defines the interface for cumulative user EXP state
// persistence. Stats rows are created lazily: a user who has never
// earned EXP reads back as a zeroed stats value.
type UserStatsStore interface {
	// Get retrieves the cumulative stats for a user, or a zeroed stats
	// value if the user has not earned any EXP yet. Never returns
	// ErrUserStatsNotFound for a valid user ID. A transaction-bound
	// store (obtained via WithTx) additionally locks the user's row
	// until the transaction ends, so concurrent read-apply-save cycles
	// for the same user serialize rather than overwrite each other.
	Get(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)

	// Save upserts the cumulative stats row for a user. Callers that
	// read-modify-write must hold the row lock taken by a
	// transaction-bound Get, or a concurrent writer can clobber the
	// totals.
	Save(ctx context.Context, stats *domain.UserStats) error

	// WithTx returns a UserStatsStore instance bound to the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStatsStore
}
