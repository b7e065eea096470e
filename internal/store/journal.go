package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lifequest/lifequest-api/internal/domain"
)

// JournalStore defines the interface for journal entry and activity
// persistence. Activities are owned by their journal entry; they are
// written once at entry creation and never mutated.
type JournalStore interface {
	// CreateEntry saves a new journal entry together with its extracted
	// activities. Must be called inside a transaction (via WithTx) so
	// the entry, its activities and the stats update commit atomically.
	// Returns ErrInvalidEntity if the user does not exist.
	CreateEntry(ctx context.Context, entry *domain.JournalEntry) error

	// GetEntry retrieves a journal entry with its activities, scoped to
	// the owning user. Returns ErrJournalEntryNotFound if the entry does
	// not exist or belongs to a different user.
	GetEntry(ctx context.Context, id, userID uuid.UUID) (*domain.JournalEntry, error)

	// ListEntries retrieves a user's journal entries, newest first, with
	// their activities attached. Returns an empty slice if none match.
	ListEntries(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, error)

	// RecentActivities retrieves a user's most recently recorded
	// activities across all entries, newest first.
	RecentActivities(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Activity, error)

	// WithTx returns a JournalStore instance bound to the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) JournalStore
}
