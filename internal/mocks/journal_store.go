package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lifequest/lifequest-api/internal/domain"
	"github.com/lifequest/lifequest-api/internal/store"
)

// MockJournalStore implements store.JournalStore for testing
type MockJournalStore struct {
	// CreateEntryFn allows test cases to mock the CreateEntry behavior
	CreateEntryFn func(ctx context.Context, entry *domain.JournalEntry) error

	// GetEntryFn allows test cases to mock the GetEntry behavior
	GetEntryFn func(ctx context.Context, id, userID uuid.UUID) (*domain.JournalEntry, error)

	// ListEntriesFn allows test cases to mock the ListEntries behavior
	ListEntriesFn func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, error)

	// RecentActivitiesFn allows test cases to mock the RecentActivities behavior
	RecentActivitiesFn func(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Activity, error)

	// Entries is the default in-memory backing map, keyed by entry ID.
	// Used when the corresponding function field is unset.
	Entries map[uuid.UUID]*domain.JournalEntry
}

// NewMockJournalStore creates a MockJournalStore with an empty backing map.
func NewMockJournalStore() *MockJournalStore {
	return &MockJournalStore{
		Entries: make(map[uuid.UUID]*domain.JournalEntry),
	}
}

// CreateEntry implements the store.JournalStore interface
func (m *MockJournalStore) CreateEntry(ctx context.Context, entry *domain.JournalEntry) error {
	if m.CreateEntryFn != nil {
		return m.CreateEntryFn(ctx, entry)
	}
	m.Entries[entry.ID] = entry
	return nil
}

// GetEntry implements the store.JournalStore interface
func (m *MockJournalStore) GetEntry(ctx context.Context, id, userID uuid.UUID) (*domain.JournalEntry, error) {
	if m.GetEntryFn != nil {
		return m.GetEntryFn(ctx, id, userID)
	}
	entry, exists := m.Entries[id]
	if !exists || entry.UserID != userID {
		return nil, store.ErrJournalEntryNotFound
	}
	return entry, nil
}

// ListEntries implements the store.JournalStore interface
func (m *MockJournalStore) ListEntries(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, error) {
	if m.ListEntriesFn != nil {
		return m.ListEntriesFn(ctx, userID, limit, offset)
	}
	entries := make([]*domain.JournalEntry, 0)
	for _, entry := range m.Entries {
		if entry.UserID == userID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

// RecentActivities implements the store.JournalStore interface
func (m *MockJournalStore) RecentActivities(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Activity, error) {
	if m.RecentActivitiesFn != nil {
		return m.RecentActivitiesFn(ctx, userID, limit)
	}
	activities := make([]*domain.Activity, 0)
	for _, entry := range m.Entries {
		if entry.UserID == userID {
			activities = append(activities, entry.Activities...)
		}
	}
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities, nil
}

// WithTx implements the store.JournalStore interface. The mock has no
// transaction state, so it returns itself.
func (m *MockJournalStore) WithTx(tx *sql.Tx) store.JournalStore {
	return m
}
