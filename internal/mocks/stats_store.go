package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lifequest/lifequest-api/internal/domain"
	"github.com/lifequest/lifequest-api/internal/store"
)

// MockUserStatsStore implements store.UserStatsStore for testing
type MockUserStatsStore struct {
	// GetFn allows test cases to mock the Get behavior
	GetFn func(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)

	// SaveFn allows test cases to mock the Save behavior
	SaveFn func(ctx context.Context, stats *domain.UserStats) error

	// Stats is the default in-memory backing map, keyed by user ID.
	// Used when the corresponding function field is unset. Get returns
	// a zeroed stats value for users with no entry, mirroring the lazy
	// row creation of the real store.
	Stats map[uuid.UUID]*domain.UserStats
}

// NewMockUserStatsStore creates a MockUserStatsStore with an empty
// backing map.
func NewMockUserStatsStore() *MockUserStatsStore {
	return &MockUserStatsStore{
		Stats: make(map[uuid.UUID]*domain.UserStats),
	}
}

// Get implements the store.UserStatsStore interface
func (m *MockUserStatsStore) Get(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID)
	}
	stats, exists := m.Stats[userID]
	if !exists {
		return domain.NewUserStats(userID)
	}
	return stats, nil
}

// Save implements the store.UserStatsStore interface
func (m *MockUserStatsStore) Save(ctx context.Context, stats *domain.UserStats) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, stats)
	}
	m.Stats[stats.UserID] = stats
	return nil
}

// WithTx implements the store.UserStatsStore interface. The mock has no
// transaction state, so it returns itself.
func (m *MockUserStatsStore) WithTx(tx *sql.Tx) store.UserStatsStore {
	return m
}
