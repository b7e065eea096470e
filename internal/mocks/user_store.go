package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lifequest/lifequest-api/internal/domain"
	"github.com/lifequest/lifequest-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// CreateFn allows test cases to mock the Create behavior
	CreateFn func(ctx context.Context, user *domain.User) error

	// GetByIDFn allows test cases to mock the GetByID behavior
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmailFn allows test cases to mock the GetByEmail behavior
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)

	// Users is the default in-memory backing map, keyed by email.
	// Used when the corresponding function field is unset.
	Users map[string]*domain.User
}

// NewMockUserStore creates a MockUserStore with an empty backing map.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Create implements the store.UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if _, exists := m.Users[user.Email]; exists {
		return store.ErrEmailExists
	}
	m.Users[user.Email] = user
	return nil
}

// GetByID implements the store.UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmail implements the store.UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// WithTx implements the store.UserStore interface. The mock has no
// transaction state, so it returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
