package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/lifequest/lifequest-api/internal/domain"
	"github.com/lifequest/lifequest-api/internal/service"
)

// MockJournalService implements service.JournalService for testing
type MockJournalService struct {
	// CreateEntryFn allows test cases to mock the CreateEntry behavior
	CreateEntryFn func(ctx context.Context, userID uuid.UUID, content string) (*service.CreateEntryResult, error)

	// GetEntryFn allows test cases to mock the GetEntry behavior
	GetEntryFn func(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)

	// ListEntriesFn allows test cases to mock the ListEntries behavior
	ListEntriesFn func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, error)

	// Default values used when functions aren't explicitly defined
	CreateResult *service.CreateEntryResult
	Entry        *domain.JournalEntry
	Entries      []*domain.JournalEntry
	Err          error
}

// CreateEntry implements the service.JournalService interface
func (m *MockJournalService) CreateEntry(ctx context.Context, userID uuid.UUID, content string) (*service.CreateEntryResult, error) {
	if m.CreateEntryFn != nil {
		return m.CreateEntryFn(ctx, userID, content)
	}
	return m.CreateResult, m.Err
}

// GetEntry implements the service.JournalService interface
func (m *MockJournalService) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if m.GetEntryFn != nil {
		return m.GetEntryFn(ctx, userID, entryID)
	}
	return m.Entry, m.Err
}

// ListEntries implements the service.JournalService interface
func (m *MockJournalService) ListEntries(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, error) {
	if m.ListEntriesFn != nil {
		return m.ListEntriesFn(ctx, userID, limit, offset)
	}
	return m.Entries, m.Err
}
