package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for JournalEntry
var (
	ErrEmptyJournalID      = errors.New("journal entry ID cannot be empty")
	ErrEmptyJournalUserID  = errors.New("journal entry user ID cannot be empty")
	ErrEmptyJournalContent = errors.New("journal entry content cannot be empty")
	ErrNegativeExpGained   = errors.New("journal entry EXP gained cannot be negative")
)

// JournalEntry represents a free-text journal entry submitted by a user.
// ExpGained records the total EXP granted by the activities extracted
// from the entry at creation time; it is fixed once the entry is stored.
type JournalEntry struct {
	ID         uuid.UUID   `json:"id"`
	UserID     uuid.UUID   `json:"user_id"`
	Content    string      `json:"content"`
	ExpGained  int         `json:"exp_gained"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
	Activities []*Activity `json:"activities,omitempty"`
}

// NewJournalEntry creates a new JournalEntry with the given user ID and content.
// It generates a new UUID for the entry ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewJournalEntry(userID uuid.UUID, content string) (*JournalEntry, error) {
	entry := &JournalEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the JournalEntry has valid data.
// Returns an error if any field fails validation.
func (e *JournalEntry) Validate() error {
	if e.ID == uuid.Nil {
		return ErrEmptyJournalID
	}

	if e.UserID == uuid.Nil {
		return ErrEmptyJournalUserID
	}

	if e.Content == "" {
		return ErrEmptyJournalContent
	}

	if e.ExpGained < 0 {
		return ErrNegativeExpGained
	}

	return nil
}
