package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJournalEntry(t *testing.T) {
	t.Parallel()

	t.Run("valid entry", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		entry, err := NewJournalEntry(userID, "I exercised for 30 minutes.")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, entry.ID)
		assert.Equal(t, userID, entry.UserID)
		assert.Equal(t, "I exercised for 30 minutes.", entry.Content)
		assert.Equal(t, 0, entry.ExpGained)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("nil user ID rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewJournalEntry(uuid.Nil, "content")
		assert.ErrorIs(t, err, ErrEmptyJournalUserID)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewJournalEntry(uuid.New(), "")
		assert.ErrorIs(t, err, ErrEmptyJournalContent)
	})
}

func TestJournalEntryValidate(t *testing.T) {
	t.Parallel()

	entry, err := NewJournalEntry(uuid.New(), "content")
	require.NoError(t, err)

	entry.ExpGained = -1
	assert.ErrorIs(t, entry.Validate(), ErrNegativeExpGained)
}
