package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserStats(t *testing.T) {
	t.Parallel()

	t.Run("zeroed stats for valid user", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		stats, err := NewUserStats(userID)
		require.NoError(t, err)

		assert.Equal(t, userID, stats.UserID)
		assert.Equal(t, 0, stats.TotalExp)
		assert.Len(t, stats.CategoryTotals, len(Categories()))
		for _, category := range Categories() {
			assert.Equal(t, 0, stats.CategoryTotal(category))
		}
	})

	t.Run("nil user ID rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewUserStats(uuid.Nil)
		assert.ErrorIs(t, err, ErrEmptyStatsUserID)
	})
}

func TestUserStatsValidate(t *testing.T) {
	t.Parallel()

	newValid := func(t *testing.T) *UserStats {
		t.Helper()
		stats, err := NewUserStats(uuid.New())
		require.NoError(t, err)
		return stats
	}

	t.Run("negative total exp", func(t *testing.T) {
		t.Parallel()

		stats := newValid(t)
		stats.TotalExp = -1
		assert.ErrorIs(t, stats.Validate(), ErrNegativeTotalExp)
	})

	t.Run("negative category total", func(t *testing.T) {
		t.Parallel()

		stats := newValid(t)
		stats.CategoryTotals[CategoryHabits] = -5
		assert.ErrorIs(t, stats.Validate(), ErrNegativeCategoryExp)
	})

	t.Run("unknown category key", func(t *testing.T) {
		t.Parallel()

		stats := newValid(t)
		stats.CategoryTotals["fitness"] = 10
		assert.ErrorIs(t, stats.Validate(), ErrUnknownCategoryTotal)
	})
}

func TestUserStatsClone(t *testing.T) {
	t.Parallel()

	stats, err := NewUserStats(uuid.New())
	require.NoError(t, err)
	stats.TotalExp = 100
	stats.CategoryTotals[CategorySkills] = 60

	clone := stats.Clone()
	clone.TotalExp = 200
	clone.CategoryTotals[CategorySkills] = 120

	assert.Equal(t, 100, stats.TotalExp)
	assert.Equal(t, 60, stats.CategoryTotal(CategorySkills))
	assert.Equal(t, 200, clone.TotalExp)
	assert.Equal(t, 120, clone.CategoryTotal(CategorySkills))
	assert.Equal(t, stats.UserID, clone.UserID)
}
