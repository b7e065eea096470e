package leveling

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifequest/lifequest-api/internal/domain"
)

func mustNewActivity(t *testing.T, category domain.ActivityCategory, expValue int) *domain.Activity {
	t.Helper()

	activity, err := domain.NewActivity(uuid.New(), "test action", category, expValue)
	require.NoError(t, err)
	return activity
}

func mustNewStats(t *testing.T, totalExp int) *domain.UserStats {
	t.Helper()

	stats, err := domain.NewUserStats(uuid.New())
	require.NoError(t, err)
	stats.TotalExp = totalExp
	return stats
}

func TestLevelInfo(t *testing.T) {
	t.Parallel()

	service := NewDefaultService()

	tests := []struct {
		name     string
		totalExp int
		expected Info
	}{
		{
			name:     "fresh user",
			totalExp: 0,
			expected: Info{Level: 1, TotalExp: 0, CurrentLevelExp: 0, NextLevelExp: 50, Progress: 0},
		},
		{
			name:     "mid level two",
			totalExp: 125,
			expected: Info{Level: 2, TotalExp: 125, CurrentLevelExp: 50, NextLevelExp: 200, Progress: 50},
		},
		{
			name:     "exactly at a threshold",
			totalExp: 200,
			expected: Info{Level: 3, TotalExp: 200, CurrentLevelExp: 200, NextLevelExp: 450, Progress: 0},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			info := service.LevelInfo(tc.totalExp)
			assert.Equal(t, tc.expected.Level, info.Level)
			assert.Equal(t, tc.expected.TotalExp, info.TotalExp)
			assert.Equal(t, tc.expected.CurrentLevelExp, info.CurrentLevelExp)
			assert.Equal(t, tc.expected.NextLevelExp, info.NextLevelExp)
			assert.InDelta(t, tc.expected.Progress, info.Progress, 0.001)
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	service := NewDefaultService()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("batch crossing a threshold levels up", func(t *testing.T) {
		t.Parallel()

		stats := mustNewStats(t, 40)
		activities := []*domain.Activity{
			mustNewActivity(t, domain.CategoryHabits, 15),
		}

		result, err := service.Apply(stats, activities, now)
		require.NoError(t, err)

		assert.Equal(t, 15, result.Gained)
		assert.Equal(t, 1, result.OldLevel)
		assert.Equal(t, 2, result.NewLevel)
		assert.True(t, result.LeveledUp)
		assert.Equal(t, 55, result.Stats.TotalExp)
		assert.Equal(t, 15, result.Stats.CategoryTotal(domain.CategoryHabits))
		assert.Equal(t, now, result.Stats.UpdatedAt)
	})

	t.Run("batch within a level does not level up", func(t *testing.T) {
		t.Parallel()

		stats := mustNewStats(t, 10)
		activities := []*domain.Activity{
			mustNewActivity(t, domain.CategoryKnowledge, 15),
			mustNewActivity(t, domain.CategorySkills, 20),
		}

		result, err := service.Apply(stats, activities, now)
		require.NoError(t, err)

		assert.Equal(t, 35, result.Gained)
		assert.Equal(t, 1, result.OldLevel)
		assert.Equal(t, 1, result.NewLevel)
		assert.False(t, result.LeveledUp)
		assert.Equal(t, 45, result.Stats.TotalExp)
		assert.Equal(t, 15, result.Stats.CategoryTotal(domain.CategoryKnowledge))
		assert.Equal(t, 20, result.Stats.CategoryTotal(domain.CategorySkills))
	})

	t.Run("empty batch is a no-op gain", func(t *testing.T) {
		t.Parallel()

		stats := mustNewStats(t, 100)

		result, err := service.Apply(stats, nil, now)
		require.NoError(t, err)

		assert.Equal(t, 0, result.Gained)
		assert.False(t, result.LeveledUp)
		assert.Equal(t, 100, result.Stats.TotalExp)
	})

	t.Run("input snapshot is not mutated", func(t *testing.T) {
		t.Parallel()

		stats := mustNewStats(t, 40)
		before := stats.UpdatedAt
		activities := []*domain.Activity{
			mustNewActivity(t, domain.CategoryNetwork, 15),
		}

		_, err := service.Apply(stats, activities, now)
		require.NoError(t, err)

		assert.Equal(t, 40, stats.TotalExp)
		assert.Equal(t, 0, stats.CategoryTotal(domain.CategoryNetwork))
		assert.Equal(t, before, stats.UpdatedAt)
	})

	t.Run("nil stats rejected", func(t *testing.T) {
		t.Parallel()

		_, err := service.Apply(nil, nil, now)
		assert.ErrorIs(t, err, ErrNilStats)
	})

	t.Run("nil activity in batch rejected", func(t *testing.T) {
		t.Parallel()

		stats := mustNewStats(t, 0)
		activities := []*domain.Activity{
			mustNewActivity(t, domain.CategoryHabits, 10),
			nil,
		}

		_, err := service.Apply(stats, activities, now)
		assert.ErrorIs(t, err, ErrNilActivity)
	})

	t.Run("invalid category rejects the whole batch", func(t *testing.T) {
		t.Parallel()

		stats := mustNewStats(t, 0)
		bad := mustNewActivity(t, domain.CategoryHabits, 10)
		bad.Category = "unknown"

		_, err := service.Apply(stats, []*domain.Activity{bad}, now)
		assert.ErrorIs(t, err, ErrInvalidActivity)
		assert.Equal(t, 0, stats.TotalExp)
	})

	t.Run("negative exp rejects the whole batch", func(t *testing.T) {
		t.Parallel()

		stats := mustNewStats(t, 0)
		bad := mustNewActivity(t, domain.CategoryHabits, 10)
		bad.ExpValue = -1

		_, err := service.Apply(stats, []*domain.Activity{bad}, now)
		assert.ErrorIs(t, err, ErrInvalidActivity)
	})
}

func TestServiceWithCustomParams(t *testing.T) {
	t.Parallel()

	service := NewServiceWithParams(&Params{LevelExpBase: 100})

	assert.Equal(t, 100, service.RequiredExp(1))
	assert.Equal(t, 400, service.RequiredExp(2))
	assert.Equal(t, 1, service.CalculateLevel(99))
	assert.Equal(t, 2, service.CalculateLevel(100))
}
