package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifequest/lifequest-api/internal/domain"
)

func TestExtractActivities(t *testing.T) {
	t.Parallel()

	service := NewDefaultService()

	t.Run("single exercise sentence with duration", func(t *testing.T) {
		t.Parallel()

		activities := service.ExtractActivities("I exercised for 30 minutes.")

		require.Len(t, activities, 1)
		assert.Equal(t, "I exercised for 30 minutes", activities[0].Action)
		assert.Equal(t, domain.CategoryHabits, activities[0].Category)
		assert.Equal(t, 20, activities[0].ExpValue)
	})

	t.Run("reading sentence rounds fractional exp up", func(t *testing.T) {
		t.Parallel()

		activities := service.ExtractActivities("I read about machine learning for 45 minutes.")

		require.Len(t, activities, 1)
		assert.Equal(t, domain.CategoryKnowledge, activities[0].Category)
		assert.Equal(t, 23, activities[0].ExpValue)
	})

	t.Run("unclassifiable text yields no activities", func(t *testing.T) {
		t.Parallel()

		activities := service.ExtractActivities("Today was fine.")

		assert.Empty(t, activities)
	})

	t.Run("empty text yields no activities", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, service.ExtractActivities(""))
	})

	t.Run("multiple sentences preserve source order", func(t *testing.T) {
		t.Parallel()

		text := "I exercised this morning. I read a great book. I met with a client."
		activities := service.ExtractActivities(text)

		require.Len(t, activities, 3)
		assert.Equal(t, domain.CategoryHabits, activities[0].Category)
		assert.Equal(t, 10, activities[0].ExpValue)
		assert.Equal(t, domain.CategoryKnowledge, activities[1].Category)
		assert.Equal(t, 15, activities[1].ExpValue)
		assert.Equal(t, domain.CategoryNetwork, activities[2].Category)
		assert.Equal(t, 15, activities[2].ExpValue)
	})

	t.Run("keyword fallback classifies pattern misses", func(t *testing.T) {
		t.Parallel()

		activities := service.ExtractActivities("My money budget needs work.")

		require.Len(t, activities, 1)
		assert.Equal(t, domain.CategoryFinancial, activities[0].Category)
		assert.Equal(t, 15, activities[0].ExpValue)
	})

	t.Run("mixed classifiable and unclassifiable sentences", func(t *testing.T) {
		t.Parallel()

		text := "Today was fine. I went to the gym. Nothing else happened."
		activities := service.ExtractActivities(text)

		require.Len(t, activities, 1)
		assert.Equal(t, "I went to the gym", activities[0].Action)
		assert.Equal(t, domain.CategoryHabits, activities[0].Category)
	})

	t.Run("extraction is deterministic", func(t *testing.T) {
		t.Parallel()

		text := "I ran for 20 minutes. I studied Go. I visited a friend."
		first := service.ExtractActivities(text)
		second := service.ExtractActivities(text)

		assert.Equal(t, first, second)
	})

	t.Run("exp never exceeds the per-activity cap", func(t *testing.T) {
		t.Parallel()

		activities := service.ExtractActivities("I practiced piano for 9999 minutes.")

		require.Len(t, activities, 1)
		assert.LessOrEqual(t, activities[0].ExpValue, domain.MaxActivityExp)
	})
}
