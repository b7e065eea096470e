package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifequest/lifequest-api/internal/domain"
	"github.com/lifequest/lifequest-api/internal/domain/leveling"
	"github.com/lifequest/lifequest-api/internal/mocks"
	"github.com/lifequest/lifequest-api/internal/service"
)

func TestGetExpSummary(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("returns the derived level view", func(t *testing.T) {
		t.Parallel()

		statsService := &mocks.MockStatsService{
			Summary: &service.ExpSummary{
				Level: leveling.Info{
					Level:           2,
					TotalExp:        125,
					CurrentLevelExp: 50,
					NextLevelExp:    200,
					Progress:        50,
				},
				CategoryTotals: map[domain.ActivityCategory]int{
					domain.CategoryHabits:    75,
					domain.CategoryKnowledge: 50,
				},
			},
		}
		handler := NewStatsHandler(statsService)

		req := withUserID(httptest.NewRequest(http.MethodGet, "/stats/exp", nil), userID)
		rr := httptest.NewRecorder()
		handler.GetExpSummary(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp ExpSummaryResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Level)
		assert.Equal(t, 125, resp.TotalExp)
		assert.Equal(t, 50, resp.CurrentLevelExp)
		assert.Equal(t, 200, resp.NextLevelExp)
		assert.InDelta(t, 50.0, resp.Progress, 0.001)
		assert.Equal(t, 75, resp.CategoryTotals["habits"])
		assert.Equal(t, 50, resp.CategoryTotals["knowledge"])
	})

	t.Run("missing auth context rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewStatsHandler(&mocks.MockStatsService{})

		req := httptest.NewRequest(http.MethodGet, "/stats/exp", nil)
		rr := httptest.NewRecorder()
		handler.GetExpSummary(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("service failure surfaces as internal error", func(t *testing.T) {
		t.Parallel()

		handler := NewStatsHandler(&mocks.MockStatsService{Err: assert.AnError})

		req := withUserID(httptest.NewRequest(http.MethodGet, "/stats/exp", nil), userID)
		rr := httptest.NewRecorder()
		handler.GetExpSummary(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetRecentActivities(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("returns activities newest first", func(t *testing.T) {
		t.Parallel()

		first, err := domain.NewActivity(uuid.New(), "I met with a client", domain.CategoryNetwork, 15)
		require.NoError(t, err)
		second, err := domain.NewActivity(uuid.New(), "I ran today", domain.CategoryHabits, 10)
		require.NoError(t, err)

		statsService := &mocks.MockStatsService{
			Activities: []*domain.Activity{first, second},
		}
		handler := NewStatsHandler(statsService)

		req := withUserID(httptest.NewRequest(http.MethodGet, "/stats/activities", nil), userID)
		rr := httptest.NewRecorder()
		handler.GetRecentActivities(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp RecentActivitiesResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Activities, 2)
		assert.Equal(t, "network", resp.Activities[0].Category)
		assert.Equal(t, "habits", resp.Activities[1].Category)
	})

	t.Run("limit clamps to the maximum", func(t *testing.T) {
		t.Parallel()

		var gotLimit int
		statsService := &mocks.MockStatsService{
			RecentActivitiesFn: func(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Activity, error) {
				gotLimit = limit
				return nil, nil
			},
		}
		handler := NewStatsHandler(statsService)

		req := withUserID(httptest.NewRequest(http.MethodGet, "/stats/activities?limit=500", nil), userID)
		rr := httptest.NewRecorder()
		handler.GetRecentActivities(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, maxRecentActivities, gotLimit)
	})
}
