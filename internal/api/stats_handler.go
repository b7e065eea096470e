package api

import (
	"net/http"

	"github.com/lifequest/lifequest-api/internal/api/shared"
	"github.com/lifequest/lifequest-api/internal/service"
)

// Pagination bound for recent activity listing.
const maxRecentActivities = 100

// StatsHandler handles stats-related HTTP requests
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetExpSummary handles GET /api/stats/exp requests. Users with no
// recorded EXP get the level-1 zero view rather than a 404.
func (h *StatsHandler) GetExpSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	summary, err := h.statsService.GetExpSummary(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	response := ExpSummaryResponse{
		Level:           summary.Level.Level,
		TotalExp:        summary.Level.TotalExp,
		CurrentLevelExp: summary.Level.CurrentLevelExp,
		NextLevelExp:    summary.Level.NextLevelExp,
		Progress:        summary.Level.Progress,
		CategoryTotals:  make(map[string]int, len(summary.CategoryTotals)),
	}
	for category, total := range summary.CategoryTotals {
		response.CategoryTotals[string(category)] = total
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetRecentActivities handles GET /api/stats/activities requests.
func (h *StatsHandler) GetRecentActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	limit := getQueryInt(r, "limit", defaultListLimit, 1, maxRecentActivities)

	activities, err := h.statsService.RecentActivities(r.Context(), userID, limit)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	response := RecentActivitiesResponse{
		Activities: make([]ActivityResponse, 0, len(activities)),
	}
	for _, activity := range activities {
		response.Activities = append(response.Activities, activityToResponse(activity))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
