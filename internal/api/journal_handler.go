package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/lifequest/lifequest-api/internal/api/shared"
	"github.com/lifequest/lifequest-api/internal/domain"
	"github.com/lifequest/lifequest-api/internal/service"
)

// Pagination bounds for listing journal entries.
const (
	defaultListLimit = 10
	maxListLimit     = 50
)

// JournalHandler handles journal-related HTTP requests
type JournalHandler struct {
	journalService service.JournalService
	validator      *validator.Validate
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(journalService service.JournalService) *JournalHandler {
	return &JournalHandler{
		journalService: journalService,
		validator:      validator.New(),
	}
}

// CreateEntry handles POST /api/journal requests. The entry is
// processed synchronously: activities are extracted, EXP is applied,
// and the response carries the resulting level transition.
func (h *JournalHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	// Extract user ID from context (set by auth middleware)
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	// Parse request body
	var req CreateJournalEntryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	// Run the journal pipeline
	result, err := h.journalService.CreateEntry(r.Context(), userID, req.Content)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	response := CreateJournalEntryResponse{
		Entry:     entryToResponse(result.Entry),
		ExpGained: result.Gained,
		LeveledUp: result.LeveledUp,
		OldLevel:  result.OldLevel,
		NewLevel:  result.NewLevel,
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, response)
}

// GetEntry handles GET /api/journal/{id} requests.
func (h *JournalHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	entryID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	entry, err := h.journalService.GetEntry(r.Context(), userID, entryID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entryToResponse(entry))
}

// ListEntries handles GET /api/journal requests.
func (h *JournalHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	limit := getQueryInt(r, "limit", defaultListLimit, 1, maxListLimit)
	offset := getQueryInt(r, "offset", 0, 0, 1<<30)

	entries, err := h.journalService.ListEntries(r.Context(), userID, limit, offset)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	response := ListJournalEntriesResponse{
		Entries: make([]JournalEntryResponse, 0, len(entries)),
		Limit:   limit,
		Offset:  offset,
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, entryToResponse(entry))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// entryToResponse converts a domain.JournalEntry to its response DTO
func entryToResponse(entry *domain.JournalEntry) JournalEntryResponse {
	activities := make([]ActivityResponse, 0, len(entry.Activities))
	for _, activity := range entry.Activities {
		activities = append(activities, activityToResponse(activity))
	}

	return JournalEntryResponse{
		ID:         entry.ID,
		UserID:     entry.UserID,
		Content:    entry.Content,
		ExpGained:  entry.ExpGained,
		Activities: activities,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}
}

// activityToResponse converts a domain.Activity to its response DTO
func activityToResponse(activity *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        activity.ID,
		Action:    activity.Action,
		Category:  string(activity.Category),
		ExpValue:  activity.ExpValue,
		CreatedAt: activity.CreatedAt,
	}
}
