package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifequest/lifequest-api/internal/api/shared"
	"github.com/lifequest/lifequest-api/internal/domain"
	"github.com/lifequest/lifequest-api/internal/mocks"
	"github.com/lifequest/lifequest-api/internal/service"
)

// withUserID simulates the auth middleware placing the authenticated
// user's ID in the request context.
func withUserID(req *http.Request, userID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

func newTestEntry(t *testing.T, userID uuid.UUID, content string, activities ...*domain.Activity) *domain.JournalEntry {
	t.Helper()

	entry, err := domain.NewJournalEntry(userID, content)
	require.NoError(t, err)
	entry.Activities = activities
	for _, activity := range activities {
		entry.ExpGained += activity.ExpValue
	}
	return entry
}

func TestCreateEntry(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("successful creation returns the level transition", func(t *testing.T) {
		t.Parallel()

		activity, err := domain.NewActivity(uuid.New(), "I exercised for 30 minutes", domain.CategoryHabits, 20)
		require.NoError(t, err)
		entry := newTestEntry(t, userID, "I exercised for 30 minutes.", activity)

		journalService := &mocks.MockJournalService{
			CreateResult: &service.CreateEntryResult{
				Entry:     entry,
				Gained:    20,
				OldLevel:  1,
				NewLevel:  2,
				LeveledUp: true,
			},
		}
		handler := NewJournalHandler(journalService)

		body, err := json.Marshal(CreateJournalEntryRequest{Content: "I exercised for 30 minutes."})
		require.NoError(t, err)

		req := withUserID(httptest.NewRequest(http.MethodPost, "/journal", bytes.NewReader(body)), userID)
		rr := httptest.NewRecorder()
		handler.CreateEntry(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp CreateJournalEntryResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 20, resp.ExpGained)
		assert.True(t, resp.LeveledUp)
		assert.Equal(t, 1, resp.OldLevel)
		assert.Equal(t, 2, resp.NewLevel)
		require.Len(t, resp.Entry.Activities, 1)
		assert.Equal(t, "habits", resp.Entry.Activities[0].Category)
		assert.Equal(t, 20, resp.Entry.Activities[0].ExpValue)
	})

	t.Run("missing auth context rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewJournalHandler(&mocks.MockJournalService{})

		body, err := json.Marshal(CreateJournalEntryRequest{Content: "content"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/journal", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.CreateEntry(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("empty content rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewJournalHandler(&mocks.MockJournalService{})

		body, err := json.Marshal(CreateJournalEntryRequest{Content: ""})
		require.NoError(t, err)

		req := withUserID(httptest.NewRequest(http.MethodPost, "/journal", bytes.NewReader(body)), userID)
		rr := httptest.NewRecorder()
		handler.CreateEntry(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("service failure surfaces as internal error", func(t *testing.T) {
		t.Parallel()

		journalService := &mocks.MockJournalService{
			Err: assert.AnError,
		}
		handler := NewJournalHandler(journalService)

		body, err := json.Marshal(CreateJournalEntryRequest{Content: "content"})
		require.NoError(t, err)

		req := withUserID(httptest.NewRequest(http.MethodPost, "/journal", bytes.NewReader(body)), userID)
		rr := httptest.NewRecorder()
		handler.CreateEntry(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetEntry(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	// GetEntry reads the {id} path parameter, so requests go through a
	// real chi router.
	newRouter := func(handler *JournalHandler) *chi.Mux {
		r := chi.NewRouter()
		r.Get("/journal/{id}", handler.GetEntry)
		return r
	}

	t.Run("returns the entry with activities", func(t *testing.T) {
		t.Parallel()

		entry := newTestEntry(t, userID, "I read a book.")
		journalService := &mocks.MockJournalService{Entry: entry}
		router := newRouter(NewJournalHandler(journalService))

		req := withUserID(httptest.NewRequest(http.MethodGet, "/journal/"+entry.ID.String(), nil), userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp JournalEntryResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, entry.ID, resp.ID)
		assert.Equal(t, "I read a book.", resp.Content)
	})

	t.Run("malformed entry ID rejected", func(t *testing.T) {
		t.Parallel()

		router := newRouter(NewJournalHandler(&mocks.MockJournalService{}))

		req := withUserID(httptest.NewRequest(http.MethodGet, "/journal/not-a-uuid", nil), userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown entry returns not found", func(t *testing.T) {
		t.Parallel()

		journalService := &mocks.MockJournalService{
			GetEntryFn: func(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error) {
				return nil, service.ErrEntryNotFound
			},
		}
		router := newRouter(NewJournalHandler(journalService))

		req := withUserID(httptest.NewRequest(http.MethodGet, "/journal/"+uuid.NewString(), nil), userID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestListEntries(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("returns entries with pagination echo", func(t *testing.T) {
		t.Parallel()

		entries := []*domain.JournalEntry{
			newTestEntry(t, userID, "First entry."),
			newTestEntry(t, userID, "Second entry."),
		}
		journalService := &mocks.MockJournalService{Entries: entries}
		handler := NewJournalHandler(journalService)

		req := withUserID(httptest.NewRequest(http.MethodGet, "/journal?limit=20&offset=5", nil), userID)
		rr := httptest.NewRecorder()
		handler.ListEntries(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp ListJournalEntriesResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Entries, 2)
		assert.Equal(t, 20, resp.Limit)
		assert.Equal(t, 5, resp.Offset)
	})

	t.Run("limit clamps to the maximum", func(t *testing.T) {
		t.Parallel()

		var gotLimit int
		journalService := &mocks.MockJournalService{
			ListEntriesFn: func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, error) {
				gotLimit = limit
				return nil, nil
			},
		}
		handler := NewJournalHandler(journalService)

		req := withUserID(httptest.NewRequest(http.MethodGet, "/journal?limit=9999", nil), userID)
		rr := httptest.NewRecorder()
		handler.ListEntries(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, maxListLimit, gotLimit)
	})

	t.Run("malformed limit falls back to the default", func(t *testing.T) {
		t.Parallel()

		var gotLimit int
		journalService := &mocks.MockJournalService{
			ListEntriesFn: func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, error) {
				gotLimit = limit
				return nil, nil
			},
		}
		handler := NewJournalHandler(journalService)

		req := withUserID(httptest.NewRequest(http.MethodGet, "/journal?limit=abc", nil), userID)
		rr := httptest.NewRecorder()
		handler.ListEntries(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, defaultListLimit, gotLimit)
	})
}
