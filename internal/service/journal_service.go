package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lifequest/lifequest-api/internal/domain"
	"github.com/lifequest/lifequest-api/internal/domain/extraction"
	"github.com/lifequest/lifequest-api/internal/domain/leveling"
	"github.com/lifequest/lifequest-api/internal/events"
	"github.com/lifequest/lifequest-api/internal/observability"
	"github.com/lifequest/lifequest-api/internal/store"
)

// CreateEntryResult is the outcome of processing a journal entry: the
// persisted entry with its extracted activities, plus the level
// transition the entry caused.
type CreateEntryResult struct {
	Entry     *domain.JournalEntry
	Gained    int
	OldLevel  int
	NewLevel  int
	LeveledUp bool
	Stats     *domain.UserStats
}

// JournalService provides journal entry operations. Creating an entry
// runs the whole pipeline: activity extraction, EXP application, and
// atomic persistence of the entry, its activities, and the updated
// cumulative stats.
type JournalService interface {
	// CreateEntry extracts activities from the content, applies their
	// EXP to the user's cumulative stats, and persists everything in a
	// single transaction.
	CreateEntry(ctx context.Context, userID uuid.UUID, content string) (*CreateEntryResult, error)

	// GetEntry retrieves a journal entry owned by the user.
	GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)

	// ListEntries retrieves the user's journal entries, newest first.
	ListEntries(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, error)
}

// JournalServiceError wraps errors from the journal service with context.
type JournalServiceError struct {
	// Operation is the operation that failed (e.g., "create_entry", "get_entry")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for JournalServiceError.
func (e *JournalServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("journal service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("journal service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *JournalServiceError) Unwrap() error {
	return e.Err
}

// NewJournalServiceError creates a new JournalServiceError.
// It returns known sentinel errors directly without wrapping.
func NewJournalServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	// Map store and domain sentinels to service-level ones
	if errors.Is(err, store.ErrJournalEntryNotFound) {
		return ErrEntryNotFound
	}
	if errors.Is(err, domain.ErrEmptyContent) {
		return ErrEmptyContent
	}

	// If not a sentinel to be returned directly, wrap it
	return &JournalServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// journalServiceImpl implements the JournalService interface
type journalServiceImpl struct {
	txRunner     store.TxRunner
	journalStore store.JournalStore
	statsStore   store.UserStatsStore
	extractor    extraction.Service
	leveler      leveling.Service
	eventEmitter events.EventEmitter
	logger       *slog.Logger
}

// NewJournalService creates a new JournalService.
// It returns an error if any of the required dependencies are nil.
func NewJournalService(
	txRunner store.TxRunner,
	journalStore store.JournalStore,
	statsStore store.UserStatsStore,
	extractor extraction.Service,
	leveler leveling.Service,
	eventEmitter events.EventEmitter,
	logger *slog.Logger,
) (JournalService, error) {
	if txRunner == nil {
		return nil, &JournalServiceError{
			Operation: "create_service",
			Message:   "txRunner cannot be nil",
		}
	}
	if journalStore == nil {
		return nil, &JournalServiceError{
			Operation: "create_service",
			Message:   "journalStore cannot be nil",
		}
	}
	if statsStore == nil {
		return nil, &JournalServiceError{
			Operation: "create_service",
			Message:   "statsStore cannot be nil",
		}
	}
	if extractor == nil {
		return nil, &JournalServiceError{
			Operation: "create_service",
			Message:   "extractor cannot be nil",
		}
	}
	if leveler == nil {
		return nil, &JournalServiceError{
			Operation: "create_service",
			Message:   "leveler cannot be nil",
		}
	}
	if eventEmitter == nil {
		return nil, &JournalServiceError{
			Operation: "create_service",
			Message:   "eventEmitter cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &journalServiceImpl{
		txRunner:     txRunner,
		journalStore: journalStore,
		statsStore:   statsStore,
		extractor:    extractor,
		leveler:      leveler,
		eventEmitter: eventEmitter,
		logger:       logger.With("component", "journal_service"),
	}, nil
}

// CreateEntry runs the journal processing pipeline.
//
// Extraction and EXP arithmetic are pure; only the final persistence
// step touches the database. The entry, its activities, and the stats
// update commit in one transaction so a failure leaves no partial
// state behind.
func (s *journalServiceImpl) CreateEntry(
	ctx context.Context,
	userID uuid.UUID,
	content string,
) (*CreateEntryResult, error) {
	// 1. Build the entry. This validates the content is non-empty.
	entry, err := domain.NewJournalEntry(userID, content)
	if err != nil {
		s.logger.Warn("failed to create journal entry object",
			"error", err,
			"user_id", userID)
		return nil, NewJournalServiceError("create_entry", "invalid journal entry", err)
	}

	// 2. Extract activities from the content.
	extracted := s.extractor.ExtractActivities(content)
	activities := make([]*domain.Activity, 0, len(extracted))
	for _, e := range extracted {
		activity, err := domain.NewActivity(entry.ID, e.Action, e.Category, e.ExpValue)
		if err != nil {
			s.logger.Error("extractor produced an invalid activity",
				"error", err,
				"user_id", userID,
				"category", e.Category)
			return nil, NewJournalServiceError("create_entry", "invalid extracted activity", err)
		}
		activities = append(activities, activity)
	}

	// 3. Apply EXP and persist everything atomically. The tx-bound
	// stats read holds a row lock until commit, so concurrent entries
	// for the same user queue instead of losing updates.
	var applyResult *leveling.ApplyResult
	err = s.txRunner.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txJournal := s.journalStore.WithTx(tx)
		txStats := s.statsStore.WithTx(tx)

		stats, err := txStats.Get(ctx, userID)
		if err != nil {
			return NewJournalServiceError("create_entry", "failed to load user stats", err)
		}

		applyResult, err = s.leveler.Apply(stats, activities, time.Now().UTC())
		if err != nil {
			return NewJournalServiceError("create_entry", "failed to apply activity batch", err)
		}

		entry.ExpGained = applyResult.Gained
		entry.Activities = activities
		if err := txJournal.CreateEntry(ctx, entry); err != nil {
			return NewJournalServiceError("create_entry", "failed to save journal entry", err)
		}

		if err := txStats.Save(ctx, applyResult.Stats); err != nil {
			return NewJournalServiceError("create_entry", "failed to save user stats", err)
		}
		return nil
	})
	if err != nil {
		// Error is already wrapped in the transaction
		return nil, err
	}

	s.logger.Info("journal entry created",
		"entry_id", entry.ID,
		"user_id", userID,
		"activity_count", len(activities),
		"exp_gained", applyResult.Gained)

	observability.RecordEntryCreated()
	observability.RecordExpAwarded(applyResult.Gained)
	for _, activity := range activities {
		observability.RecordActivityExtracted(string(activity.Category))
	}

	if applyResult.LeveledUp {
		observability.RecordLevelUp()
		s.emitLevelUp(ctx, userID, applyResult)
	}

	return &CreateEntryResult{
		Entry:     entry,
		Gained:    applyResult.Gained,
		OldLevel:  applyResult.OldLevel,
		NewLevel:  applyResult.NewLevel,
		LeveledUp: applyResult.LeveledUp,
		Stats:     applyResult.Stats,
	}, nil
}

// emitLevelUp publishes a level-up event. The entry is already
// committed at this point, so emit failures are logged rather than
// surfaced to the caller.
func (s *journalServiceImpl) emitLevelUp(
	ctx context.Context,
	userID uuid.UUID,
	result *leveling.ApplyResult,
) {
	event, err := events.NewEvent(events.EventTypeLevelUp, events.LevelUpPayload{
		UserID:   userID,
		OldLevel: result.OldLevel,
		NewLevel: result.NewLevel,
		TotalExp: result.Stats.TotalExp,
	})
	if err != nil {
		s.logger.Error("failed to create level-up event",
			"error", err,
			"user_id", userID)
		return
	}

	if err := s.eventEmitter.EmitEvent(ctx, event); err != nil {
		s.logger.Error("failed to emit level-up event",
			"error", err,
			"user_id", userID,
			"event_id", event.ID)
	}
}

// GetEntry retrieves a journal entry owned by the user.
func (s *journalServiceImpl) GetEntry(
	ctx context.Context,
	userID, entryID uuid.UUID,
) (*domain.JournalEntry, error) {
	entry, err := s.journalStore.GetEntry(ctx, entryID, userID)
	if err != nil {
		if errors.Is(err, store.ErrJournalEntryNotFound) {
			s.logger.Debug("journal entry not found",
				"entry_id", entryID,
				"user_id", userID)
			return nil, ErrEntryNotFound
		}
		s.logger.Error("failed to retrieve journal entry",
			"error", err,
			"entry_id", entryID,
			"user_id", userID)
		return nil, NewJournalServiceError("get_entry", "failed to retrieve journal entry", err)
	}

	return entry, nil
}

// ListEntries retrieves the user's journal entries, newest first.
func (s *journalServiceImpl) ListEntries(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.JournalEntry, error) {
	entries, err := s.journalStore.ListEntries(ctx, userID, limit, offset)
	if err != nil {
		s.logger.Error("failed to list journal entries",
			"error", err,
			"user_id", userID,
			"limit", limit,
			"offset", offset)
		return nil, NewJournalServiceError("list_entries", "failed to list journal entries", err)
	}

	return entries, nil
}
