package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lifequest/lifequest-api/internal/domain"
	"github.com/lifequest/lifequest-api/internal/platform/logger"
	"github.com/lifequest/lifequest-api/internal/store"
)

// PostgresJournalStore implements the store.JournalStore interface
// using a PostgreSQL database as the storage backend.
type PostgresJournalStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresJournalStore creates a new PostgreSQL implementation of
// the JournalStore interface. If logger is nil, a default logger will
// be used.
func NewPostgresJournalStore(db store.DBTX, logger *slog.Logger) *PostgresJournalStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresJournalStore{
		db:     db,
		logger: logger.With(slog.String("component", "journal_store")),
	}
}

// Ensure PostgresJournalStore implements store.JournalStore interface
var _ store.JournalStore = (*PostgresJournalStore)(nil)

// Activities carry an explicit position so reads reproduce extraction
// order exactly. Timestamps alone cannot: activities of one entry share
// a creation instant, and a UUID tiebreak would scramble them.
const (
	insertActivityQuery = `
		INSERT INTO activities (id, journal_id, action, category, exp_value, position, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	activitiesByJournalQuery = `
		SELECT id, journal_id, action, category, exp_value, created_at
		FROM activities
		WHERE journal_id = $1
		ORDER BY position ASC
	`

	recentActivitiesQuery = `
		SELECT a.id, a.journal_id, a.action, a.category, a.exp_value, a.created_at
		FROM activities a
		JOIN journal_entries j ON j.id = a.journal_id
		WHERE j.user_id = $1
		ORDER BY a.created_at DESC, a.position DESC
		LIMIT $2
	`
)

// CreateEntry implements store.JournalStore.CreateEntry
// It inserts the entry row and one row per attached activity.
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *PostgresJournalStore) CreateEntry(ctx context.Context, entry *domain.JournalEntry) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("journal entry validation failed during create",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return err
	}

	entryQuery := `
		INSERT INTO journal_entries (id, user_id, content, exp_gained, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		entryQuery,
		entry.ID,
		entry.UserID,
		entry.Content,
		entry.ExpGained,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during journal entry creation",
				slog.String("entry_id", entry.ID.String()),
				slog.String("user_id", entry.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, entry.UserID)
		}

		log.Error("failed to create journal entry",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()),
			slog.String("user_id", entry.UserID.String()))
		return err
	}

	for position, activity := range entry.Activities {
		if err := activity.Validate(); err != nil {
			log.Warn("activity validation failed during create",
				slog.String("error", err.Error()),
				slog.String("activity_id", activity.ID.String()))
			return err
		}

		_, err := s.db.ExecContext(
			ctx,
			insertActivityQuery,
			activity.ID,
			activity.JournalID,
			activity.Action,
			string(activity.Category),
			activity.ExpValue,
			position,
			activity.CreatedAt,
		)
		if err != nil {
			log.Error("failed to create activity",
				slog.String("error", err.Error()),
				slog.String("activity_id", activity.ID.String()),
				slog.String("entry_id", entry.ID.String()))
			return err
		}
	}

	log.Info("journal entry created successfully",
		slog.String("entry_id", entry.ID.String()),
		slog.String("user_id", entry.UserID.String()),
		slog.Int("activity_count", len(entry.Activities)))
	return nil
}

// GetEntry implements store.JournalStore.GetEntry
// Returns store.ErrJournalEntryNotFound if the entry does not exist or
// is owned by a different user.
func (s *PostgresJournalStore) GetEntry(ctx context.Context, id, userID uuid.UUID) (*domain.JournalEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, content, exp_gained, created_at, updated_at
		FROM journal_entries
		WHERE id = $1 AND user_id = $2
	`

	var entry domain.JournalEntry
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Content,
		&entry.ExpGained,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("journal entry not found",
				slog.String("entry_id", id.String()),
				slog.String("user_id", userID.String()))
			return nil, store.ErrJournalEntryNotFound
		}
		log.Error("failed to get journal entry",
			slog.String("error", err.Error()),
			slog.String("entry_id", id.String()))
		return nil, err
	}

	activities, err := s.activitiesByJournalID(ctx, entry.ID)
	if err != nil {
		return nil, err
	}
	entry.Activities = activities

	return &entry, nil
}

// ListEntries implements store.JournalStore.ListEntries
func (s *PostgresJournalStore) ListEntries(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*domain.JournalEntry, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT id, user_id, content, exp_gained, created_at, updated_at
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		log.Error("failed to query journal entries",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	entries := []*domain.JournalEntry{}
	for rows.Next() {
		var entry domain.JournalEntry
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Content,
			&entry.ExpGained,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan journal entry row",
				slog.String("error", err.Error()))
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	for _, entry := range entries {
		activities, err := s.activitiesByJournalID(ctx, entry.ID)
		if err != nil {
			return nil, err
		}
		entry.Activities = activities
	}

	return entries, nil
}

// RecentActivities implements store.JournalStore.RecentActivities
func (s *PostgresJournalStore) RecentActivities(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.Activity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx, recentActivitiesQuery, userID, limit)
	if err != nil {
		log.Error("failed to query recent activities",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	return scanActivities(rows, log)
}

// WithTx implements store.JournalStore.WithTx
func (s *PostgresJournalStore) WithTx(tx *sql.Tx) store.JournalStore {
	return &PostgresJournalStore{
		db:     tx,
		logger: s.logger,
	}
}

// activitiesByJournalID loads the activities attached to one entry,
// preserving the order they were extracted in.
func (s *PostgresJournalStore) activitiesByJournalID(
	ctx context.Context,
	journalID uuid.UUID,
) ([]*domain.Activity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, activitiesByJournalQuery, journalID)
	if err != nil {
		log.Error("failed to query activities",
			slog.String("error", err.Error()),
			slog.String("journal_id", journalID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	return scanActivities(rows, log)
}

// scanActivities reads activity rows into domain values.
func scanActivities(rows *sql.Rows, log *slog.Logger) ([]*domain.Activity, error) {
	activities := []*domain.Activity{}
	for rows.Next() {
		var activity domain.Activity
		var category string

		err := rows.Scan(
			&activity.ID,
			&activity.JournalID,
			&activity.Action,
			&category,
			&activity.ExpValue,
			&activity.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan activity row",
				slog.String("error", err.Error()))
			return nil, err
		}

		activity.Category = domain.ActivityCategory(category)
		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return activities, nil
}
