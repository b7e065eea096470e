package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lifequest/lifequest-api/internal/domain"
	"github.com/lifequest/lifequest-api/internal/platform/logger"
	"github.com/lifequest/lifequest-api/internal/store"
)

// PostgresUserStatsStore implements the store.UserStatsStore interface
// using a PostgreSQL database as the storage backend. The six category
// totals are stored as dedicated columns; the category set is closed,
// so a column per category keeps reads and upserts trivial.
//
// When the store is transaction-bound (via WithTx), Get takes a row lock
// on the user's stats row so that concurrent read-apply-save cycles for
// the same user serialize instead of overwriting each other's totals.
type PostgresUserStatsStore struct {
	db      store.DBTX
	locking bool
	logger  *slog.Logger
}

// NewPostgresUserStatsStore creates a new PostgreSQL implementation of
// the UserStatsStore interface. If logger is nil, a default logger will
// be used.
func NewPostgresUserStatsStore(db store.DBTX, logger *slog.Logger) *PostgresUserStatsStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStatsStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_stats_store")),
	}
}

// Ensure PostgresUserStatsStore implements store.UserStatsStore interface
var _ store.UserStatsStore = (*PostgresUserStatsStore)(nil)

// claimStatsRowQuery inserts a zeroed stats row for the user if none
// exists. A locking Get needs a row to lock; two first entries for the
// same user would otherwise both see "no row" and race at the upsert.
const claimStatsRowQuery = `
	INSERT INTO user_stats (
		user_id, total_exp,
		financial_exp, habits_exp, knowledge_exp,
		skills_exp, experiences_exp, network_exp,
		created_at, updated_at
	)
	VALUES ($1, 0, 0, 0, 0, 0, 0, 0, $2, $2)
	ON CONFLICT (user_id) DO NOTHING
`

// statsSelectQuery returns the stats row select, with FOR UPDATE
// appended when the caller holds a transaction and needs the row locked
// until commit.
func statsSelectQuery(locking bool) string {
	query := `
		SELECT user_id, total_exp,
		       financial_exp, habits_exp, knowledge_exp,
		       skills_exp, experiences_exp, network_exp,
		       created_at, updated_at
		FROM user_stats
		WHERE user_id = $1
	`
	if locking {
		query += "	FOR UPDATE\n"
	}
	return query
}

// Get implements store.UserStatsStore.Get
// A missing row reads back as a zeroed stats value; users earn their
// stats row on first journal entry. On a transaction-bound store the
// row is claimed first and then selected FOR UPDATE, so the lock is
// held until the surrounding transaction commits.
func (s *PostgresUserStatsStore) Get(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if s.locking {
		now := time.Now().UTC()
		if _, err := s.db.ExecContext(ctx, claimStatsRowQuery, userID, now); err != nil {
			if isForeignKeyViolation(err) {
				log.Warn("foreign key violation claiming stats row",
					slog.String("user_id", userID.String()))
				return nil, store.ErrInvalidEntity
			}
			log.Error("failed to claim stats row",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()))
			return nil, err
		}
	}

	query := statsSelectQuery(s.locking)

	stats := &domain.UserStats{
		CategoryTotals: make(map[domain.ActivityCategory]int, 6),
	}
	var financial, habits, knowledge, skills, experiences, network int

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.UserID,
		&stats.TotalExp,
		&financial,
		&habits,
		&knowledge,
		&skills,
		&experiences,
		&network,
		&stats.CreatedAt,
		&stats.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("no stats row yet, returning zeroed stats",
				slog.String("user_id", userID.String()))
			return domain.NewUserStats(userID)
		}
		log.Error("failed to get user stats",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}

	stats.CategoryTotals[domain.CategoryFinancial] = financial
	stats.CategoryTotals[domain.CategoryHabits] = habits
	stats.CategoryTotals[domain.CategoryKnowledge] = knowledge
	stats.CategoryTotals[domain.CategorySkills] = skills
	stats.CategoryTotals[domain.CategoryExperiences] = experiences
	stats.CategoryTotals[domain.CategoryNetwork] = network

	return stats, nil
}

// Save implements store.UserStatsStore.Save
// It upserts the stats row keyed by user ID.
func (s *PostgresUserStatsStore) Save(ctx context.Context, stats *domain.UserStats) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := stats.Validate(); err != nil {
		log.Warn("user stats validation failed during save",
			slog.String("error", err.Error()),
			slog.String("user_id", stats.UserID.String()))
		return err
	}

	query := `
		INSERT INTO user_stats (
			user_id, total_exp,
			financial_exp, habits_exp, knowledge_exp,
			skills_exp, experiences_exp, network_exp,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE SET
			total_exp = EXCLUDED.total_exp,
			financial_exp = EXCLUDED.financial_exp,
			habits_exp = EXCLUDED.habits_exp,
			knowledge_exp = EXCLUDED.knowledge_exp,
			skills_exp = EXCLUDED.skills_exp,
			experiences_exp = EXCLUDED.experiences_exp,
			network_exp = EXCLUDED.network_exp,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		stats.UserID,
		stats.TotalExp,
		stats.CategoryTotal(domain.CategoryFinancial),
		stats.CategoryTotal(domain.CategoryHabits),
		stats.CategoryTotal(domain.CategoryKnowledge),
		stats.CategoryTotal(domain.CategorySkills),
		stats.CategoryTotal(domain.CategoryExperiences),
		stats.CategoryTotal(domain.CategoryNetwork),
		stats.CreatedAt,
		stats.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during stats save",
				slog.String("user_id", stats.UserID.String()))
			return store.ErrInvalidEntity
		}
		log.Error("failed to save user stats",
			slog.String("error", err.Error()),
			slog.String("user_id", stats.UserID.String()))
		return err
	}

	log.Debug("user stats saved",
		slog.String("user_id", stats.UserID.String()),
		slog.Int("total_exp", stats.TotalExp))
	return nil
}

// WithTx implements store.UserStatsStore.WithTx
// The returned store locks the stats row on Get, since a caller that
// reads inside a transaction intends to write the row back.
func (s *PostgresUserStatsStore) WithTx(tx *sql.Tx) store.UserStatsStore {
	return &PostgresUserStatsStore{
		db:      tx,
		locking: true,
		logger:  s.logger,
	}
}
