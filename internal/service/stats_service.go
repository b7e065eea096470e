package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lifequest/lifequest-api/internal/domain"
	"github.com/lifequest/lifequest-api/internal/domain/leveling"
	"github.com/lifequest/lifequest-api/internal/store"
)

// ExpSummary is the derived EXP view for a user: the level arithmetic
// plus the per-category totals backing it.
type ExpSummary struct {
	Level          leveling.Info
	CategoryTotals map[domain.ActivityCategory]int
}

// StatsService provides read access to a user's cumulative EXP state
// and recent activity history.
type StatsService interface {
	// GetExpSummary derives the user's level view from their cumulative
	// stats. Users with no recorded EXP get the level-1 zero view.
	GetExpSummary(ctx context.Context, userID uuid.UUID) (*ExpSummary, error)

	// RecentActivities retrieves the user's most recently recorded
	// activities, newest first.
	RecentActivities(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Activity, error)
}

// StatsServiceError wraps errors from the stats service with context.
type StatsServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for StatsServiceError.
func (e *StatsServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("stats service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("stats service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StatsServiceError) Unwrap() error {
	return e.Err
}

// statsServiceImpl implements the StatsService interface
type statsServiceImpl struct {
	statsStore   store.UserStatsStore
	journalStore store.JournalStore
	leveler      leveling.Service
	logger       *slog.Logger
}

// NewStatsService creates a new StatsService.
// It returns an error if any of the required dependencies are nil.
func NewStatsService(
	statsStore store.UserStatsStore,
	journalStore store.JournalStore,
	leveler leveling.Service,
	logger *slog.Logger,
) (StatsService, error) {
	if statsStore == nil {
		return nil, &StatsServiceError{
			Operation: "create_service",
			Message:   "statsStore cannot be nil",
		}
	}
	if journalStore == nil {
		return nil, &StatsServiceError{
			Operation: "create_service",
			Message:   "journalStore cannot be nil",
		}
	}
	if leveler == nil {
		return nil, &StatsServiceError{
			Operation: "create_service",
			Message:   "leveler cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &statsServiceImpl{
		statsStore:   statsStore,
		journalStore: journalStore,
		leveler:      leveler,
		logger:       logger.With("component", "stats_service"),
	}, nil
}

// GetExpSummary derives the user's level view from their cumulative stats.
func (s *statsServiceImpl) GetExpSummary(
	ctx context.Context,
	userID uuid.UUID,
) (*ExpSummary, error) {
	stats, err := s.statsStore.Get(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load user stats",
			"error", err,
			"user_id", userID)
		return nil, &StatsServiceError{
			Operation: "get_exp_summary",
			Message:   "failed to load user stats",
			Err:       err,
		}
	}

	summary := &ExpSummary{
		Level:          s.leveler.LevelInfo(stats.TotalExp),
		CategoryTotals: stats.CategoryTotals,
	}

	s.logger.Debug("derived exp summary",
		"user_id", userID,
		"total_exp", stats.TotalExp,
		"level", summary.Level.Level)

	return summary, nil
}

// RecentActivities retrieves the user's most recent activities.
func (s *statsServiceImpl) RecentActivities(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.Activity, error) {
	activities, err := s.journalStore.RecentActivities(ctx, userID, limit)
	if err != nil {
		s.logger.Error("failed to load recent activities",
			"error", err,
			"user_id", userID,
			"limit", limit)
		return nil, &StatsServiceError{
			Operation: "recent_activities",
			Message:   "failed to load recent activities",
			Err:       err,
		}
	}

	return activities, nil
}
