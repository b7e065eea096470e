// Package leveling implements the EXP leveling engine: pure arithmetic
// deriving level and progress from a cumulative EXP total, plus the
// single state transition that applies a batch of extracted activities
// to a user's cumulative stats.
package leveling

import (
	"errors"
	"time"

	"github.com/lifequest/lifequest-api/internal/domain"
)

// Common errors
var (
	ErrNilStats        = errors.New("user stats cannot be nil")
	ErrNilActivity     = errors.New("activity batch cannot contain nil entries")
	ErrInvalidActivity = errors.New("activity batch contains an invalid activity")
)

// Info is the derived level view for a cumulative EXP total. It is a
// pure function of the total and has no independent lifecycle.
type Info struct {
	Level           int     `json:"level"`
	TotalExp        int     `json:"total_exp"`
	CurrentLevelExp int     `json:"current_level_exp"`
	NextLevelExp    int     `json:"next_level_exp"`
	Progress        float64 `json:"progress"`
}

// ApplyResult describes the outcome of applying a batch of activities
// to a user's cumulative stats.
type ApplyResult struct {
	Gained    int
	OldLevel  int
	NewLevel  int
	LeveledUp bool
	Stats     *domain.UserStats
}

// Service defines the interface for leveling engine operations.
type Service interface {
	// RequiredExp returns the cumulative EXP threshold for advancing
	// past the given level.
	RequiredExp(level int) int

	// CalculateLevel derives the level for a cumulative EXP total.
	CalculateLevel(totalExp int) int

	// Progress returns the percentage progress toward the next level,
	// in [0, 100).
	Progress(totalExp int) float64

	// LevelInfo derives the full level view for a cumulative EXP total.
	LevelInfo(totalExp int) Info

	// Apply grants a batch of activities' EXP against a stats snapshot.
	// It returns the batch total, the before/after levels and a new
	// stats value with the total and category totals incremented; the
	// input snapshot is not mutated. The whole batch is applied or,
	// on validation failure, none of it.
	Apply(stats *domain.UserStats, activities []*domain.Activity, now time.Time) (*ApplyResult, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new leveling service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new leveling service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// RequiredExp implements the Service interface.
func (s *defaultService) RequiredExp(level int) int {
	return requiredExp(level, s.params)
}

// CalculateLevel implements the Service interface.
func (s *defaultService) CalculateLevel(totalExp int) int {
	return calculateLevel(totalExp, s.params)
}

// Progress implements the Service interface.
func (s *defaultService) Progress(totalExp int) float64 {
	return calculateProgress(totalExp, s.params)
}

// LevelInfo implements the Service interface.
func (s *defaultService) LevelInfo(totalExp int) Info {
	level := calculateLevel(totalExp, s.params)

	return Info{
		Level:           level,
		TotalExp:        totalExp,
		CurrentLevelExp: requiredExp(level-1, s.params),
		NextLevelExp:    requiredExp(level, s.params),
		Progress:        calculateProgress(totalExp, s.params),
	}
}

// Apply implements the Service interface.
func (s *defaultService) Apply(
	stats *domain.UserStats,
	activities []*domain.Activity,
	now time.Time,
) (*ApplyResult, error) {
	if stats == nil {
		return nil, ErrNilStats
	}

	// Validate the whole batch up front so the apply is all-or-nothing.
	gained := 0
	for _, activity := range activities {
		if activity == nil {
			return nil, ErrNilActivity
		}
		if !activity.Category.IsValid() || activity.ExpValue < 0 {
			return nil, ErrInvalidActivity
		}
		gained += activity.ExpValue
	}

	oldLevel := calculateLevel(stats.TotalExp, s.params)

	newStats := stats.Clone()
	newStats.TotalExp += gained
	for _, activity := range activities {
		newStats.CategoryTotals[activity.Category] += activity.ExpValue
	}
	newStats.UpdatedAt = now

	newLevel := calculateLevel(newStats.TotalExp, s.params)

	return &ApplyResult{
		Gained:    gained,
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
		LeveledUp: newLevel > oldLevel,
		Stats:     newStats,
	}, nil
}
