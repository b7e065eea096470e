package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for UserStats
var (
	ErrEmptyStatsUserID     = errors.New("user stats user ID cannot be empty")
	ErrNegativeTotalExp     = errors.New("total EXP cannot be negative")
	ErrNegativeCategoryExp  = errors.New("category EXP total cannot be negative")
	ErrUnknownCategoryTotal = errors.New("category totals contain an unknown category")
)

// UserStats holds the cumulative EXP state for one user: the running
// total and the per-category breakdown. TotalExp is monotonically
// non-decreasing; there is no EXP revocation path.
type UserStats struct {
	UserID         uuid.UUID                `json:"user_id"`
	TotalExp       int                      `json:"total_exp"`
	CategoryTotals map[ActivityCategory]int `json:"category_totals"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// NewUserStats creates a zeroed UserStats for the given user, with all
// six category totals initialized to 0.
func NewUserStats(userID uuid.UUID) (*UserStats, error) {
	stats := &UserStats{
		UserID:         userID,
		TotalExp:       0,
		CategoryTotals: emptyCategoryTotals(),
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	if err := stats.Validate(); err != nil {
		return nil, err
	}

	return stats, nil
}

// Validate checks if the UserStats has valid data.
// Returns an error if any field fails validation.
func (s *UserStats) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrEmptyStatsUserID
	}

	if s.TotalExp < 0 {
		return ErrNegativeTotalExp
	}

	for category, total := range s.CategoryTotals {
		if !category.IsValid() {
			return ErrUnknownCategoryTotal
		}
		if total < 0 {
			return ErrNegativeCategoryExp
		}
	}

	return nil
}

// Clone returns a deep copy of the stats, so callers can derive updated
// state without mutating the original snapshot.
func (s *UserStats) Clone() *UserStats {
	totals := emptyCategoryTotals()
	for category, total := range s.CategoryTotals {
		totals[category] = total
	}

	return &UserStats{
		UserID:         s.UserID,
		TotalExp:       s.TotalExp,
		CategoryTotals: totals,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

// CategoryTotal returns the cumulative EXP for a single category,
// treating missing keys as zero.
func (s *UserStats) CategoryTotal(category ActivityCategory) int {
	return s.CategoryTotals[category]
}

func emptyCategoryTotals() map[ActivityCategory]int {
	totals := make(map[ActivityCategory]int, len(Categories()))
	for _, category := range Categories() {
		totals[category] = 0
	}
	return totals
}
