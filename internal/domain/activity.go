package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ActivityCategory classifies an extracted activity into one of six
// fixed life-domain buckets.
type ActivityCategory string

// The six activity categories. Declaration order is significant: the
// keyword scorer resolves ties toward the earliest category.
const (
	CategoryFinancial   ActivityCategory = "financial"
	CategoryHabits      ActivityCategory = "habits"
	CategoryKnowledge   ActivityCategory = "knowledge"
	CategorySkills      ActivityCategory = "skills"
	CategoryExperiences ActivityCategory = "experiences"
	CategoryNetwork     ActivityCategory = "network"
)

// MaxActivityExp is the hard cap on EXP granted by a single activity.
const MaxActivityExp = 35

// Common validation errors for Activity
var (
	ErrEmptyActivityID        = errors.New("activity ID cannot be empty")
	ErrEmptyActivityJournalID = errors.New("activity journal ID cannot be empty")
	ErrEmptyActivityAction    = errors.New("activity action cannot be empty")
	ErrInvalidCategory        = errors.New("invalid activity category")
	ErrNegativeExpValue       = errors.New("activity EXP value cannot be negative")
	ErrExpValueTooLarge       = errors.New("activity EXP value exceeds the per-activity cap")
)

// Categories returns all activity categories in declaration order.
// Callers that iterate categories must use this instead of a map so
// that ordering-dependent logic (tie-breaking, aggregation output)
// stays deterministic.
func Categories() []ActivityCategory {
	return []ActivityCategory{
		CategoryFinancial,
		CategoryHabits,
		CategoryKnowledge,
		CategorySkills,
		CategoryExperiences,
		CategoryNetwork,
	}
}

// IsValid reports whether the category is one of the six known values.
func (c ActivityCategory) IsValid() bool {
	switch c {
	case CategoryFinancial, CategoryHabits, CategoryKnowledge,
		CategorySkills, CategoryExperiences, CategoryNetwork:
		return true
	default:
		return false
	}
}

// Activity is a single detected, classified and scored unit of user
// behavior extracted from one journal sentence. It is persisted attached
// to the journal entry it came from and never mutated after creation.
type Activity struct {
	ID        uuid.UUID        `json:"id"`
	JournalID uuid.UUID        `json:"journal_id"`
	Action    string           `json:"action"`
	Category  ActivityCategory `json:"category"`
	ExpValue  int              `json:"exp_value"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewActivity creates a persisted Activity for the given journal entry.
// Returns an error if validation fails.
func NewActivity(journalID uuid.UUID, action string, category ActivityCategory, expValue int) (*Activity, error) {
	activity := &Activity{
		ID:        uuid.New(),
		JournalID: journalID,
		Action:    action,
		Category:  category,
		ExpValue:  expValue,
		CreatedAt: time.Now().UTC(),
	}

	if err := activity.Validate(); err != nil {
		return nil, err
	}

	return activity, nil
}

// Validate checks if the Activity has valid data.
// Returns an error if any field fails validation.
func (a *Activity) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyActivityID
	}

	if a.JournalID == uuid.Nil {
		return ErrEmptyActivityJournalID
	}

	if a.Action == "" {
		return ErrEmptyActivityAction
	}

	if !a.Category.IsValid() {
		return ErrInvalidCategory
	}

	if a.ExpValue < 0 {
		return ErrNegativeExpValue
	}

	if a.ExpValue > MaxActivityExp {
		return ErrExpValueTooLarge
	}

	return nil
}
