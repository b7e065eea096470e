package api

import (
	"time"

	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresAt is the ISO 8601 timestamp when the access token expires
	ExpiresAt string `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	// RefreshToken is the JWT refresh token to be used to obtain a new token pair
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token refresh endpoint.
type RefreshTokenResponse struct {
	// AccessToken is the new JWT token used for API authorization
	AccessToken string `json:"access_token"`

	// RefreshToken is the new JWT token used to obtain future access tokens
	RefreshToken string `json:"refresh_token"`

	// ExpiresAt is the ISO 8601 timestamp when the access token expires
	ExpiresAt string `json:"expires_at"`
}

// CreateJournalEntryRequest defines the payload for creating a journal entry.
type CreateJournalEntryRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// ActivityResponse represents a single extracted activity.
type ActivityResponse struct {
	ID        uuid.UUID `json:"id"`
	Action    string    `json:"action"`
	Category  string    `json:"category"`
	ExpValue  int       `json:"exp_value"`
	CreatedAt time.Time `json:"created_at"`
}

// JournalEntryResponse represents a journal entry with its activities.
type JournalEntryResponse struct {
	ID         uuid.UUID          `json:"id"`
	UserID     uuid.UUID          `json:"user_id"`
	Content    string             `json:"content"`
	ExpGained  int                `json:"exp_gained"`
	Activities []ActivityResponse `json:"activities"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// CreateJournalEntryResponse is the response for entry creation: the
// persisted entry plus the level transition it caused.
type CreateJournalEntryResponse struct {
	Entry     JournalEntryResponse `json:"entry"`
	ExpGained int                  `json:"exp_gained"`
	LeveledUp bool                 `json:"leveled_up"`
	OldLevel  int                  `json:"old_level"`
	NewLevel  int                  `json:"new_level"`
}

// ListJournalEntriesResponse is the paginated list response for journal entries.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
	Limit   int                    `json:"limit"`
	Offset  int                    `json:"offset"`
}

// ExpSummaryResponse is the derived EXP view for the authenticated user.
type ExpSummaryResponse struct {
	Level           int            `json:"level"`
	TotalExp        int            `json:"total_exp"`
	CurrentLevelExp int            `json:"current_level_exp"`
	NextLevelExp    int            `json:"next_level_exp"`
	Progress        float64        `json:"progress"`
	CategoryTotals  map[string]int `json:"category_totals"`
}

// RecentActivitiesResponse lists the user's most recent activities.
type RecentActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
}
