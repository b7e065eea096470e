package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/lifequest/lifequest-api/internal/domain"
	"github.com/lifequest/lifequest-api/internal/service"
)

// MockStatsService implements service.StatsService for testing
type MockStatsService struct {
	// GetExpSummaryFn allows test cases to mock the GetExpSummary behavior
	GetExpSummaryFn func(ctx context.Context, userID uuid.UUID) (*service.ExpSummary, error)

	// RecentActivitiesFn allows test cases to mock the RecentActivities behavior
	RecentActivitiesFn func(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Activity, error)

	// Default values used when functions aren't explicitly defined
	Summary    *service.ExpSummary
	Activities []*domain.Activity
	Err        error
}

// GetExpSummary implements the service.StatsService interface
func (m *MockStatsService) GetExpSummary(ctx context.Context, userID uuid.UUID) (*service.ExpSummary, error) {
	if m.GetExpSummaryFn != nil {
		return m.GetExpSummaryFn(ctx, userID)
	}
	return m.Summary, m.Err
}

// RecentActivities implements the service.StatsService interface
func (m *MockStatsService) RecentActivities(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Activity, error) {
	if m.RecentActivitiesFn != nil {
		return m.RecentActivitiesFn(ctx, userID, limit)
	}
	return m.Activities, m.Err
}
