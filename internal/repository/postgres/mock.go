package postgres

import (
	"context"
	"sync"

	"github.com/tripscout/backend/internal/domain"
)

// MockRepository implements domain.ProfileRepository for testing/demo mode
type MockRepository struct {
	mu       sync.RWMutex
	profiles map[string]domain.UserProfile
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{profiles: make(map[string]domain.UserProfile)}
}

// GetProfile returns the stored profile, or the example profile for
// unknown users
func (r *MockRepository) GetProfile(ctx context.Context, userID string) (domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.profiles[userID]; ok {
		return p, nil
	}
	return domain.ExampleProfile(), nil
}

// SaveProfile stores the profile in memory
func (r *MockRepository) SaveProfile(ctx context.Context, userID string, p domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[userID] = p
	return nil
}

// SaveRecommendationLog is a no-op in mock mode
func (r *MockRepository) SaveRecommendationLog(ctx context.Context, userID string, rec domain.Recommendation) error {
	return nil
}

// Health always returns nil in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}
