package domain

import "context"

// ProfileRepository defines the interface for profile and recommendation
// persistence. The domain owns the interface; implementations live in the
// repository layer.
type ProfileRepository interface {
	// GetProfile retrieves the stored profile for a user.
	GetProfile(ctx context.Context, userID string) (UserProfile, error)

	// SaveProfile stores or replaces the profile for a user.
	SaveProfile(ctx context.Context, userID string, profile UserProfile) error

	// SaveRecommendationLog persists a generated recommendation for audit.
	SaveRecommendationLog(ctx context.Context, userID string, rec Recommendation) error

	// Health checks database connectivity.
	Health(ctx context.Context) error
}
