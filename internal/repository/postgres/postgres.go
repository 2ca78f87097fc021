package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tripscout/backend/internal/domain"
)

// PostgresRepository implements domain.ProfileRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// GetProfile retrieves the stored profile for a user. Missing users get
// the example profile so demo mode works without seeding.
func (r *PostgresRepository) GetProfile(ctx context.Context, userID string) (domain.UserProfile, error) {
	query := `
		SELECT preferred_temp_min, preferred_temp_max, rain_tolerance,
			   flight_budget_soft, flight_budget_hard, hotel_budget_min, hotel_budget_max,
			   trip_length, flexibility_days, hotel_loyalty,
			   safety_priority, comfort_priority, can_take_red_eye, prefers_weekday_departure
		FROM user_profiles
		WHERE user_id = $1
	`

	var p domain.UserProfile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.PreferredTempMin, &p.PreferredTempMax, &p.RainTolerance,
		&p.FlightBudgetSoft, &p.FlightBudgetHard, &p.HotelBudgetMin, &p.HotelBudgetMax,
		&p.TripLength, &p.FlexibilityDays, &p.HotelLoyalty,
		&p.SafetyPriority, &p.ComfortPriority, &p.CanTakeRedEye, &p.PrefersWeekdayDeparture,
	)
	if err == pgx.ErrNoRows {
		return domain.ExampleProfile(), nil
	}
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("postgres: failed to query profile: %w", err)
	}

	return p, nil
}

// SaveProfile stores or replaces the profile for a user
func (r *PostgresRepository) SaveProfile(ctx context.Context, userID string, p domain.UserProfile) error {
	query := `
		INSERT INTO user_profiles (
			user_id, preferred_temp_min, preferred_temp_max, rain_tolerance,
			flight_budget_soft, flight_budget_hard, hotel_budget_min, hotel_budget_max,
			trip_length, flexibility_days, hotel_loyalty,
			safety_priority, comfort_priority, can_take_red_eye, prefers_weekday_departure,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (user_id) DO UPDATE SET
			preferred_temp_min = EXCLUDED.preferred_temp_min,
			preferred_temp_max = EXCLUDED.preferred_temp_max,
			rain_tolerance = EXCLUDED.rain_tolerance,
			flight_budget_soft = EXCLUDED.flight_budget_soft,
			flight_budget_hard = EXCLUDED.flight_budget_hard,
			hotel_budget_min = EXCLUDED.hotel_budget_min,
			hotel_budget_max = EXCLUDED.hotel_budget_max,
			trip_length = EXCLUDED.trip_length,
			flexibility_days = EXCLUDED.flexibility_days,
			hotel_loyalty = EXCLUDED.hotel_loyalty,
			safety_priority = EXCLUDED.safety_priority,
			comfort_priority = EXCLUDED.comfort_priority,
			can_take_red_eye = EXCLUDED.can_take_red_eye,
			prefers_weekday_departure = EXCLUDED.prefers_weekday_departure,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		userID, p.PreferredTempMin, p.PreferredTempMax, string(p.RainTolerance),
		p.FlightBudgetSoft, p.FlightBudgetHard, p.HotelBudgetMin, p.HotelBudgetMax,
		string(p.TripLength), p.FlexibilityDays, string(p.HotelLoyalty),
		p.SafetyPriority, p.ComfortPriority, p.CanTakeRedEye, p.PrefersWeekdayDeparture,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save profile: %w", err)
	}

	return nil
}

// SaveRecommendationLog persists a generated recommendation for audit
func (r *PostgresRepository) SaveRecommendationLog(ctx context.Context, userID string, rec domain.Recommendation) error {
	query := `
		INSERT INTO recommendation_logs (
			id, user_id, start_date, end_date,
			weather_score, flight_score, hotel_score, overall_score,
			reasoning, why_not_others, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	w := rec.RecommendedWindow
	_, err := r.pool.Exec(ctx, query,
		rec.ID, userID, w.Start.Time, w.End.Time,
		w.WeatherScore, w.FlightScore, w.HotelScore, w.OverallScore,
		rec.Reasoning, rec.WhyNotOthers, rec.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to save recommendation log: %w", err)
	}

	return nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}
