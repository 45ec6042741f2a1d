package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/internal/core/domain/chef"
	"github.com/chefpantry/chefpantry/internal/core/ports"
	"github.com/chefpantry/chefpantry/internal/infrastructure/db"
)

// ChefRepository implements the chef profile repository interface
type ChefRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewChefRepository creates a new chef profile repository
func NewChefRepository(database *db.Database, logger *logrus.Logger) ports.ChefRepository {
	return &ChefRepository{
		db:     database,
		logger: logger,
	}
}

// Upsert creates or replaces a chef profile
func (r *ChefRepository) Upsert(ctx context.Context, p *chef.Profile) error {
	query := `
		INSERT INTO chef_profiles (user_id, headline, bio, cuisines, years_experience, hourly_rate_cents, location, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			headline = EXCLUDED.headline,
			bio = EXCLUDED.bio,
			cuisines = EXCLUDED.cuisines,
			years_experience = EXCLUDED.years_experience,
			hourly_rate_cents = EXCLUDED.hourly_rate_cents,
			location = EXCLUDED.location,
			available = EXCLUDED.available,
			updated_at = NOW()`

	_, err := r.db.DB.ExecContext(ctx, query,
		p.UserID, p.Headline, p.Bio, p.Cuisines, p.YearsExperience,
		p.HourlyRateCents, p.Location, p.Available)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"user_id": p.UserID}).WithError(err).Error("db: failed to upsert chef profile")
		}
		return fmt.Errorf("failed to upsert chef profile: %w", err)
	}
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"user_id": p.UserID}).Info("db: chef profile upserted")
	}

	return nil
}

// GetByUserID retrieves a chef profile by the owning user's ID
func (r *ChefRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*chef.Profile, error) {
	var p chef.Profile
	query := `
		SELECT user_id, headline, bio, cuisines, years_experience, hourly_rate_cents, location, available, created_at, updated_at
		FROM chef_profiles
		WHERE user_id = $1`

	err := r.db.DB.GetContext(ctx, &p, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("chef profile for user %s not found", userID)
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"user_id": userID}).WithError(err).Error("db: failed to get chef profile")
		}
		return nil, fmt.Errorf("failed to get chef profile: %w", err)
	}

	return &p, nil
}

// Search retrieves chef profiles matching the filter
func (r *ChefRepository) Search(ctx context.Context, filter *chef.SearchFilter) ([]*chef.Profile, error) {
	var conditions []string
	var args []interface{}

	if filter.Cuisine != "" {
		args = append(args, filter.Cuisine)
		conditions = append(conditions, "$"+strconv.Itoa(len(args))+" = ANY(cuisines)")
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		conditions = append(conditions, "location ILIKE $"+strconv.Itoa(len(args)))
	}
	if filter.MaxHourlyCents > 0 {
		args = append(args, filter.MaxHourlyCents)
		conditions = append(conditions, "hourly_rate_cents <= $"+strconv.Itoa(len(args)))
	}
	if filter.AvailableOnly {
		conditions = append(conditions, "available = TRUE")
	}

	query := `
		SELECT user_id, headline, bio, cuisines, years_experience, hourly_rate_cents, location, available, created_at, updated_at
		FROM chef_profiles`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY updated_at DESC"

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	args = append(args, limit)
	query += " LIMIT $" + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	var profiles []*chef.Profile
	if err := r.db.DB.SelectContext(ctx, &profiles, query, args...); err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"query": query}).WithError(err).Error("db: failed to search chef profiles")
		}
		return nil, fmt.Errorf("failed to search chef profiles: %w", err)
	}

	return profiles, nil
}
