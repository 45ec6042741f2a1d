package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/internal/core/domain/review"
	"github.com/chefpantry/chefpantry/internal/core/ports"
	"github.com/chefpantry/chefpantry/internal/infrastructure/db"
)

// ReviewRepository implements the review repository interface
type ReviewRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(database *db.Database, logger *logrus.Logger) ports.ReviewRepository {
	return &ReviewRepository{
		db:     database,
		logger: logger,
	}
}

const reviewColumns = `id, gig_id, author_id, subject_id, food_quality, punctuality, communication, professionalism, comment, created_at`

// Create stores a review
func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	query := `
		INSERT INTO reviews (id, gig_id, author_id, subject_id, food_quality, punctuality, communication, professionalism, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.DB.ExecContext(ctx, query,
		rev.ID, rev.GigID, rev.AuthorID, rev.SubjectID, rev.FoodQuality,
		rev.Punctuality, rev.Communication, rev.Professionalism, rev.Comment)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"gig_id": rev.GigID, "author_id": rev.AuthorID}).WithError(err).Error("db: failed to create review")
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// GetByGigAndAuthor retrieves the author's review on a gig
func (r *ReviewRepository) GetByGigAndAuthor(ctx context.Context, gigID, authorID uuid.UUID) (*review.Review, error) {
	var rev review.Review
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE gig_id = $1 AND author_id = $2`

	err := r.db.DB.GetContext(ctx, &rev, query, gigID, authorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("review not found")
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return &rev, nil
}

// ListBySubject lists a page of reviews about a subject
func (r *ReviewRepository) ListBySubject(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*review.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE subject_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	var reviews []*review.Review
	if err := r.db.DB.SelectContext(ctx, &reviews, query, subjectID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list reviews by subject: %w", err)
	}

	return reviews, nil
}

// ListAllBySubject fetches every review about a subject for aggregation
func (r *ReviewRepository) ListAllBySubject(ctx context.Context, subjectID uuid.UUID) ([]*review.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE subject_id = $1`

	var reviews []*review.Review
	if err := r.db.DB.SelectContext(ctx, &reviews, query, subjectID); err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"subject_id": subjectID}).WithError(err).Error("db: failed to load reviews for aggregation")
		}
		return nil, fmt.Errorf("failed to load reviews for subject: %w", err)
	}

	return reviews, nil
}
