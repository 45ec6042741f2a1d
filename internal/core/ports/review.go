package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/chefpantry/chefpantry/internal/core/domain/review"
)

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) error
	GetByGigAndAuthor(ctx context.Context, gigID, authorID uuid.UUID) (*review.Review, error)
	ListBySubject(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*review.Review, error)
	ListAllBySubject(ctx context.Context, subjectID uuid.UUID) ([]*review.Review, error)
}

// ReviewService defines the interface for review business logic
type ReviewService interface {
	CreateReview(ctx context.Context, authorID uuid.UUID, req *review.CreateReviewRequest) (*review.Review, error)
	ListForSubject(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*review.Review, error)
	// Summary averages each score category over the subject's reviews.
	Summary(ctx context.Context, subjectID uuid.UUID) (*review.Summary, error)
}
