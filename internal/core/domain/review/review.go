package review

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Review scores a counterparty on a completed gig across four categories,
// each 1-5. One review per (gig, author).
type Review struct {
	ID              uuid.UUID `json:"id" db:"id"`
	GigID           uuid.UUID `json:"gig_id" db:"gig_id"`
	AuthorID        uuid.UUID `json:"author_id" db:"author_id"`
	SubjectID       uuid.UUID `json:"subject_id" db:"subject_id"`
	FoodQuality     int       `json:"food_quality" db:"food_quality"`
	Punctuality     int       `json:"punctuality" db:"punctuality"`
	Communication   int       `json:"communication" db:"communication"`
	Professionalism int       `json:"professionalism" db:"professionalism"`
	Comment         string    `json:"comment" db:"comment"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// CreateReviewRequest represents the request to review a counterparty on a gig
type CreateReviewRequest struct {
	GigID           uuid.UUID `json:"gig_id" validate:"required"`
	SubjectID       uuid.UUID `json:"subject_id" validate:"required"`
	FoodQuality     int       `json:"food_quality" validate:"required,min=1,max=5"`
	Punctuality     int       `json:"punctuality" validate:"required,min=1,max=5"`
	Communication   int       `json:"communication" validate:"required,min=1,max=5"`
	Professionalism int       `json:"professionalism" validate:"required,min=1,max=5"`
	Comment         string    `json:"comment"`
}

// ValidateScores rejects out-of-range category scores.
func (r *CreateReviewRequest) ValidateScores() error {
	for name, score := range map[string]int{
		"food_quality":    r.FoodQuality,
		"punctuality":     r.Punctuality,
		"communication":   r.Communication,
		"professionalism": r.Professionalism,
	} {
		if score < 1 || score > 5 {
			return fmt.Errorf("score %s must be between 1 and 5, got %d", name, score)
		}
	}
	return nil
}

// Summary holds per-category averages for one subject, computed over all
// their reviews.
type Summary struct {
	SubjectID       uuid.UUID `json:"subject_id"`
	Count           int       `json:"count"`
	FoodQuality     float64   `json:"food_quality"`
	Punctuality     float64   `json:"punctuality"`
	Communication   float64   `json:"communication"`
	Professionalism float64   `json:"professionalism"`
	Overall         float64   `json:"overall"`
}
