package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/internal/core/domain/gig"
	"github.com/chefpantry/chefpantry/internal/core/domain/notification"
	"github.com/chefpantry/chefpantry/internal/core/domain/review"
	"github.com/chefpantry/chefpantry/internal/core/ports"
)

type ReviewService struct {
	reviewRepo  ports.ReviewRepository
	gigRepo     ports.GigRepository
	companyRepo ports.CompanyRepository
	notifier    ports.NotificationService
	logger      *logrus.Logger
}

func NewReviewService(reviewRepo ports.ReviewRepository, gigRepo ports.GigRepository, companyRepo ports.CompanyRepository, notifier ports.NotificationService, logger *logrus.Logger) ports.ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		gigRepo:     gigRepo,
		companyRepo: companyRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *ReviewService) CreateReview(ctx context.Context, authorID uuid.UUID, req *review.CreateReviewRequest) (*review.Review, error) {
	if err := req.ValidateScores(); err != nil {
		return nil, err
	}
	if req.SubjectID == authorID {
		return nil, fmt.Errorf("cannot review yourself")
	}

	g, err := s.gigRepo.GetByID(ctx, req.GigID)
	if err != nil {
		return nil, fmt.Errorf("gig not found: %w", err)
	}
	if g.Status != gig.StatusCompleted {
		return nil, fmt.Errorf("reviews can only be left for completed gigs")
	}

	authorSide, err := s.participantSide(ctx, g, authorID)
	if err != nil {
		return nil, err
	}
	subjectSide, err := s.participantSide(ctx, g, req.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("subject did not take part in this gig")
	}
	if authorSide == subjectSide {
		return nil, fmt.Errorf("reviews must cross the marketplace: chefs review businesses and vice versa")
	}

	if existing, err := s.reviewRepo.GetByGigAndAuthor(ctx, req.GigID, authorID); err == nil && existing != nil {
		return nil, fmt.Errorf("you have already reviewed this gig")
	}

	r := &review.Review{
		ID:              uuid.New(),
		GigID:           req.GigID,
		AuthorID:        authorID,
		SubjectID:       req.SubjectID,
		FoodQuality:     req.FoodQuality,
		Punctuality:     req.Punctuality,
		Communication:   req.Communication,
		Professionalism: req.Professionalism,
		Comment:         req.Comment,
	}

	if err := s.reviewRepo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.notifier.Notify(ctx, req.SubjectID, notification.TypeReviewReceived,
		"New review", fmt.Sprintf("You received a review for %q", g.Title), &r.ID); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"review_id": r.ID}).WithError(err).Warn("failed to create review notification")
		}
	}

	return r, nil
}

func (s *ReviewService) ListForSubject(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*review.Review, error) {
	limit, offset = clampPage(limit, offset)
	return s.reviewRepo.ListBySubject(ctx, subjectID, limit, offset)
}

func (s *ReviewService) Summary(ctx context.Context, subjectID uuid.UUID) (*review.Summary, error) {
	reviews, err := s.reviewRepo.ListAllBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}

	summary := &review.Summary{SubjectID: subjectID, Count: len(reviews)}
	if len(reviews) == 0 {
		return summary, nil
	}

	var food, punct, comm, prof int
	for _, r := range reviews {
		food += r.FoodQuality
		punct += r.Punctuality
		comm += r.Communication
		prof += r.Professionalism
	}

	n := float64(len(reviews))
	summary.FoodQuality = float64(food) / n
	summary.Punctuality = float64(punct) / n
	summary.Communication = float64(comm) / n
	summary.Professionalism = float64(prof) / n
	summary.Overall = (summary.FoodQuality + summary.Punctuality + summary.Communication + summary.Professionalism) / 4

	return summary, nil
}

// participantSide reports which side of the gig the user was on: "chef" when
// they worked it on an accepted application, "company" when they belong to
// the posting company.
func (s *ReviewService) participantSide(ctx context.Context, g *gig.Gig, userID uuid.UUID) (string, error) {
	if app, err := s.gigRepo.GetApplicationByGigAndChef(ctx, g.ID, userID); err == nil && app != nil && app.Status == gig.ApplicationAccepted {
		return "chef", nil
	}
	if member, err := s.companyRepo.GetMember(ctx, g.CompanyID, userID); err == nil && member != nil {
		return "company", nil
	}
	return "", fmt.Errorf("user did not take part in this gig")
}
