package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/internal/core/domain/gig"
	"github.com/chefpantry/chefpantry/internal/core/domain/notification"
	"github.com/chefpantry/chefpantry/internal/core/domain/user"
	"github.com/chefpantry/chefpantry/internal/core/ports"
)

type GigService struct {
	gigRepo     ports.GigRepository
	userRepo    ports.UserRepository
	companyRepo ports.CompanyRepository
	notifier    ports.NotificationService
	logger      *logrus.Logger
}

func NewGigService(gigRepo ports.GigRepository, userRepo ports.UserRepository, companyRepo ports.CompanyRepository, notifier ports.NotificationService, logger *logrus.Logger) ports.GigService {
	return &GigService{
		gigRepo:     gigRepo,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *GigService) PostGig(ctx context.Context, actorID uuid.UUID, req *gig.CreateGigRequest) (*gig.Gig, error) {
	member, err := s.companyRepo.GetMembership(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("gigs can only be posted on behalf of a company")
	}

	if !req.EndsAt.After(req.StartsAt) {
		return nil, fmt.Errorf("gig must end after it starts")
	}
	if req.PayRateCents < 0 {
		return nil, fmt.Errorf("pay rate cannot be negative")
	}

	g := &gig.Gig{
		ID:           uuid.New(),
		CompanyID:    member.CompanyID,
		PostedBy:     actorID,
		Title:        req.Title,
		Description:  req.Description,
		Venue:        req.Venue,
		Cuisine:      req.Cuisine,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
		PayRateCents: req.PayRateCents,
		Status:       gig.StatusOpen,
	}

	if err := s.gigRepo.Create(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to create gig: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"gig_id":     g.ID,
			"company_id": g.CompanyID,
		}).Info("gig posted")
	}
	return g, nil
}

func (s *GigService) UpdateGig(ctx context.Context, actorID, gigID uuid.UUID, req *gig.UpdateGigRequest) (*gig.Gig, error) {
	g, err := s.requireCompanyGig(ctx, actorID, gigID)
	if err != nil {
		return nil, err
	}
	if !g.IsOpen() {
		return nil, fmt.Errorf("only open gigs can be edited")
	}

	if req.Title != nil {
		g.Title = *req.Title
	}
	if req.Description != nil {
		g.Description = *req.Description
	}
	if req.Venue != nil {
		g.Venue = *req.Venue
	}
	if req.Cuisine != nil {
		g.Cuisine = *req.Cuisine
	}
	if req.StartsAt != nil {
		g.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		g.EndsAt = *req.EndsAt
	}
	if req.PayRateCents != nil {
		if *req.PayRateCents < 0 {
			return nil, fmt.Errorf("pay rate cannot be negative")
		}
		g.PayRateCents = *req.PayRateCents
	}
	if !g.EndsAt.After(g.StartsAt) {
		return nil, fmt.Errorf("gig must end after it starts")
	}

	if err := s.gigRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to update gig: %w", err)
	}
	return g, nil
}

func (s *GigService) CancelGig(ctx context.Context, actorID, gigID uuid.UUID) (*gig.Gig, error) {
	g, err := s.requireCompanyGig(ctx, actorID, gigID)
	if err != nil {
		return nil, err
	}
	if g.IsTerminal() {
		return nil, fmt.Errorf("gig is already %s", g.Status)
	}

	g.Status = gig.StatusCancelled
	if err := s.gigRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to cancel gig: %w", err)
	}

	// Everyone with a live application hears about the cancellation.
	apps, err := s.gigRepo.ListApplicationsForGig(ctx, gigID)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"gig_id": gigID}).WithError(err).Warn("failed to list applications for cancellation notices")
		}
		return g, nil
	}
	for _, a := range apps {
		if a.Status != gig.ApplicationPending && a.Status != gig.ApplicationAccepted {
			continue
		}
		s.notify(ctx, a.ChefID, notification.TypeGigCancelled,
			"Gig cancelled", fmt.Sprintf("The gig %q has been cancelled", g.Title), &g.ID)
	}

	return g, nil
}

func (s *GigService) CompleteGig(ctx context.Context, actorID, gigID uuid.UUID) (*gig.Gig, error) {
	g, err := s.requireCompanyGig(ctx, actorID, gigID)
	if err != nil {
		return nil, err
	}
	if g.Status != gig.StatusFilled {
		return nil, fmt.Errorf("only filled gigs can be completed")
	}

	g.Status = gig.StatusCompleted
	if err := s.gigRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to complete gig: %w", err)
	}
	return g, nil
}

func (s *GigService) GetGig(ctx context.Context, id uuid.UUID) (*gig.Gig, error) {
	return s.gigRepo.GetByID(ctx, id)
}

func (s *GigService) ListGigs(ctx context.Context, filter *gig.Filter) ([]*gig.Gig, error) {
	if filter == nil {
		filter = &gig.Filter{}
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultSearchLimit
	}
	if filter.Limit > maxSearchLimit {
		filter.Limit = maxSearchLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.gigRepo.List(ctx, filter)
}

func (s *GigService) Apply(ctx context.Context, chefID, gigID uuid.UUID, req *gig.ApplyRequest) (*gig.Application, error) {
	applicant, err := s.userRepo.GetByID(ctx, chefID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if applicant.Role != user.RoleChef {
		return nil, fmt.Errorf("only chefs can apply to gigs")
	}

	g, err := s.gigRepo.GetByID(ctx, gigID)
	if err != nil {
		return nil, fmt.Errorf("gig not found: %w", err)
	}
	if !g.IsOpen() {
		return nil, fmt.Errorf("gig is not accepting applications")
	}

	if existing, err := s.gigRepo.GetApplicationByGigAndChef(ctx, gigID, chefID); err == nil && existing != nil {
		if existing.Status != gig.ApplicationWithdrawn {
			return nil, fmt.Errorf("already applied to this gig")
		}
		// A withdrawn application can be re-opened with a fresh note.
		existing.CoverNote = req.CoverNote
		existing.Status = gig.ApplicationPending
		if err := s.gigRepo.UpdateApplication(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to re-apply: %w", err)
		}
		s.notifyPoster(ctx, g, applicant)
		return existing, nil
	}

	a := &gig.Application{
		ID:        uuid.New(),
		GigID:     gigID,
		ChefID:    chefID,
		CoverNote: req.CoverNote,
		Status:    gig.ApplicationPending,
	}

	if err := s.gigRepo.CreateApplication(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	s.notifyPoster(ctx, g, applicant)
	return a, nil
}

func (s *GigService) Withdraw(ctx context.Context, chefID, applicationID uuid.UUID) (*gig.Application, error) {
	a, err := s.gigRepo.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("application not found: %w", err)
	}
	if a.ChefID != chefID {
		return nil, fmt.Errorf("application belongs to another chef")
	}
	if !a.IsPending() {
		return nil, fmt.Errorf("only pending applications can be withdrawn")
	}

	a.Status = gig.ApplicationWithdrawn
	if err := s.gigRepo.UpdateApplication(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to withdraw application: %w", err)
	}
	return a, nil
}

func (s *GigService) ListGigApplications(ctx context.Context, actorID, gigID uuid.UUID) ([]*gig.Application, error) {
	if _, err := s.requireCompanyGig(ctx, actorID, gigID); err != nil {
		return nil, err
	}
	return s.gigRepo.ListApplicationsForGig(ctx, gigID)
}

func (s *GigService) ListOwnApplications(ctx context.Context, chefID uuid.UUID) ([]*gig.Application, error) {
	return s.gigRepo.ListApplicationsForChef(ctx, chefID)
}

func (s *GigService) AcceptApplication(ctx context.Context, actorID, applicationID uuid.UUID) (*gig.Application, error) {
	a, err := s.gigRepo.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("application not found: %w", err)
	}

	g, err := s.requireCompanyGig(ctx, actorID, a.GigID)
	if err != nil {
		return nil, err
	}
	if !g.IsOpen() {
		return nil, fmt.Errorf("gig is not open")
	}
	if !a.IsPending() {
		return nil, fmt.Errorf("application is not pending")
	}

	a.Status = gig.ApplicationAccepted
	if err := s.gigRepo.UpdateApplication(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to accept application: %w", err)
	}

	g.Status = gig.StatusFilled
	if err := s.gigRepo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to mark gig filled: %w", err)
	}

	declined, err := s.gigRepo.DeclinePendingApplications(ctx, a.GigID, a.ID)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"gig_id": a.GigID}).WithError(err).Error("failed to decline sibling applications")
		}
	}

	s.notify(ctx, a.ChefID, notification.TypeApplicationAccepted,
		"Application accepted", fmt.Sprintf("Your application for %q was accepted", g.Title), &a.ID)
	for _, chefID := range declined {
		s.notify(ctx, chefID, notification.TypeApplicationDeclined,
			"Application declined", fmt.Sprintf("The gig %q has been filled", g.Title), &g.ID)
	}

	return a, nil
}

func (s *GigService) DeclineApplication(ctx context.Context, actorID, applicationID uuid.UUID) (*gig.Application, error) {
	a, err := s.gigRepo.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("application not found: %w", err)
	}

	g, err := s.requireCompanyGig(ctx, actorID, a.GigID)
	if err != nil {
		return nil, err
	}
	if !a.IsPending() {
		return nil, fmt.Errorf("application is not pending")
	}

	a.Status = gig.ApplicationDeclined
	if err := s.gigRepo.UpdateApplication(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to decline application: %w", err)
	}

	s.notify(ctx, a.ChefID, notification.TypeApplicationDeclined,
		"Application declined", fmt.Sprintf("Your application for %q was declined", g.Title), &a.ID)

	return a, nil
}

// requireCompanyGig loads the gig and verifies the actor belongs to the
// company that owns it.
func (s *GigService) requireCompanyGig(ctx context.Context, actorID, gigID uuid.UUID) (*gig.Gig, error) {
	g, err := s.gigRepo.GetByID(ctx, gigID)
	if err != nil {
		return nil, fmt.Errorf("gig not found: %w", err)
	}

	member, err := s.companyRepo.GetMember(ctx, g.CompanyID, actorID)
	if err != nil || member == nil {
		return nil, fmt.Errorf("gig belongs to another company")
	}
	return g, nil
}

func (s *GigService) notifyPoster(ctx context.Context, g *gig.Gig, applicant *user.User) {
	s.notify(ctx, g.PostedBy, notification.TypeApplicationReceived,
		"New application", fmt.Sprintf("%s applied to %q", applicant.FullName(), g.Title), &g.ID)
}

func (s *GigService) notify(ctx context.Context, userID uuid.UUID, typ notification.Type, title, body string, refID *uuid.UUID) {
	if err := s.notifier.Notify(ctx, userID, typ, title, body, refID); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"user_id": userID, "type": typ}).WithError(err).Warn("failed to create notification")
		}
	}
}
