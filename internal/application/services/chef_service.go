package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/internal/core/domain/chef"
	"github.com/chefpantry/chefpantry/internal/core/domain/user"
	"github.com/chefpantry/chefpantry/internal/core/ports"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

type ChefService struct {
	chefRepo ports.ChefRepository
	userRepo ports.UserRepository
	logger   *logrus.Logger
}

func NewChefService(chefRepo ports.ChefRepository, userRepo ports.UserRepository, logger *logrus.Logger) ports.ChefService {
	return &ChefService{
		chefRepo: chefRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *ChefService) UpsertProfile(ctx context.Context, userID uuid.UUID, req *chef.UpsertProfileRequest) (*chef.Profile, error) {
	owner, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if owner.Role != user.RoleChef {
		return nil, fmt.Errorf("only chef accounts can have a chef profile")
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	} else if existing, err := s.chefRepo.GetByUserID(ctx, userID); err == nil && existing != nil {
		available = existing.Available
	}

	profile := &chef.Profile{
		UserID:          userID,
		Headline:        req.Headline,
		Bio:             req.Bio,
		Cuisines:        req.Cuisines,
		YearsExperience: req.YearsExperience,
		HourlyRateCents: req.HourlyRateCents,
		Location:        req.Location,
		Available:       available,
	}

	if err := s.chefRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": userID}).Info("chef profile saved")
	}
	return profile, nil
}

func (s *ChefService) GetProfile(ctx context.Context, userID uuid.UUID) (*chef.Profile, error) {
	return s.chefRepo.GetByUserID(ctx, userID)
}

func (s *ChefService) SearchProfiles(ctx context.Context, filter *chef.SearchFilter) ([]*chef.Profile, error) {
	if filter == nil {
		filter = &chef.SearchFilter{}
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
	return s.chefRepo.Search(ctx, filter)
}

func (s *ChefService) SetAvailability(ctx context.Context, userID uuid.UUID, available bool) (*chef.Profile, error) {
	profile, err := s.chefRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile not found: %w", err)
	}

	profile.Available = available
	if err := s.chefRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update availability: %w", err)
	}
	return profile, nil
}
