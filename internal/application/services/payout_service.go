package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/internal/core/domain/user"
	"github.com/chefpantry/chefpantry/internal/core/ports"
)

type PayoutService struct {
	userRepo ports.UserRepository
	payments ports.PaymentService
	logger   *logrus.Logger
}

func NewPayoutService(userRepo ports.UserRepository, payments ports.PaymentService, logger *logrus.Logger) ports.PayoutService {
	return &PayoutService{
		userRepo: userRepo,
		payments: payments,
		logger:   logger,
	}
}

func (s *PayoutService) StartOnboarding(ctx context.Context, userID uuid.UUID) (string, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("user not found: %w", err)
	}
	if u.Role != user.RoleChef {
		return "", fmt.Errorf("only chefs receive payouts")
	}

	if u.StripeAccountID == nil {
		accountID, err := s.payments.CreateAccount(ctx, u.Email)
		if err != nil {
			return "", fmt.Errorf("failed to create payment account: %w", err)
		}
		u.StripeAccountID = &accountID
		if err := s.userRepo.Update(ctx, u); err != nil {
			return "", fmt.Errorf("failed to store payment account id: %w", err)
		}
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"user_id": userID}).Info("payment account created")
		}
	}

	link, err := s.payments.OnboardingLink(ctx, *u.StripeAccountID)
	if err != nil {
		return "", fmt.Errorf("failed to create onboarding link: %w", err)
	}
	return link, nil
}

func (s *PayoutService) RefreshStatus(ctx context.Context, userID uuid.UUID) (*ports.AccountStatus, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if u.StripeAccountID == nil {
		return nil, fmt.Errorf("payout onboarding has not been started")
	}

	status, err := s.payments.GetAccountStatus(ctx, *u.StripeAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account status: %w", err)
	}

	if u.PayoutsEnabled != status.PayoutsEnabled {
		u.PayoutsEnabled = status.PayoutsEnabled
		if err := s.userRepo.Update(ctx, u); err != nil {
			return nil, fmt.Errorf("failed to store payout status: %w", err)
		}
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{
				"user_id":         userID,
				"payouts_enabled": status.PayoutsEnabled,
			}).Info("payout status updated")
		}
	}

	return status, nil
}
