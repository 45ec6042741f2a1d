package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/chefpantry/chefpantry/internal/core/domain/user"
	"github.com/chefpantry/chefpantry/internal/core/ports"
)

type UserService struct {
	userRepo  ports.UserRepository
	tokenRepo ports.TokenRepository
	logger    *logrus.Logger
}

func NewUserService(userRepo ports.UserRepository, tokenRepo ports.TokenRepository, logger *logrus.Logger) ports.UserService {
	return &UserService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		logger:    logger,
	}
}

func (s *UserService) Register(ctx context.Context, req *user.RegisterRequest) (*user.User, error) {
	if !req.Role.IsValid() || req.Role == user.RoleAdmin {
		return nil, fmt.Errorf("invalid role: %s", req.Role)
	}

	if existing, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"user_id": newUser.ID,
			"role":    newUser.Role,
		}).Info("user registered")
	}

	return newUser, nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.User, error) {
	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	if req.FirstName != nil {
		existing.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		existing.LastName = *req.LastName
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return existing, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	existing, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	existing.PasswordHash = string(hash)
	if err := s.userRepo.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	// Existing sessions keep their access tokens until expiry, but refresh
	// tokens are revoked so they cannot outlive the old password.
	if err := s.tokenRepo.DeleteUserRefreshTokens(ctx, userID); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"user_id": userID}).WithError(err).Warn("failed to revoke refresh tokens after password change")
		}
	}

	return nil
}

func (s *UserService) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	existing.IsActive = false
	if err := s.userRepo.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	if err := s.tokenRepo.DeleteUserRefreshTokens(ctx, id); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"user_id": id}).WithError(err).Warn("failed to revoke refresh tokens on deactivation")
		}
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": id}).Info("user deactivated")
	}
	return nil
}
