package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/internal/core/domain/company"
	"github.com/chefpantry/chefpantry/internal/core/domain/notification"
	"github.com/chefpantry/chefpantry/internal/core/domain/user"
	"github.com/chefpantry/chefpantry/internal/core/ports"
)

const inviteTTL = 7 * 24 * time.Hour

type CompanyService struct {
	companyRepo  ports.CompanyRepository
	userRepo     ports.UserRepository
	emailService ports.EmailService
	notifier     ports.NotificationService
	logger       *logrus.Logger
}

func NewCompanyService(companyRepo ports.CompanyRepository, userRepo ports.UserRepository, emailService ports.EmailService, notifier ports.NotificationService, logger *logrus.Logger) ports.CompanyService {
	return &CompanyService{
		companyRepo:  companyRepo,
		userRepo:     userRepo,
		emailService: emailService,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *CompanyService) CreateCompany(ctx context.Context, ownerID uuid.UUID, req *company.CreateCompanyRequest) (*company.Company, error) {
	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if owner.Role != user.RoleBusiness {
		return nil, fmt.Errorf("only business accounts can register a company")
	}

	if existing, err := s.companyRepo.GetMembership(ctx, ownerID); err == nil && existing != nil {
		return nil, fmt.Errorf("user already belongs to a company")
	}

	if existing, err := s.companyRepo.GetBySlug(ctx, req.Slug); err == nil && existing != nil {
		return nil, fmt.Errorf("company slug already taken")
	}

	c := &company.Company{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Location:    req.Location,
		Website:     req.Website,
	}

	if err := s.companyRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	if err := s.companyRepo.AddMember(ctx, c.ID, ownerID, company.MemberRoleOwner); err != nil {
		return nil, fmt.Errorf("failed to add owner to company: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"company_id": c.ID,
			"owner_id":   ownerID,
		}).Info("company created")
	}
	return c, nil
}

func (s *CompanyService) GetCompany(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

func (s *CompanyService) UpdateCompany(ctx context.Context, actorID, companyID uuid.UUID, req *company.UpdateCompanyRequest) (*company.Company, error) {
	member, err := s.requireMember(ctx, companyID, actorID)
	if err != nil {
		return nil, err
	}
	if !member.Role.CanManageTeam() {
		return nil, fmt.Errorf("insufficient role to update company")
	}

	c, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("company not found: %w", err)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Location != nil {
		c.Location = *req.Location
	}
	if req.Website != nil {
		c.Website = *req.Website
	}

	if err := s.companyRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return c, nil
}

func (s *CompanyService) ListMembers(ctx context.Context, actorID, companyID uuid.UUID) ([]*company.Member, error) {
	if _, err := s.requireMember(ctx, companyID, actorID); err != nil {
		return nil, err
	}
	return s.companyRepo.ListMembers(ctx, companyID)
}

func (s *CompanyService) MembershipOf(ctx context.Context, userID uuid.UUID) (*company.Member, error) {
	member, err := s.companyRepo.GetMembership(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user has no company membership: %w", err)
	}
	return member, nil
}

func (s *CompanyService) InviteMember(ctx context.Context, actorID, companyID uuid.UUID, req *company.InviteMemberRequest) (*company.Invite, error) {
	member, err := s.requireMember(ctx, companyID, actorID)
	if err != nil {
		return nil, err
	}
	if !member.Role.CanManageTeam() {
		return nil, fmt.Errorf("insufficient role to invite members")
	}
	if !req.Role.IsValid() || req.Role == company.MemberRoleOwner {
		return nil, fmt.Errorf("invalid invite role: %s", req.Role)
	}

	c, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("company not found: %w", err)
	}

	token, err := generateInviteToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite token: %w", err)
	}

	inv := &company.Invite{
		ID:        uuid.New(),
		CompanyID: companyID,
		Email:     req.Email,
		Role:      req.Role,
		Token:     token,
		ExpiresAt: time.Now().Add(inviteTTL),
	}

	if err := s.companyRepo.CreateInvite(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	if err := s.emailService.SendTeamInvite(ctx, inv.Email, c.Name, token); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"invite_id": inv.ID}).WithError(err).Error("failed to send invite email")
		}
	}

	// If the invitee already has an account, surface the invite in-app too.
	if invitee, err := s.userRepo.GetByEmail(ctx, inv.Email); err == nil && invitee != nil {
		if err := s.notifier.Notify(ctx, invitee.ID, notification.TypeInviteReceived,
			"Team invitation", fmt.Sprintf("You have been invited to join %s", c.Name), &inv.ID); err != nil {
			if s.logger != nil {
				s.logger.WithError(err).Warn("failed to create invite notification")
			}
		}
	}

	return inv, nil
}

func (s *CompanyService) AcceptInvite(ctx context.Context, userID uuid.UUID, token string) (*company.Member, error) {
	inv, err := s.companyRepo.GetInviteByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("invite not found")
	}
	if inv.IsAccepted() {
		return nil, fmt.Errorf("invite already accepted")
	}
	if inv.IsExpired() {
		return nil, fmt.Errorf("invite has expired")
	}

	invitee, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if invitee.Email != inv.Email {
		return nil, fmt.Errorf("invite was issued to a different email address")
	}

	if existing, err := s.companyRepo.GetMembership(ctx, userID); err == nil && existing != nil {
		return nil, fmt.Errorf("user already belongs to a company")
	}

	if err := s.companyRepo.AddMember(ctx, inv.CompanyID, userID, inv.Role); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	if err := s.companyRepo.MarkInviteAccepted(ctx, inv.ID); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"invite_id": inv.ID}).WithError(err).Error("failed to mark invite accepted")
		}
	}

	return s.companyRepo.GetMember(ctx, inv.CompanyID, userID)
}

func (s *CompanyService) RemoveMember(ctx context.Context, actorID, companyID, userID uuid.UUID) error {
	actor, err := s.requireMember(ctx, companyID, actorID)
	if err != nil {
		return err
	}
	if !actor.Role.CanManageTeam() {
		return fmt.Errorf("insufficient role to remove members")
	}

	target, err := s.companyRepo.GetMember(ctx, companyID, userID)
	if err != nil {
		return fmt.Errorf("member not found: %w", err)
	}
	if target.Role == company.MemberRoleOwner {
		return fmt.Errorf("the company owner cannot be removed")
	}

	return s.companyRepo.RemoveMember(ctx, companyID, userID)
}

func (s *CompanyService) requireMember(ctx context.Context, companyID, userID uuid.UUID) (*company.Member, error) {
	member, err := s.companyRepo.GetMember(ctx, companyID, userID)
	if err != nil {
		return nil, fmt.Errorf("not a member of this company")
	}
	return member, nil
}

func generateInviteToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
