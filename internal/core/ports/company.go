package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/chefpantry/chefpantry/internal/core/domain/company"
)

// CompanyRepository defines the interface for company and team data operations
type CompanyRepository interface {
	Create(ctx context.Context, c *company.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*company.Company, error)
	GetBySlug(ctx context.Context, slug string) (*company.Company, error)
	Update(ctx context.Context, c *company.Company) error

	AddMember(ctx context.Context, companyID, userID uuid.UUID, role company.MemberRole) error
	RemoveMember(ctx context.Context, companyID, userID uuid.UUID) error
	GetMember(ctx context.Context, companyID, userID uuid.UUID) (*company.Member, error)
	GetMembership(ctx context.Context, userID uuid.UUID) (*company.Member, error)
	ListMembers(ctx context.Context, companyID uuid.UUID) ([]*company.Member, error)

	CreateInvite(ctx context.Context, inv *company.Invite) error
	GetInviteByToken(ctx context.Context, token string) (*company.Invite, error)
	MarkInviteAccepted(ctx context.Context, id uuid.UUID) error
}

// CompanyService defines the interface for company and team business logic
type CompanyService interface {
	CreateCompany(ctx context.Context, ownerID uuid.UUID, req *company.CreateCompanyRequest) (*company.Company, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*company.Company, error)
	UpdateCompany(ctx context.Context, actorID, companyID uuid.UUID, req *company.UpdateCompanyRequest) (*company.Company, error)
	ListMembers(ctx context.Context, actorID, companyID uuid.UUID) ([]*company.Member, error)
	// MembershipOf returns the actor's company membership, or an error when
	// the actor belongs to no company.
	MembershipOf(ctx context.Context, userID uuid.UUID) (*company.Member, error)

	InviteMember(ctx context.Context, actorID, companyID uuid.UUID, req *company.InviteMemberRequest) (*company.Invite, error)
	AcceptInvite(ctx context.Context, userID uuid.UUID, token string) (*company.Member, error)
	RemoveMember(ctx context.Context, actorID, companyID, userID uuid.UUID) error
}
