package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	impl "github.com/chefpantry/chefpantry/internal/application/services"
	"github.com/chefpantry/chefpantry/internal/core/domain/company"
	"github.com/chefpantry/chefpantry/internal/core/domain/user"
	"github.com/chefpantry/chefpantry/test/mocks"
)

func TestCompanyService_CreateRequiresBusinessAccount(t *testing.T) {
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
			return &user.User{ID: id, Role: user.RoleChef}, nil
		},
	}
	svc := impl.NewCompanyService(&mocks.CompanyRepositoryMock{}, userRepo, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	_, err := svc.CreateCompany(context.Background(), uuid.New(), &company.CreateCompanyRequest{Name: "The Larder", Slug: "the-larder"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "business accounts")
}

func TestCompanyService_CreateAddsOwnerMembership(t *testing.T) {
	ownerID := uuid.New()
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
			return &user.User{ID: id, Role: user.RoleBusiness}, nil
		},
	}
	var addedRole company.MemberRole
	companyRepo := &mocks.CompanyRepositoryMock{
		AddMemberFn: func(ctx context.Context, companyID, userID uuid.UUID, role company.MemberRole) error {
			require.Equal(t, ownerID, userID)
			addedRole = role
			return nil
		},
	}
	svc := impl.NewCompanyService(companyRepo, userRepo, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	c, err := svc.CreateCompany(context.Background(), ownerID, &company.CreateCompanyRequest{Name: "The Larder", Slug: "the-larder"})
	require.NoError(t, err)
	require.Equal(t, "the-larder", c.Slug)
	require.Equal(t, company.MemberRoleOwner, addedRole)
}

func TestCompanyService_CreateRejectsTakenSlug(t *testing.T) {
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
			return &user.User{ID: id, Role: user.RoleBusiness}, nil
		},
	}
	companyRepo := &mocks.CompanyRepositoryMock{
		GetBySlugFn: func(ctx context.Context, slug string) (*company.Company, error) {
			return &company.Company{ID: uuid.New(), Slug: slug}, nil
		},
	}
	svc := impl.NewCompanyService(companyRepo, userRepo, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	_, err := svc.CreateCompany(context.Background(), uuid.New(), &company.CreateCompanyRequest{Name: "Dup", Slug: "dup"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "slug already taken")
}

func TestCompanyService_InviteRequiresManagerialRole(t *testing.T) {
	companyID := uuid.New()
	companyRepo := &mocks.CompanyRepositoryMock{
		GetMemberFn: func(ctx context.Context, cID, uID uuid.UUID) (*company.Member, error) {
			return &company.Member{CompanyID: cID, UserID: uID, Role: company.MemberRoleMember}, nil
		},
	}
	svc := impl.NewCompanyService(companyRepo, &mocks.UserRepositoryMock{}, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	_, err := svc.InviteMember(context.Background(), uuid.New(), companyID, &company.InviteMemberRequest{Email: "x@example.com", Role: company.MemberRoleMember})
	require.Error(t, err)
	require.Contains(t, err.Error(), "insufficient role")
}

func TestCompanyService_InviteRejectsOwnerRole(t *testing.T) {
	companyRepo := &mocks.CompanyRepositoryMock{
		GetMemberFn: func(ctx context.Context, cID, uID uuid.UUID) (*company.Member, error) {
			return &company.Member{CompanyID: cID, UserID: uID, Role: company.MemberRoleOwner}, nil
		},
	}
	svc := impl.NewCompanyService(companyRepo, &mocks.UserRepositoryMock{}, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	_, err := svc.InviteMember(context.Background(), uuid.New(), uuid.New(), &company.InviteMemberRequest{Email: "x@example.com", Role: company.MemberRoleOwner})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid invite role")
}

func TestCompanyService_InviteEmailsTokenToInvitee(t *testing.T) {
	companyID := uuid.New()
	companyRepo := &mocks.CompanyRepositoryMock{
		GetMemberFn: func(ctx context.Context, cID, uID uuid.UUID) (*company.Member, error) {
			return &company.Member{CompanyID: cID, UserID: uID, Role: company.MemberRoleManager}, nil
		},
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*company.Company, error) {
			return &company.Company{ID: id, Name: "Brasserie Nine"}, nil
		},
	}
	var sentToken string
	emails := &mocks.EmailServiceMock{
		SendTeamInviteFn: func(ctx context.Context, email, companyName, token string) error {
			require.Equal(t, "sous@example.com", email)
			require.Equal(t, "Brasserie Nine", companyName)
			sentToken = token
			return nil
		},
	}
	svc := impl.NewCompanyService(companyRepo, &mocks.UserRepositoryMock{}, emails, &mocks.NotificationServiceMock{}, logrus.New())

	inv, err := svc.InviteMember(context.Background(), uuid.New(), companyID, &company.InviteMemberRequest{Email: "sous@example.com", Role: company.MemberRoleMember})
	require.NoError(t, err)
	require.NotEmpty(t, inv.Token)
	require.Equal(t, inv.Token, sentToken)
	if !inv.ExpiresAt.After(time.Now()) {
		t.Fatalf("invite should expire in the future, got %v", inv.ExpiresAt)
	}
}

func TestCompanyService_AcceptInviteRejectsExpired(t *testing.T) {
	companyRepo := &mocks.CompanyRepositoryMock{
		GetInviteByTokenFn: func(ctx context.Context, token string) (*company.Invite, error) {
			return &company.Invite{
				ID:        uuid.New(),
				Email:     "sous@example.com",
				Role:      company.MemberRoleMember,
				Token:     token,
				ExpiresAt: time.Now().Add(-time.Hour),
			}, nil
		},
	}
	svc := impl.NewCompanyService(companyRepo, &mocks.UserRepositoryMock{}, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	_, err := svc.AcceptInvite(context.Background(), uuid.New(), "tok")
	require.Error(t, err)
	require.Contains(t, err.Error(), "expired")
}

func TestCompanyService_AcceptInviteRejectsEmailMismatch(t *testing.T) {
	companyRepo := &mocks.CompanyRepositoryMock{
		GetInviteByTokenFn: func(ctx context.Context, token string) (*company.Invite, error) {
			return &company.Invite{
				ID:        uuid.New(),
				Email:     "sous@example.com",
				Role:      company.MemberRoleMember,
				Token:     token,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	}
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
			return &user.User{ID: id, Email: "someone-else@example.com"}, nil
		},
	}
	svc := impl.NewCompanyService(companyRepo, userRepo, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	_, err := svc.AcceptInvite(context.Background(), uuid.New(), "tok")
	require.Error(t, err)
	require.Contains(t, err.Error(), "different email")
}

func TestCompanyService_AcceptInviteAddsMember(t *testing.T) {
	companyID := uuid.New()
	userID := uuid.New()
	inviteID := uuid.New()
	added := false
	marked := false
	companyRepo := &mocks.CompanyRepositoryMock{
		GetInviteByTokenFn: func(ctx context.Context, token string) (*company.Invite, error) {
			return &company.Invite{
				ID:        inviteID,
				CompanyID: companyID,
				Email:     "sous@example.com",
				Role:      company.MemberRoleManager,
				Token:     token,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
		AddMemberFn: func(ctx context.Context, cID, uID uuid.UUID, role company.MemberRole) error {
			require.Equal(t, companyID, cID)
			require.Equal(t, userID, uID)
			require.Equal(t, company.MemberRoleManager, role)
			added = true
			return nil
		},
		MarkInviteAcceptedFn: func(ctx context.Context, id uuid.UUID) error {
			require.Equal(t, inviteID, id)
			marked = true
			return nil
		},
		GetMemberFn: func(ctx context.Context, cID, uID uuid.UUID) (*company.Member, error) {
			return &company.Member{CompanyID: cID, UserID: uID, Role: company.MemberRoleManager}, nil
		},
	}
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
			return &user.User{ID: id, Email: "sous@example.com"}, nil
		},
	}
	svc := impl.NewCompanyService(companyRepo, userRepo, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	member, err := svc.AcceptInvite(context.Background(), userID, "tok")
	require.NoError(t, err)
	require.True(t, added)
	require.True(t, marked)
	require.Equal(t, company.MemberRoleManager, member.Role)
}

func TestCompanyService_RemoveMemberProtectsOwner(t *testing.T) {
	companyID := uuid.New()
	ownerID := uuid.New()
	companyRepo := &mocks.CompanyRepositoryMock{
		GetMemberFn: func(ctx context.Context, cID, uID uuid.UUID) (*company.Member, error) {
			role := company.MemberRoleManager
			if uID == ownerID {
				role = company.MemberRoleOwner
			}
			return &company.Member{CompanyID: cID, UserID: uID, Role: role}, nil
		},
	}
	svc := impl.NewCompanyService(companyRepo, &mocks.UserRepositoryMock{}, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	err := svc.RemoveMember(context.Background(), uuid.New(), companyID, ownerID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "owner cannot be removed")
}
