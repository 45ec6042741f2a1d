package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/chefpantry/chefpantry/internal/core/domain/auth"
	"github.com/chefpantry/chefpantry/internal/core/domain/chef"
	"github.com/chefpantry/chefpantry/internal/core/domain/company"
	"github.com/chefpantry/chefpantry/internal/core/domain/gig"
	"github.com/chefpantry/chefpantry/internal/core/domain/invoice"
	"github.com/chefpantry/chefpantry/internal/core/domain/notification"
	"github.com/chefpantry/chefpantry/internal/core/domain/review"
	"github.com/chefpantry/chefpantry/internal/core/domain/user"
	"github.com/chefpantry/chefpantry/internal/core/ports"
)

// UserRepositoryMock is a lightweight mock for UserRepository
type UserRepositoryMock struct {
	CreateFn     func(ctx context.Context, u *user.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*user.User, error)
	UpdateFn     func(ctx context.Context, u *user.User) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (m *UserRepositoryMock) Create(ctx context.Context, u *user.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}
func (m *UserRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *UserRepositoryMock) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, fmt.Errorf("not found")
}
func (m *UserRepositoryMock) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, u)
	}
	return nil
}
func (m *UserRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// TokenRepositoryMock is a lightweight mock for TokenRepository
type TokenRepositoryMock struct {
	StoreRefreshTokenFn       func(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error
	GetRefreshTokenFn         func(ctx context.Context, token string) (*ports.RefreshToken, error)
	DeleteRefreshTokenFn      func(ctx context.Context, token string) error
	DeleteUserRefreshTokensFn func(ctx context.Context, userID uuid.UUID) error
	BlacklistTokenFn          func(ctx context.Context, token string, expiresAt time.Time) error
	IsTokenBlacklistedFn      func(ctx context.Context, token string) (bool, error)
}

func (m *TokenRepositoryMock) StoreRefreshToken(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	if m.StoreRefreshTokenFn != nil {
		return m.StoreRefreshTokenFn(ctx, userID, token, expiresAt)
	}
	return nil
}
func (m *TokenRepositoryMock) GetRefreshToken(ctx context.Context, token string) (*ports.RefreshToken, error) {
	if m.GetRefreshTokenFn != nil {
		return m.GetRefreshTokenFn(ctx, token)
	}
	return nil, fmt.Errorf("not found")
}
func (m *TokenRepositoryMock) DeleteRefreshToken(ctx context.Context, token string) error {
	if m.DeleteRefreshTokenFn != nil {
		return m.DeleteRefreshTokenFn(ctx, token)
	}
	return nil
}
func (m *TokenRepositoryMock) DeleteUserRefreshTokens(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteUserRefreshTokensFn != nil {
		return m.DeleteUserRefreshTokensFn(ctx, userID)
	}
	return nil
}
func (m *TokenRepositoryMock) BlacklistToken(ctx context.Context, token string, expiresAt time.Time) error {
	if m.BlacklistTokenFn != nil {
		return m.BlacklistTokenFn(ctx, token, expiresAt)
	}
	return nil
}
func (m *TokenRepositoryMock) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	if m.IsTokenBlacklistedFn != nil {
		return m.IsTokenBlacklistedFn(ctx, token)
	}
	return false, nil
}

// ChefRepositoryMock is a lightweight mock for ChefRepository
type ChefRepositoryMock struct {
	UpsertFn      func(ctx context.Context, p *chef.Profile) error
	GetByUserIDFn func(ctx context.Context, userID uuid.UUID) (*chef.Profile, error)
	SearchFn      func(ctx context.Context, filter *chef.SearchFilter) ([]*chef.Profile, error)
}

func (m *ChefRepositoryMock) Upsert(ctx context.Context, p *chef.Profile) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, p)
	}
	return nil
}
func (m *ChefRepositoryMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*chef.Profile, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, fmt.Errorf("not found")
}
func (m *ChefRepositoryMock) Search(ctx context.Context, filter *chef.SearchFilter) ([]*chef.Profile, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, filter)
	}
	return nil, nil
}

// CompanyRepositoryMock is a lightweight mock for CompanyRepository
type CompanyRepositoryMock struct {
	CreateFn             func(ctx context.Context, c *company.Company) error
	GetByIDFn            func(ctx context.Context, id uuid.UUID) (*company.Company, error)
	GetBySlugFn          func(ctx context.Context, slug string) (*company.Company, error)
	UpdateFn             func(ctx context.Context, c *company.Company) error
	AddMemberFn          func(ctx context.Context, companyID, userID uuid.UUID, role company.MemberRole) error
	RemoveMemberFn       func(ctx context.Context, companyID, userID uuid.UUID) error
	GetMemberFn          func(ctx context.Context, companyID, userID uuid.UUID) (*company.Member, error)
	GetMembershipFn      func(ctx context.Context, userID uuid.UUID) (*company.Member, error)
	ListMembersFn        func(ctx context.Context, companyID uuid.UUID) ([]*company.Member, error)
	CreateInviteFn       func(ctx context.Context, inv *company.Invite) error
	GetInviteByTokenFn   func(ctx context.Context, token string) (*company.Invite, error)
	MarkInviteAcceptedFn func(ctx context.Context, id uuid.UUID) error
}

func (m *CompanyRepositoryMock) Create(ctx context.Context, c *company.Company) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *CompanyRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *CompanyRepositoryMock) GetBySlug(ctx context.Context, slug string) (*company.Company, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, fmt.Errorf("not found")
}
func (m *CompanyRepositoryMock) Update(ctx context.Context, c *company.Company) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, c)
	}
	return nil
}
func (m *CompanyRepositoryMock) AddMember(ctx context.Context, companyID, userID uuid.UUID, role company.MemberRole) error {
	if m.AddMemberFn != nil {
		return m.AddMemberFn(ctx, companyID, userID, role)
	}
	return nil
}
func (m *CompanyRepositoryMock) RemoveMember(ctx context.Context, companyID, userID uuid.UUID) error {
	if m.RemoveMemberFn != nil {
		return m.RemoveMemberFn(ctx, companyID, userID)
	}
	return nil
}
func (m *CompanyRepositoryMock) GetMember(ctx context.Context, companyID, userID uuid.UUID) (*company.Member, error) {
	if m.GetMemberFn != nil {
		return m.GetMemberFn(ctx, companyID, userID)
	}
	return nil, fmt.Errorf("not found")
}
func (m *CompanyRepositoryMock) GetMembership(ctx context.Context, userID uuid.UUID) (*company.Member, error) {
	if m.GetMembershipFn != nil {
		return m.GetMembershipFn(ctx, userID)
	}
	return nil, fmt.Errorf("not found")
}
func (m *CompanyRepositoryMock) ListMembers(ctx context.Context, companyID uuid.UUID) ([]*company.Member, error) {
	if m.ListMembersFn != nil {
		return m.ListMembersFn(ctx, companyID)
	}
	return nil, nil
}
func (m *CompanyRepositoryMock) CreateInvite(ctx context.Context, inv *company.Invite) error {
	if m.CreateInviteFn != nil {
		return m.CreateInviteFn(ctx, inv)
	}
	return nil
}
func (m *CompanyRepositoryMock) GetInviteByToken(ctx context.Context, token string) (*company.Invite, error) {
	if m.GetInviteByTokenFn != nil {
		return m.GetInviteByTokenFn(ctx, token)
	}
	return nil, fmt.Errorf("not found")
}
func (m *CompanyRepositoryMock) MarkInviteAccepted(ctx context.Context, id uuid.UUID) error {
	if m.MarkInviteAcceptedFn != nil {
		return m.MarkInviteAcceptedFn(ctx, id)
	}
	return nil
}

// GigRepositoryMock is a lightweight mock for GigRepository
type GigRepositoryMock struct {
	CreateFn                     func(ctx context.Context, g *gig.Gig) error
	GetByIDFn                    func(ctx context.Context, id uuid.UUID) (*gig.Gig, error)
	UpdateFn                     func(ctx context.Context, g *gig.Gig) error
	ListFn                       func(ctx context.Context, filter *gig.Filter) ([]*gig.Gig, error)
	CreateApplicationFn          func(ctx context.Context, a *gig.Application) error
	GetApplicationFn             func(ctx context.Context, id uuid.UUID) (*gig.Application, error)
	GetApplicationByGigAndChefFn func(ctx context.Context, gigID, chefID uuid.UUID) (*gig.Application, error)
	UpdateApplicationFn          func(ctx context.Context, a *gig.Application) error
	ListApplicationsForGigFn     func(ctx context.Context, gigID uuid.UUID) ([]*gig.Application, error)
	ListApplicationsForChefFn    func(ctx context.Context, chefID uuid.UUID) ([]*gig.Application, error)
	DeclinePendingApplicationsFn func(ctx context.Context, gigID uuid.UUID, keep uuid.UUID) ([]uuid.UUID, error)
}

func (m *GigRepositoryMock) Create(ctx context.Context, g *gig.Gig) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, g)
	}
	return nil
}
func (m *GigRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*gig.Gig, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *GigRepositoryMock) Update(ctx context.Context, g *gig.Gig) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, g)
	}
	return nil
}
func (m *GigRepositoryMock) List(ctx context.Context, filter *gig.Filter) ([]*gig.Gig, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}
	return nil, nil
}
func (m *GigRepositoryMock) CreateApplication(ctx context.Context, a *gig.Application) error {
	if m.CreateApplicationFn != nil {
		return m.CreateApplicationFn(ctx, a)
	}
	return nil
}
func (m *GigRepositoryMock) GetApplication(ctx context.Context, id uuid.UUID) (*gig.Application, error) {
	if m.GetApplicationFn != nil {
		return m.GetApplicationFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *GigRepositoryMock) GetApplicationByGigAndChef(ctx context.Context, gigID, chefID uuid.UUID) (*gig.Application, error) {
	if m.GetApplicationByGigAndChefFn != nil {
		return m.GetApplicationByGigAndChefFn(ctx, gigID, chefID)
	}
	return nil, fmt.Errorf("not found")
}
func (m *GigRepositoryMock) UpdateApplication(ctx context.Context, a *gig.Application) error {
	if m.UpdateApplicationFn != nil {
		return m.UpdateApplicationFn(ctx, a)
	}
	return nil
}
func (m *GigRepositoryMock) ListApplicationsForGig(ctx context.Context, gigID uuid.UUID) ([]*gig.Application, error) {
	if m.ListApplicationsForGigFn != nil {
		return m.ListApplicationsForGigFn(ctx, gigID)
	}
	return nil, nil
}
func (m *GigRepositoryMock) ListApplicationsForChef(ctx context.Context, chefID uuid.UUID) ([]*gig.Application, error) {
	if m.ListApplicationsForChefFn != nil {
		return m.ListApplicationsForChefFn(ctx, chefID)
	}
	return nil, nil
}
func (m *GigRepositoryMock) DeclinePendingApplications(ctx context.Context, gigID uuid.UUID, keep uuid.UUID) ([]uuid.UUID, error) {
	if m.DeclinePendingApplicationsFn != nil {
		return m.DeclinePendingApplicationsFn(ctx, gigID, keep)
	}
	return nil, nil
}

// InvoiceRepositoryMock is a lightweight mock for InvoiceRepository
type InvoiceRepositoryMock struct {
	CreateFn          func(ctx context.Context, inv *invoice.Invoice) error
	GetByIDFn         func(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error)
	GetByGigAndChefFn func(ctx context.Context, gigID, chefID uuid.UUID) (*invoice.Invoice, error)
	UpdateFn          func(ctx context.Context, inv *invoice.Invoice) error
	ListByChefFn      func(ctx context.Context, chefID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error)
	ListByCompanyFn   func(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error)
	NextNumberFn      func(ctx context.Context) (int64, error)
}

func (m *InvoiceRepositoryMock) Create(ctx context.Context, inv *invoice.Invoice) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, inv)
	}
	return nil
}
func (m *InvoiceRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *InvoiceRepositoryMock) GetByGigAndChef(ctx context.Context, gigID, chefID uuid.UUID) (*invoice.Invoice, error) {
	if m.GetByGigAndChefFn != nil {
		return m.GetByGigAndChefFn(ctx, gigID, chefID)
	}
	return nil, fmt.Errorf("not found")
}
func (m *InvoiceRepositoryMock) Update(ctx context.Context, inv *invoice.Invoice) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, inv)
	}
	return nil
}
func (m *InvoiceRepositoryMock) ListByChef(ctx context.Context, chefID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error) {
	if m.ListByChefFn != nil {
		return m.ListByChefFn(ctx, chefID, limit, offset)
	}
	return nil, nil
}
func (m *InvoiceRepositoryMock) ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error) {
	if m.ListByCompanyFn != nil {
		return m.ListByCompanyFn(ctx, companyID, limit, offset)
	}
	return nil, nil
}
func (m *InvoiceRepositoryMock) NextNumber(ctx context.Context) (int64, error) {
	if m.NextNumberFn != nil {
		return m.NextNumberFn(ctx)
	}
	return 1, nil
}

// ReviewRepositoryMock is a lightweight mock for ReviewRepository
type ReviewRepositoryMock struct {
	CreateFn            func(ctx context.Context, r *review.Review) error
	GetByGigAndAuthorFn func(ctx context.Context, gigID, authorID uuid.UUID) (*review.Review, error)
	ListBySubjectFn     func(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*review.Review, error)
	ListAllBySubjectFn  func(ctx context.Context, subjectID uuid.UUID) ([]*review.Review, error)
}

func (m *ReviewRepositoryMock) Create(ctx context.Context, r *review.Review) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *ReviewRepositoryMock) GetByGigAndAuthor(ctx context.Context, gigID, authorID uuid.UUID) (*review.Review, error) {
	if m.GetByGigAndAuthorFn != nil {
		return m.GetByGigAndAuthorFn(ctx, gigID, authorID)
	}
	return nil, fmt.Errorf("not found")
}
func (m *ReviewRepositoryMock) ListBySubject(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*review.Review, error) {
	if m.ListBySubjectFn != nil {
		return m.ListBySubjectFn(ctx, subjectID, limit, offset)
	}
	return nil, nil
}
func (m *ReviewRepositoryMock) ListAllBySubject(ctx context.Context, subjectID uuid.UUID) ([]*review.Review, error) {
	if m.ListAllBySubjectFn != nil {
		return m.ListAllBySubjectFn(ctx, subjectID)
	}
	return nil, nil
}

// NotificationRepositoryMock is a lightweight mock for NotificationRepository
type NotificationRepositoryMock struct {
	CreateFn           func(ctx context.Context, n *notification.Notification) error
	ListFn             func(ctx context.Context, userID uuid.UUID, filter *notification.Filter) ([]*notification.Notification, error)
	CountUnreadFn      func(ctx context.Context, userID uuid.UUID) (int, error)
	MarkReadFn         func(ctx context.Context, userID, id uuid.UUID) error
	MarkAllReadFn      func(ctx context.Context, userID uuid.UUID) error
	DeleteReadBeforeFn func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *NotificationRepositoryMock) Create(ctx context.Context, n *notification.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}
func (m *NotificationRepositoryMock) List(ctx context.Context, userID uuid.UUID, filter *notification.Filter) ([]*notification.Notification, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID, filter)
	}
	return nil, nil
}
func (m *NotificationRepositoryMock) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountUnreadFn != nil {
		return m.CountUnreadFn(ctx, userID)
	}
	return 0, nil
}
func (m *NotificationRepositoryMock) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, userID, id)
	}
	return nil
}
func (m *NotificationRepositoryMock) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if m.MarkAllReadFn != nil {
		return m.MarkAllReadFn(ctx, userID)
	}
	return nil
}
func (m *NotificationRepositoryMock) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteReadBeforeFn != nil {
		return m.DeleteReadBeforeFn(ctx, cutoff)
	}
	return 0, nil
}

// EmailServiceMock is a lightweight mock for EmailService
type EmailServiceMock struct {
	SendTeamInviteFn     func(ctx context.Context, email, companyName, token string) error
	SendInvoiceIssuedFn  func(ctx context.Context, email, invoiceNumber string, totalCents int64, currency string) error
	SendContactMessageFn func(ctx context.Context, name, replyTo, message string) error
}

func (m *EmailServiceMock) SendTeamInvite(ctx context.Context, email, companyName, token string) error {
	if m.SendTeamInviteFn != nil {
		return m.SendTeamInviteFn(ctx, email, companyName, token)
	}
	return nil
}
func (m *EmailServiceMock) SendInvoiceIssued(ctx context.Context, email, invoiceNumber string, totalCents int64, currency string) error {
	if m.SendInvoiceIssuedFn != nil {
		return m.SendInvoiceIssuedFn(ctx, email, invoiceNumber, totalCents, currency)
	}
	return nil
}
func (m *EmailServiceMock) SendContactMessage(ctx context.Context, name, replyTo, message string) error {
	if m.SendContactMessageFn != nil {
		return m.SendContactMessageFn(ctx, name, replyTo, message)
	}
	return nil
}

// PaymentServiceMock is a lightweight mock for PaymentService
type PaymentServiceMock struct {
	CreateAccountFn    func(ctx context.Context, email string) (string, error)
	OnboardingLinkFn   func(ctx context.Context, accountID string) (string, error)
	GetAccountStatusFn func(ctx context.Context, accountID string) (*ports.AccountStatus, error)
}

func (m *PaymentServiceMock) CreateAccount(ctx context.Context, email string) (string, error) {
	if m.CreateAccountFn != nil {
		return m.CreateAccountFn(ctx, email)
	}
	return "acct_mock", nil
}
func (m *PaymentServiceMock) OnboardingLink(ctx context.Context, accountID string) (string, error) {
	if m.OnboardingLinkFn != nil {
		return m.OnboardingLinkFn(ctx, accountID)
	}
	return "https://onboarding.example/" + accountID, nil
}
func (m *PaymentServiceMock) GetAccountStatus(ctx context.Context, accountID string) (*ports.AccountStatus, error) {
	if m.GetAccountStatusFn != nil {
		return m.GetAccountStatusFn(ctx, accountID)
	}
	return &ports.AccountStatus{AccountID: accountID}, nil
}

// EventPublisherMock is a lightweight mock for EventPublisher
type EventPublisherMock struct {
	PublishFn func(ctx context.Context, channel string, payload []byte) error
}

func (m *EventPublisherMock) Publish(ctx context.Context, channel string, payload []byte) error {
	if m.PublishFn != nil {
		return m.PublishFn(ctx, channel, payload)
	}
	return nil
}

// CacheMock is a lightweight mock for Cache
type CacheMock struct {
	GetFn    func(ctx context.Context, key string) ([]byte, bool, error)
	SetFn    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFn func(ctx context.Context, key string) error
}

func (m *CacheMock) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	return nil, false, nil
}
func (m *CacheMock) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFn != nil {
		return m.SetFn(ctx, key, value, ttl)
	}
	return nil
}
func (m *CacheMock) Delete(ctx context.Context, key string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, key)
	}
	return nil
}

// NotificationServiceMock is a lightweight mock for NotificationService
type NotificationServiceMock struct {
	NotifyFn      func(ctx context.Context, userID uuid.UUID, typ notification.Type, title, body string, refID *uuid.UUID) error
	ListFn        func(ctx context.Context, userID uuid.UUID, filter *notification.Filter) ([]*notification.Notification, error)
	UnreadCountFn func(ctx context.Context, userID uuid.UUID) (int, error)
	MarkReadFn    func(ctx context.Context, userID, id uuid.UUID) error
	MarkAllReadFn func(ctx context.Context, userID uuid.UUID) error
}

func (m *NotificationServiceMock) Notify(ctx context.Context, userID uuid.UUID, typ notification.Type, title, body string, refID *uuid.UUID) error {
	if m.NotifyFn != nil {
		return m.NotifyFn(ctx, userID, typ, title, body, refID)
	}
	return nil
}
func (m *NotificationServiceMock) List(ctx context.Context, userID uuid.UUID, filter *notification.Filter) ([]*notification.Notification, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID, filter)
	}
	return nil, nil
}
func (m *NotificationServiceMock) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.UnreadCountFn != nil {
		return m.UnreadCountFn(ctx, userID)
	}
	return 0, nil
}
func (m *NotificationServiceMock) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, userID, id)
	}
	return nil
}
func (m *NotificationServiceMock) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if m.MarkAllReadFn != nil {
		return m.MarkAllReadFn(ctx, userID)
	}
	return nil
}

// AuthServiceMock is a lightweight mock for AuthService
type AuthServiceMock struct {
	LoginFn         func(ctx context.Context, req *auth.LoginRequest) (*auth.AuthTokens, error)
	RefreshTokenFn  func(ctx context.Context, refreshToken string) (*auth.AuthTokens, error)
	LogoutFn        func(ctx context.Context, userID uuid.UUID, accessToken string) error
	ValidateTokenFn func(ctx context.Context, accessToken string) (*auth.Claims, error)
}

func (m *AuthServiceMock) Login(ctx context.Context, req *auth.LoginRequest) (*auth.AuthTokens, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *AuthServiceMock) RefreshToken(ctx context.Context, refreshToken string) (*auth.AuthTokens, error) {
	if m.RefreshTokenFn != nil {
		return m.RefreshTokenFn(ctx, refreshToken)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *AuthServiceMock) Logout(ctx context.Context, userID uuid.UUID, accessToken string) error {
	if m.LogoutFn != nil {
		return m.LogoutFn(ctx, userID, accessToken)
	}
	return nil
}
func (m *AuthServiceMock) ValidateToken(ctx context.Context, accessToken string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, accessToken)
	}
	return nil, fmt.Errorf("invalid token")
}

// UserServiceMock is a lightweight mock for UserService
type UserServiceMock struct {
	RegisterFn       func(ctx context.Context, req *user.RegisterRequest) (*user.User, error)
	GetUserFn        func(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetUserByEmailFn func(ctx context.Context, email string) (*user.User, error)
	UpdateUserFn     func(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.User, error)
	ChangePasswordFn func(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
	DeactivateUserFn func(ctx context.Context, id uuid.UUID) error
}

func (m *UserServiceMock) Register(ctx context.Context, req *user.RegisterRequest) (*user.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *UserServiceMock) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *UserServiceMock) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetUserByEmailFn != nil {
		return m.GetUserByEmailFn(ctx, email)
	}
	return nil, fmt.Errorf("not found")
}
func (m *UserServiceMock) UpdateUser(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.User, error) {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, id, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *UserServiceMock) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if m.ChangePasswordFn != nil {
		return m.ChangePasswordFn(ctx, userID, currentPassword, newPassword)
	}
	return nil
}
func (m *UserServiceMock) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	if m.DeactivateUserFn != nil {
		return m.DeactivateUserFn(ctx, id)
	}
	return nil
}

// ChefServiceMock is a lightweight mock for ChefService
type ChefServiceMock struct {
	UpsertProfileFn   func(ctx context.Context, userID uuid.UUID, req *chef.UpsertProfileRequest) (*chef.Profile, error)
	GetProfileFn      func(ctx context.Context, userID uuid.UUID) (*chef.Profile, error)
	SearchProfilesFn  func(ctx context.Context, filter *chef.SearchFilter) ([]*chef.Profile, error)
	SetAvailabilityFn func(ctx context.Context, userID uuid.UUID, available bool) (*chef.Profile, error)
}

func (m *ChefServiceMock) UpsertProfile(ctx context.Context, userID uuid.UUID, req *chef.UpsertProfileRequest) (*chef.Profile, error) {
	if m.UpsertProfileFn != nil {
		return m.UpsertProfileFn(ctx, userID, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *ChefServiceMock) GetProfile(ctx context.Context, userID uuid.UUID) (*chef.Profile, error) {
	if m.GetProfileFn != nil {
		return m.GetProfileFn(ctx, userID)
	}
	return nil, fmt.Errorf("not found")
}
func (m *ChefServiceMock) SearchProfiles(ctx context.Context, filter *chef.SearchFilter) ([]*chef.Profile, error) {
	if m.SearchProfilesFn != nil {
		return m.SearchProfilesFn(ctx, filter)
	}
	return nil, nil
}
func (m *ChefServiceMock) SetAvailability(ctx context.Context, userID uuid.UUID, available bool) (*chef.Profile, error) {
	if m.SetAvailabilityFn != nil {
		return m.SetAvailabilityFn(ctx, userID, available)
	}
	return nil, fmt.Errorf("not implemented")
}

// CompanyServiceMock is a lightweight mock for CompanyService
type CompanyServiceMock struct {
	CreateCompanyFn func(ctx context.Context, ownerID uuid.UUID, req *company.CreateCompanyRequest) (*company.Company, error)
	GetCompanyFn    func(ctx context.Context, id uuid.UUID) (*company.Company, error)
	UpdateCompanyFn func(ctx context.Context, actorID, companyID uuid.UUID, req *company.UpdateCompanyRequest) (*company.Company, error)
	ListMembersFn   func(ctx context.Context, actorID, companyID uuid.UUID) ([]*company.Member, error)
	MembershipOfFn  func(ctx context.Context, userID uuid.UUID) (*company.Member, error)
	InviteMemberFn  func(ctx context.Context, actorID, companyID uuid.UUID, req *company.InviteMemberRequest) (*company.Invite, error)
	AcceptInviteFn  func(ctx context.Context, userID uuid.UUID, token string) (*company.Member, error)
	RemoveMemberFn  func(ctx context.Context, actorID, companyID, userID uuid.UUID) error
}

func (m *CompanyServiceMock) CreateCompany(ctx context.Context, ownerID uuid.UUID, req *company.CreateCompanyRequest) (*company.Company, error) {
	if m.CreateCompanyFn != nil {
		return m.CreateCompanyFn(ctx, ownerID, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *CompanyServiceMock) GetCompany(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	if m.GetCompanyFn != nil {
		return m.GetCompanyFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *CompanyServiceMock) UpdateCompany(ctx context.Context, actorID, companyID uuid.UUID, req *company.UpdateCompanyRequest) (*company.Company, error) {
	if m.UpdateCompanyFn != nil {
		return m.UpdateCompanyFn(ctx, actorID, companyID, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *CompanyServiceMock) ListMembers(ctx context.Context, actorID, companyID uuid.UUID) ([]*company.Member, error) {
	if m.ListMembersFn != nil {
		return m.ListMembersFn(ctx, actorID, companyID)
	}
	return nil, nil
}
func (m *CompanyServiceMock) MembershipOf(ctx context.Context, userID uuid.UUID) (*company.Member, error) {
	if m.MembershipOfFn != nil {
		return m.MembershipOfFn(ctx, userID)
	}
	return nil, fmt.Errorf("not found")
}
func (m *CompanyServiceMock) InviteMember(ctx context.Context, actorID, companyID uuid.UUID, req *company.InviteMemberRequest) (*company.Invite, error) {
	if m.InviteMemberFn != nil {
		return m.InviteMemberFn(ctx, actorID, companyID, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *CompanyServiceMock) AcceptInvite(ctx context.Context, userID uuid.UUID, token string) (*company.Member, error) {
	if m.AcceptInviteFn != nil {
		return m.AcceptInviteFn(ctx, userID, token)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *CompanyServiceMock) RemoveMember(ctx context.Context, actorID, companyID, userID uuid.UUID) error {
	if m.RemoveMemberFn != nil {
		return m.RemoveMemberFn(ctx, actorID, companyID, userID)
	}
	return nil
}

// GigServiceMock is a lightweight mock for GigService
type GigServiceMock struct {
	PostGigFn             func(ctx context.Context, actorID uuid.UUID, req *gig.CreateGigRequest) (*gig.Gig, error)
	UpdateGigFn           func(ctx context.Context, actorID, gigID uuid.UUID, req *gig.UpdateGigRequest) (*gig.Gig, error)
	CancelGigFn           func(ctx context.Context, actorID, gigID uuid.UUID) (*gig.Gig, error)
	CompleteGigFn         func(ctx context.Context, actorID, gigID uuid.UUID) (*gig.Gig, error)
	GetGigFn              func(ctx context.Context, id uuid.UUID) (*gig.Gig, error)
	ListGigsFn            func(ctx context.Context, filter *gig.Filter) ([]*gig.Gig, error)
	ApplyFn               func(ctx context.Context, chefID, gigID uuid.UUID, req *gig.ApplyRequest) (*gig.Application, error)
	WithdrawFn            func(ctx context.Context, chefID, applicationID uuid.UUID) (*gig.Application, error)
	ListGigApplicationsFn func(ctx context.Context, actorID, gigID uuid.UUID) ([]*gig.Application, error)
	ListOwnApplicationsFn func(ctx context.Context, chefID uuid.UUID) ([]*gig.Application, error)
	AcceptApplicationFn   func(ctx context.Context, actorID, applicationID uuid.UUID) (*gig.Application, error)
	DeclineApplicationFn  func(ctx context.Context, actorID, applicationID uuid.UUID) (*gig.Application, error)
}

func (m *GigServiceMock) PostGig(ctx context.Context, actorID uuid.UUID, req *gig.CreateGigRequest) (*gig.Gig, error) {
	if m.PostGigFn != nil {
		return m.PostGigFn(ctx, actorID, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *GigServiceMock) UpdateGig(ctx context.Context, actorID, gigID uuid.UUID, req *gig.UpdateGigRequest) (*gig.Gig, error) {
	if m.UpdateGigFn != nil {
		return m.UpdateGigFn(ctx, actorID, gigID, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *GigServiceMock) CancelGig(ctx context.Context, actorID, gigID uuid.UUID) (*gig.Gig, error) {
	if m.CancelGigFn != nil {
		return m.CancelGigFn(ctx, actorID, gigID)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *GigServiceMock) CompleteGig(ctx context.Context, actorID, gigID uuid.UUID) (*gig.Gig, error) {
	if m.CompleteGigFn != nil {
		return m.CompleteGigFn(ctx, actorID, gigID)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *GigServiceMock) GetGig(ctx context.Context, id uuid.UUID) (*gig.Gig, error) {
	if m.GetGigFn != nil {
		return m.GetGigFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *GigServiceMock) ListGigs(ctx context.Context, filter *gig.Filter) ([]*gig.Gig, error) {
	if m.ListGigsFn != nil {
		return m.ListGigsFn(ctx, filter)
	}
	return nil, nil
}
func (m *GigServiceMock) Apply(ctx context.Context, chefID, gigID uuid.UUID, req *gig.ApplyRequest) (*gig.Application, error) {
	if m.ApplyFn != nil {
		return m.ApplyFn(ctx, chefID, gigID, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *GigServiceMock) Withdraw(ctx context.Context, chefID, applicationID uuid.UUID) (*gig.Application, error) {
	if m.WithdrawFn != nil {
		return m.WithdrawFn(ctx, chefID, applicationID)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *GigServiceMock) ListGigApplications(ctx context.Context, actorID, gigID uuid.UUID) ([]*gig.Application, error) {
	if m.ListGigApplicationsFn != nil {
		return m.ListGigApplicationsFn(ctx, actorID, gigID)
	}
	return nil, nil
}
func (m *GigServiceMock) ListOwnApplications(ctx context.Context, chefID uuid.UUID) ([]*gig.Application, error) {
	if m.ListOwnApplicationsFn != nil {
		return m.ListOwnApplicationsFn(ctx, chefID)
	}
	return nil, nil
}
func (m *GigServiceMock) AcceptApplication(ctx context.Context, actorID, applicationID uuid.UUID) (*gig.Application, error) {
	if m.AcceptApplicationFn != nil {
		return m.AcceptApplicationFn(ctx, actorID, applicationID)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *GigServiceMock) DeclineApplication(ctx context.Context, actorID, applicationID uuid.UUID) (*gig.Application, error) {
	if m.DeclineApplicationFn != nil {
		return m.DeclineApplicationFn(ctx, actorID, applicationID)
	}
	return nil, fmt.Errorf("not implemented")
}

// InvoiceServiceMock is a lightweight mock for InvoiceService
type InvoiceServiceMock struct {
	CreateDraftFn   func(ctx context.Context, chefID uuid.UUID, req *invoice.CreateInvoiceRequest) (*invoice.Invoice, error)
	UpdateDraftFn   func(ctx context.Context, chefID, invoiceID uuid.UUID, req *invoice.UpdateInvoiceRequest) (*invoice.Invoice, error)
	SendFn          func(ctx context.Context, chefID, invoiceID uuid.UUID) (*invoice.Invoice, error)
	MarkPaidFn      func(ctx context.Context, actorID, invoiceID uuid.UUID) (*invoice.Invoice, error)
	VoidFn          func(ctx context.Context, chefID, invoiceID uuid.UUID) (*invoice.Invoice, error)
	GetFn           func(ctx context.Context, actorID, invoiceID uuid.UUID) (*invoice.Invoice, error)
	ListByChefFn    func(ctx context.Context, chefID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error)
	ListByCompanyFn func(ctx context.Context, actorID, companyID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error)
}

func (m *InvoiceServiceMock) CreateDraft(ctx context.Context, chefID uuid.UUID, req *invoice.CreateInvoiceRequest) (*invoice.Invoice, error) {
	if m.CreateDraftFn != nil {
		return m.CreateDraftFn(ctx, chefID, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *InvoiceServiceMock) UpdateDraft(ctx context.Context, chefID, invoiceID uuid.UUID, req *invoice.UpdateInvoiceRequest) (*invoice.Invoice, error) {
	if m.UpdateDraftFn != nil {
		return m.UpdateDraftFn(ctx, chefID, invoiceID, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *InvoiceServiceMock) Send(ctx context.Context, chefID, invoiceID uuid.UUID) (*invoice.Invoice, error) {
	if m.SendFn != nil {
		return m.SendFn(ctx, chefID, invoiceID)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *InvoiceServiceMock) MarkPaid(ctx context.Context, actorID, invoiceID uuid.UUID) (*invoice.Invoice, error) {
	if m.MarkPaidFn != nil {
		return m.MarkPaidFn(ctx, actorID, invoiceID)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *InvoiceServiceMock) Void(ctx context.Context, chefID, invoiceID uuid.UUID) (*invoice.Invoice, error) {
	if m.VoidFn != nil {
		return m.VoidFn(ctx, chefID, invoiceID)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *InvoiceServiceMock) Get(ctx context.Context, actorID, invoiceID uuid.UUID) (*invoice.Invoice, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, actorID, invoiceID)
	}
	return nil, fmt.Errorf("not found")
}
func (m *InvoiceServiceMock) ListByChef(ctx context.Context, chefID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error) {
	if m.ListByChefFn != nil {
		return m.ListByChefFn(ctx, chefID, limit, offset)
	}
	return nil, nil
}
func (m *InvoiceServiceMock) ListByCompany(ctx context.Context, actorID, companyID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error) {
	if m.ListByCompanyFn != nil {
		return m.ListByCompanyFn(ctx, actorID, companyID, limit, offset)
	}
	return nil, nil
}

// ReviewServiceMock is a lightweight mock for ReviewService
type ReviewServiceMock struct {
	CreateReviewFn   func(ctx context.Context, authorID uuid.UUID, req *review.CreateReviewRequest) (*review.Review, error)
	ListForSubjectFn func(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*review.Review, error)
	SummaryFn        func(ctx context.Context, subjectID uuid.UUID) (*review.Summary, error)
}

func (m *ReviewServiceMock) CreateReview(ctx context.Context, authorID uuid.UUID, req *review.CreateReviewRequest) (*review.Review, error) {
	if m.CreateReviewFn != nil {
		return m.CreateReviewFn(ctx, authorID, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *ReviewServiceMock) ListForSubject(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*review.Review, error) {
	if m.ListForSubjectFn != nil {
		return m.ListForSubjectFn(ctx, subjectID, limit, offset)
	}
	return nil, nil
}
func (m *ReviewServiceMock) Summary(ctx context.Context, subjectID uuid.UUID) (*review.Summary, error) {
	if m.SummaryFn != nil {
		return m.SummaryFn(ctx, subjectID)
	}
	return &review.Summary{}, nil
}

// PayoutServiceMock is a lightweight mock for PayoutService
type PayoutServiceMock struct {
	StartOnboardingFn func(ctx context.Context, userID uuid.UUID) (string, error)
	RefreshStatusFn   func(ctx context.Context, userID uuid.UUID) (*ports.AccountStatus, error)
}

func (m *PayoutServiceMock) StartOnboarding(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.StartOnboardingFn != nil {
		return m.StartOnboardingFn(ctx, userID)
	}
	return "https://onboarding.example/start", nil
}
func (m *PayoutServiceMock) RefreshStatus(ctx context.Context, userID uuid.UUID) (*ports.AccountStatus, error) {
	if m.RefreshStatusFn != nil {
		return m.RefreshStatusFn(ctx, userID)
	}
	return &ports.AccountStatus{}, nil
}
