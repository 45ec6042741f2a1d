package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	impl "github.com/chefpantry/chefpantry/internal/application/services"
	"github.com/chefpantry/chefpantry/internal/core/domain/company"
	"github.com/chefpantry/chefpantry/internal/core/domain/gig"
	"github.com/chefpantry/chefpantry/internal/core/domain/invoice"
	"github.com/chefpantry/chefpantry/internal/core/domain/notification"
	"github.com/chefpantry/chefpantry/internal/core/domain/user"
	"github.com/chefpantry/chefpantry/test/mocks"
)

func completedGigRepo(g *gig.Gig, chefID uuid.UUID) *mocks.GigRepositoryMock {
	return &mocks.GigRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*gig.Gig, error) { return g, nil },
		GetApplicationByGigAndChefFn: func(ctx context.Context, gigID, cID uuid.UUID) (*gig.Application, error) {
			if cID != chefID {
				return nil, context.Canceled
			}
			return &gig.Application{GigID: gigID, ChefID: cID, Status: gig.ApplicationAccepted}, nil
		},
	}
}

func TestInvoiceService_CreateDraftComputesTotalsAndNumber(t *testing.T) {
	chefID := uuid.New()
	g := &gig.Gig{ID: uuid.New(), CompanyID: uuid.New(), Status: gig.StatusCompleted}
	invoiceRepo := &mocks.InvoiceRepositoryMock{
		NextNumberFn: func(ctx context.Context) (int64, error) { return 42, nil },
	}
	svc := impl.NewInvoiceService(invoiceRepo, completedGigRepo(g, chefID), &mocks.UserRepositoryMock{}, &mocks.CompanyRepositoryMock{}, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	inv, err := svc.CreateDraft(context.Background(), chefID, &invoice.CreateInvoiceRequest{
		GigID: g.ID,
		LineItems: invoice.LineItems{
			{Description: "8h service", Quantity: 8, UnitAmountCents: 2500},
			{Description: "Ingredients", Quantity: 1, UnitAmountCents: 4150},
		},
		TaxCents: 4830,
	})
	require.NoError(t, err)
	require.Equal(t, "INV-000042", inv.Number)
	require.Equal(t, invoice.StatusDraft, inv.Status)
	require.Equal(t, int64(24150), inv.SubtotalCents)
	require.Equal(t, int64(28980), inv.TotalCents)
	require.Equal(t, "GBP", inv.Currency)
	require.Equal(t, g.CompanyID, inv.CompanyID)
}

func TestInvoiceService_CreateDraftRequiresCompletedGig(t *testing.T) {
	chefID := uuid.New()
	g := &gig.Gig{ID: uuid.New(), Status: gig.StatusFilled}
	svc := impl.NewInvoiceService(&mocks.InvoiceRepositoryMock{}, completedGigRepo(g, chefID), &mocks.UserRepositoryMock{}, &mocks.CompanyRepositoryMock{}, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	_, err := svc.CreateDraft(context.Background(), chefID, &invoice.CreateInvoiceRequest{
		GigID:     g.ID,
		LineItems: invoice.LineItems{{Description: "work", Quantity: 1, UnitAmountCents: 100}},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "completed gigs")
}

func TestInvoiceService_CreateDraftRequiresAcceptedApplication(t *testing.T) {
	g := &gig.Gig{ID: uuid.New(), Status: gig.StatusCompleted}
	svc := impl.NewInvoiceService(&mocks.InvoiceRepositoryMock{}, completedGigRepo(g, uuid.New()), &mocks.UserRepositoryMock{}, &mocks.CompanyRepositoryMock{}, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	_, err := svc.CreateDraft(context.Background(), uuid.New(), &invoice.CreateInvoiceRequest{
		GigID:     g.ID,
		LineItems: invoice.LineItems{{Description: "work", Quantity: 1, UnitAmountCents: 100}},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "chef who worked the gig")
}

func TestInvoiceService_CreateDraftRejectsSecondLiveInvoice(t *testing.T) {
	chefID := uuid.New()
	g := &gig.Gig{ID: uuid.New(), Status: gig.StatusCompleted}
	invoiceRepo := &mocks.InvoiceRepositoryMock{
		GetByGigAndChefFn: func(ctx context.Context, gigID, cID uuid.UUID) (*invoice.Invoice, error) {
			return &invoice.Invoice{ID: uuid.New(), Status: invoice.StatusSent}, nil
		},
	}
	svc := impl.NewInvoiceService(invoiceRepo, completedGigRepo(g, chefID), &mocks.UserRepositoryMock{}, &mocks.CompanyRepositoryMock{}, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	_, err := svc.CreateDraft(context.Background(), chefID, &invoice.CreateInvoiceRequest{
		GigID:     g.ID,
		LineItems: invoice.LineItems{{Description: "work", Quantity: 1, UnitAmountCents: 100}},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}

func TestInvoiceService_SendRequiresPayoutOnboarding(t *testing.T) {
	chefID := uuid.New()
	inv := &invoice.Invoice{ID: uuid.New(), ChefID: chefID, Status: invoice.StatusDraft}
	invoiceRepo := &mocks.InvoiceRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) { return inv, nil },
	}
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
			return &user.User{ID: id, Role: user.RoleChef, PayoutsEnabled: false}, nil
		},
	}
	svc := impl.NewInvoiceService(invoiceRepo, &mocks.GigRepositoryMock{}, userRepo, &mocks.CompanyRepositoryMock{}, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	_, err := svc.Send(context.Background(), chefID, inv.ID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "payout onboarding")
	require.Equal(t, invoice.StatusDraft, inv.Status)
}

func TestInvoiceService_SendEmailsManagersAndNotifies(t *testing.T) {
	chefID := uuid.New()
	companyID := uuid.New()
	managerID := uuid.New()
	plainID := uuid.New()
	inv := &invoice.Invoice{
		ID:         uuid.New(),
		Number:     "INV-000007",
		ChefID:     chefID,
		CompanyID:  companyID,
		Status:     invoice.StatusDraft,
		TotalCents: 15000,
		Currency:   "GBP",
	}
	invoiceRepo := &mocks.InvoiceRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) { return inv, nil },
	}
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
			return &user.User{ID: id, Role: user.RoleChef, PayoutsEnabled: true}, nil
		},
	}
	companyRepo := &mocks.CompanyRepositoryMock{
		ListMembersFn: func(ctx context.Context, cID uuid.UUID) ([]*company.Member, error) {
			return []*company.Member{
				{CompanyID: cID, UserID: managerID, Role: company.MemberRoleOwner, Email: "owner@example.com"},
				{CompanyID: cID, UserID: plainID, Role: company.MemberRoleMember, Email: "member@example.com"},
			}, nil
		},
	}
	var emailed []string
	emails := &mocks.EmailServiceMock{
		SendInvoiceIssuedFn: func(ctx context.Context, email, number string, totalCents int64, currency string) error {
			require.Equal(t, "INV-000007", number)
			require.Equal(t, int64(15000), totalCents)
			emailed = append(emailed, email)
			return nil
		},
	}
	var notified []uuid.UUID
	notifier := &mocks.NotificationServiceMock{
		NotifyFn: func(ctx context.Context, userID uuid.UUID, typ notification.Type, title, body string, refID *uuid.UUID) error {
			require.Equal(t, notification.TypeInvoiceSent, typ)
			notified = append(notified, userID)
			return nil
		},
	}
	svc := impl.NewInvoiceService(invoiceRepo, &mocks.GigRepositoryMock{}, userRepo, companyRepo, emails, notifier, logrus.New())

	out, err := svc.Send(context.Background(), chefID, inv.ID)
	require.NoError(t, err)
	require.Equal(t, invoice.StatusSent, out.Status)
	require.NotNil(t, out.IssuedAt)
	require.Equal(t, []string{"owner@example.com"}, emailed)
	require.Equal(t, []uuid.UUID{managerID}, notified)
}

func TestInvoiceService_MarkPaidOnlySentByCompanyMember(t *testing.T) {
	companyID := uuid.New()
	chefID := uuid.New()
	inv := &invoice.Invoice{ID: uuid.New(), ChefID: chefID, CompanyID: companyID, Number: "INV-000009", Status: invoice.StatusDraft}
	invoiceRepo := &mocks.InvoiceRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) { return inv, nil },
	}
	companyRepo := &mocks.CompanyRepositoryMock{
		GetMemberFn: func(ctx context.Context, cID, uID uuid.UUID) (*company.Member, error) {
			return &company.Member{CompanyID: cID, UserID: uID, Role: company.MemberRoleManager}, nil
		},
	}
	var paidNotice uuid.UUID
	notifier := &mocks.NotificationServiceMock{
		NotifyFn: func(ctx context.Context, userID uuid.UUID, typ notification.Type, title, body string, refID *uuid.UUID) error {
			require.Equal(t, notification.TypeInvoicePaid, typ)
			paidNotice = userID
			return nil
		},
	}
	svc := impl.NewInvoiceService(invoiceRepo, &mocks.GigRepositoryMock{}, &mocks.UserRepositoryMock{}, companyRepo, &mocks.EmailServiceMock{}, notifier, logrus.New())

	_, err := svc.MarkPaid(context.Background(), uuid.New(), inv.ID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "only sent invoices")

	inv.Status = invoice.StatusSent
	out, err := svc.MarkPaid(context.Background(), uuid.New(), inv.ID)
	require.NoError(t, err)
	require.Equal(t, invoice.StatusPaid, out.Status)
	require.NotNil(t, out.PaidAt)
	require.Equal(t, chefID, paidNotice)
}

func TestInvoiceService_UpdateDraftRecomputesTotals(t *testing.T) {
	chefID := uuid.New()
	inv := &invoice.Invoice{
		ID:        uuid.New(),
		ChefID:    chefID,
		Status:    invoice.StatusDraft,
		LineItems: invoice.LineItems{{Description: "old", Quantity: 1, UnitAmountCents: 100}},
	}
	inv.ComputeTotals()
	invoiceRepo := &mocks.InvoiceRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) { return inv, nil },
	}
	svc := impl.NewInvoiceService(invoiceRepo, &mocks.GigRepositoryMock{}, &mocks.UserRepositoryMock{}, &mocks.CompanyRepositoryMock{}, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	items := invoice.LineItems{{Description: "new", Quantity: 3, UnitAmountCents: 500}}
	tax := int64(300)
	out, err := svc.UpdateDraft(context.Background(), chefID, inv.ID, &invoice.UpdateInvoiceRequest{LineItems: &items, TaxCents: &tax})
	require.NoError(t, err)
	require.Equal(t, int64(1500), out.SubtotalCents)
	require.Equal(t, int64(1800), out.TotalCents)
}

func TestInvoiceService_VoidRejectsPaidInvoice(t *testing.T) {
	chefID := uuid.New()
	inv := &invoice.Invoice{ID: uuid.New(), ChefID: chefID, Status: invoice.StatusPaid}
	invoiceRepo := &mocks.InvoiceRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) { return inv, nil },
	}
	svc := impl.NewInvoiceService(invoiceRepo, &mocks.GigRepositoryMock{}, &mocks.UserRepositoryMock{}, &mocks.CompanyRepositoryMock{}, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	_, err := svc.Void(context.Background(), chefID, inv.ID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already paid")
}

func TestInvoiceService_GetLimitedToParticipants(t *testing.T) {
	chefID := uuid.New()
	inv := &invoice.Invoice{ID: uuid.New(), ChefID: chefID, CompanyID: uuid.New(), Status: invoice.StatusSent}
	invoiceRepo := &mocks.InvoiceRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) { return inv, nil },
	}
	svc := impl.NewInvoiceService(invoiceRepo, &mocks.GigRepositoryMock{}, &mocks.UserRepositoryMock{}, &mocks.CompanyRepositoryMock{}, &mocks.EmailServiceMock{}, &mocks.NotificationServiceMock{}, logrus.New())

	out, err := svc.Get(context.Background(), chefID, inv.ID)
	require.NoError(t, err)
	require.Equal(t, inv.ID, out.ID)

	_, err = svc.Get(context.Background(), uuid.New(), inv.ID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not authorized")
}
