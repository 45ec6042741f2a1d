package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/internal/core/domain/gig"
	"github.com/chefpantry/chefpantry/internal/core/domain/invoice"
	"github.com/chefpantry/chefpantry/internal/core/domain/notification"
	"github.com/chefpantry/chefpantry/internal/core/ports"
)

const defaultCurrency = "GBP"

type InvoiceService struct {
	invoiceRepo  ports.InvoiceRepository
	gigRepo      ports.GigRepository
	userRepo     ports.UserRepository
	companyRepo  ports.CompanyRepository
	emailService ports.EmailService
	notifier     ports.NotificationService
	logger       *logrus.Logger
}

func NewInvoiceService(invoiceRepo ports.InvoiceRepository, gigRepo ports.GigRepository, userRepo ports.UserRepository, companyRepo ports.CompanyRepository, emailService ports.EmailService, notifier ports.NotificationService, logger *logrus.Logger) ports.InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		gigRepo:      gigRepo,
		userRepo:     userRepo,
		companyRepo:  companyRepo,
		emailService: emailService,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *InvoiceService) CreateDraft(ctx context.Context, chefID uuid.UUID, req *invoice.CreateInvoiceRequest) (*invoice.Invoice, error) {
	g, err := s.gigRepo.GetByID(ctx, req.GigID)
	if err != nil {
		return nil, fmt.Errorf("gig not found: %w", err)
	}
	if g.Status != gig.StatusCompleted {
		return nil, fmt.Errorf("invoices can only be raised for completed gigs")
	}

	app, err := s.gigRepo.GetApplicationByGigAndChef(ctx, req.GigID, chefID)
	if err != nil || app == nil || app.Status != gig.ApplicationAccepted {
		return nil, fmt.Errorf("only the chef who worked the gig can invoice it")
	}

	if existing, err := s.invoiceRepo.GetByGigAndChef(ctx, req.GigID, chefID); err == nil && existing != nil && existing.Status != invoice.StatusVoid {
		return nil, fmt.Errorf("an invoice already exists for this gig")
	}

	if len(req.LineItems) == 0 {
		return nil, fmt.Errorf("invoice needs at least one line item")
	}
	if err := validateLineItems(req.LineItems); err != nil {
		return nil, err
	}
	if req.TaxCents < 0 {
		return nil, fmt.Errorf("tax cannot be negative")
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	seq, err := s.invoiceRepo.NextNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate invoice number: %w", err)
	}

	inv := &invoice.Invoice{
		ID:        uuid.New(),
		Number:    fmt.Sprintf("INV-%06d", seq),
		GigID:     req.GigID,
		ChefID:    chefID,
		CompanyID: g.CompanyID,
		LineItems: req.LineItems,
		TaxCents:  req.TaxCents,
		Currency:  currency,
		Status:    invoice.StatusDraft,
		DueAt:     req.DueAt,
	}
	inv.ComputeTotals()

	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"invoice_id": inv.ID,
			"number":     inv.Number,
			"gig_id":     inv.GigID,
		}).Info("invoice drafted")
	}
	return inv, nil
}

func (s *InvoiceService) UpdateDraft(ctx context.Context, chefID, invoiceID uuid.UUID, req *invoice.UpdateInvoiceRequest) (*invoice.Invoice, error) {
	inv, err := s.requireChefInvoice(ctx, chefID, invoiceID)
	if err != nil {
		return nil, err
	}
	if !inv.IsDraft() {
		return nil, fmt.Errorf("only draft invoices can be edited")
	}

	if req.LineItems != nil {
		if len(*req.LineItems) == 0 {
			return nil, fmt.Errorf("invoice needs at least one line item")
		}
		if err := validateLineItems(*req.LineItems); err != nil {
			return nil, err
		}
		inv.LineItems = *req.LineItems
	}
	if req.TaxCents != nil {
		if *req.TaxCents < 0 {
			return nil, fmt.Errorf("tax cannot be negative")
		}
		inv.TaxCents = *req.TaxCents
	}
	if req.DueAt != nil {
		inv.DueAt = req.DueAt
	}
	inv.ComputeTotals()

	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	return inv, nil
}

func (s *InvoiceService) Send(ctx context.Context, chefID, invoiceID uuid.UUID) (*invoice.Invoice, error) {
	inv, err := s.requireChefInvoice(ctx, chefID, invoiceID)
	if err != nil {
		return nil, err
	}
	if !inv.IsDraft() {
		return nil, fmt.Errorf("only draft invoices can be sent")
	}

	chefUser, err := s.userRepo.GetByID(ctx, chefID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if !chefUser.PayoutsEnabled {
		return nil, fmt.Errorf("payout onboarding must be completed before sending invoices")
	}

	now := time.Now()
	inv.Status = invoice.StatusSent
	inv.IssuedAt = &now
	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to send invoice: %w", err)
	}

	members, err := s.companyRepo.ListMembers(ctx, inv.CompanyID)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"invoice_id": inv.ID}).WithError(err).Warn("failed to list company members for invoice notices")
		}
		return inv, nil
	}
	for _, m := range members {
		if !m.Role.CanManageTeam() {
			continue
		}
		if err := s.emailService.SendInvoiceIssued(ctx, m.Email, inv.Number, inv.TotalCents, inv.Currency); err != nil {
			if s.logger != nil {
				s.logger.WithFields(logrus.Fields{"invoice_id": inv.ID}).WithError(err).Error("failed to send invoice email")
			}
		}
		s.notify(ctx, m.UserID, notification.TypeInvoiceSent,
			"Invoice received", fmt.Sprintf("Invoice %s for %s is awaiting payment", inv.Number, formatAmount(inv.TotalCents, inv.Currency)), &inv.ID)
	}

	return inv, nil
}

func (s *InvoiceService) MarkPaid(ctx context.Context, actorID, invoiceID uuid.UUID) (*invoice.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoice not found: %w", err)
	}

	member, err := s.companyRepo.GetMember(ctx, inv.CompanyID, actorID)
	if err != nil || member == nil {
		return nil, fmt.Errorf("invoice belongs to another company")
	}
	if inv.Status != invoice.StatusSent {
		return nil, fmt.Errorf("only sent invoices can be marked paid")
	}

	now := time.Now()
	inv.Status = invoice.StatusPaid
	inv.PaidAt = &now
	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to mark invoice paid: %w", err)
	}

	s.notify(ctx, inv.ChefID, notification.TypeInvoicePaid,
		"Invoice paid", fmt.Sprintf("Invoice %s has been paid", inv.Number), &inv.ID)

	return inv, nil
}

func (s *InvoiceService) Void(ctx context.Context, chefID, invoiceID uuid.UUID) (*invoice.Invoice, error) {
	inv, err := s.requireChefInvoice(ctx, chefID, invoiceID)
	if err != nil {
		return nil, err
	}
	if inv.Status == invoice.StatusPaid || inv.Status == invoice.StatusVoid {
		return nil, fmt.Errorf("invoice is already %s", inv.Status)
	}

	inv.Status = invoice.StatusVoid
	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to void invoice: %w", err)
	}
	return inv, nil
}

func (s *InvoiceService) Get(ctx context.Context, actorID, invoiceID uuid.UUID) (*invoice.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoice not found: %w", err)
	}

	if inv.ChefID == actorID {
		return inv, nil
	}
	if member, err := s.companyRepo.GetMember(ctx, inv.CompanyID, actorID); err == nil && member != nil {
		return inv, nil
	}
	return nil, fmt.Errorf("not authorized to view this invoice")
}

func (s *InvoiceService) ListByChef(ctx context.Context, chefID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error) {
	limit, offset = clampPage(limit, offset)
	return s.invoiceRepo.ListByChef(ctx, chefID, limit, offset)
}

func (s *InvoiceService) ListByCompany(ctx context.Context, actorID, companyID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error) {
	if member, err := s.companyRepo.GetMember(ctx, companyID, actorID); err != nil || member == nil {
		return nil, fmt.Errorf("not a member of this company")
	}
	limit, offset = clampPage(limit, offset)
	return s.invoiceRepo.ListByCompany(ctx, companyID, limit, offset)
}

func (s *InvoiceService) requireChefInvoice(ctx context.Context, chefID, invoiceID uuid.UUID) (*invoice.Invoice, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoice not found: %w", err)
	}
	if inv.ChefID != chefID {
		return nil, fmt.Errorf("invoice belongs to another chef")
	}
	return inv, nil
}

func (s *InvoiceService) notify(ctx context.Context, userID uuid.UUID, typ notification.Type, title, body string, refID *uuid.UUID) {
	if err := s.notifier.Notify(ctx, userID, typ, title, body, refID); err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"user_id": userID, "type": typ}).WithError(err).Warn("failed to create notification")
		}
	}
}

func validateLineItems(items invoice.LineItems) error {
	for i, li := range items {
		if li.Description == "" {
			return fmt.Errorf("line item %d: description is required", i)
		}
		if li.Quantity <= 0 {
			return fmt.Errorf("line item %d: quantity must be positive", i)
		}
		if li.UnitAmountCents < 0 {
			return fmt.Errorf("line item %d: unit amount cannot be negative", i)
		}
	}
	return nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func formatAmount(cents int64, currency string) string {
	return fmt.Sprintf("%.2f %s", float64(cents)/100, currency)
}
