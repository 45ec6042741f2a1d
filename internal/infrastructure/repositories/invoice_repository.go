package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/internal/core/domain/invoice"
	"github.com/chefpantry/chefpantry/internal/core/ports"
	"github.com/chefpantry/chefpantry/internal/infrastructure/db"
)

// InvoiceRepository implements the invoice repository interface
type InvoiceRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(database *db.Database, logger *logrus.Logger) ports.InvoiceRepository {
	return &InvoiceRepository{
		db:     database,
		logger: logger,
	}
}

const invoiceColumns = `id, number, gig_id, chef_id, company_id, line_items, subtotal_cents, tax_cents, total_cents, currency, status, issued_at, due_at, paid_at, created_at, updated_at`

// Create stores a new invoice
func (r *InvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (id, number, gig_id, chef_id, company_id, line_items, subtotal_cents, tax_cents, total_cents, currency, status, due_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.DB.ExecContext(ctx, query,
		inv.ID, inv.Number, inv.GigID, inv.ChefID, inv.CompanyID, inv.LineItems,
		inv.SubtotalCents, inv.TaxCents, inv.TotalCents, inv.Currency, inv.Status, inv.DueAt)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"invoice_id": inv.ID, "number": inv.Number}).WithError(err).Error("db: failed to create invoice")
		}
		return fmt.Errorf("failed to create invoice: %w", err)
	}
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"invoice_id": inv.ID, "number": inv.Number}).Info("db: invoice created")
	}

	return nil
}

// GetByID retrieves an invoice by ID
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	err := r.db.DB.GetContext(ctx, &inv, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("invoice with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get invoice by ID: %w", err)
	}

	return &inv, nil
}

// GetByGigAndChef retrieves a chef's invoice for a gig
func (r *InvoiceRepository) GetByGigAndChef(ctx context.Context, gigID, chefID uuid.UUID) (*invoice.Invoice, error) {
	var inv invoice.Invoice
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE gig_id = $1 AND chef_id = $2`

	err := r.db.DB.GetContext(ctx, &inv, query, gigID, chefID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("invoice not found")
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	return &inv, nil
}

// Update updates an invoice
func (r *InvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices
		SET line_items = $2, subtotal_cents = $3, tax_cents = $4, total_cents = $5,
			status = $6, issued_at = $7, due_at = $8, paid_at = $9, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query,
		inv.ID, inv.LineItems, inv.SubtotalCents, inv.TaxCents, inv.TotalCents,
		inv.Status, inv.IssuedAt, inv.DueAt, inv.PaidAt)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"invoice_id": inv.ID}).WithError(err).Error("db: failed to update invoice")
		}
		return fmt.Errorf("failed to update invoice: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("invoice with ID %s not found", inv.ID)
	}

	return nil
}

// ListByChef lists invoices issued by a chef
func (r *InvoiceRepository) ListByChef(ctx context.Context, chefID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE chef_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	var invoices []*invoice.Invoice
	if err := r.db.DB.SelectContext(ctx, &invoices, query, chefID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list invoices by chef: %w", err)
	}

	return invoices, nil
}

// ListByCompany lists invoices received by a company
func (r *InvoiceRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	var invoices []*invoice.Invoice
	if err := r.db.DB.SelectContext(ctx, &invoices, query, companyID, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list invoices by company: %w", err)
	}

	return invoices, nil
}

// NextNumber reserves the next value of the invoice number sequence
func (r *InvoiceRepository) NextNumber(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.DB.GetContext(ctx, &n, `SELECT nextval('invoice_number_seq')`); err != nil {
		return 0, fmt.Errorf("failed to reserve invoice number: %w", err)
	}
	return n, nil
}
