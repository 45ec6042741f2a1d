package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/chefpantry/chefpantry/internal/core/domain/invoice"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, inv *invoice.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error)
	GetByGigAndChef(ctx context.Context, gigID, chefID uuid.UUID) (*invoice.Invoice, error)
	Update(ctx context.Context, inv *invoice.Invoice) error
	ListByChef(ctx context.Context, chefID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error)
	// NextNumber reserves the next value of the invoice number sequence.
	NextNumber(ctx context.Context) (int64, error)
}

// InvoiceService defines the interface for invoicing business logic
type InvoiceService interface {
	CreateDraft(ctx context.Context, chefID uuid.UUID, req *invoice.CreateInvoiceRequest) (*invoice.Invoice, error)
	UpdateDraft(ctx context.Context, chefID, invoiceID uuid.UUID, req *invoice.UpdateInvoiceRequest) (*invoice.Invoice, error)
	Send(ctx context.Context, chefID, invoiceID uuid.UUID) (*invoice.Invoice, error)
	MarkPaid(ctx context.Context, actorID, invoiceID uuid.UUID) (*invoice.Invoice, error)
	Void(ctx context.Context, chefID, invoiceID uuid.UUID) (*invoice.Invoice, error)
	Get(ctx context.Context, actorID, invoiceID uuid.UUID) (*invoice.Invoice, error)
	ListByChef(ctx context.Context, chefID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error)
	ListByCompany(ctx context.Context, actorID, companyID uuid.UUID, limit, offset int) ([]*invoice.Invoice, error)
}
