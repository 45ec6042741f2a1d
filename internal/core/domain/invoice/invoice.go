package invoice

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LineItem is one billable line on an invoice. Amounts are integer cents.
type LineItem struct {
	Description     string `json:"description"`
	Quantity        int    `json:"quantity"`
	UnitAmountCents int64  `json:"unit_amount_cents"`
}

// LineItems is stored as a JSONB column.
type LineItems []LineItem

func (l LineItems) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *LineItems) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("invoice: cannot scan %T into LineItems", src)
	}
	return json.Unmarshal(b, l)
}

type Invoice struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	Number        string        `json:"number" db:"number"`
	GigID         uuid.UUID     `json:"gig_id" db:"gig_id"`
	ChefID        uuid.UUID     `json:"chef_id" db:"chef_id"`
	CompanyID     uuid.UUID     `json:"company_id" db:"company_id"`
	LineItems     LineItems     `json:"line_items" db:"line_items"`
	SubtotalCents int64         `json:"subtotal_cents" db:"subtotal_cents"`
	TaxCents      int64         `json:"tax_cents" db:"tax_cents"`
	TotalCents    int64         `json:"total_cents" db:"total_cents"`
	Currency      string        `json:"currency" db:"currency"`
	Status        InvoiceStatus `json:"status" db:"status"`
	IssuedAt      *time.Time    `json:"issued_at" db:"issued_at"`
	DueAt         *time.Time    `json:"due_at" db:"due_at"`
	PaidAt        *time.Time    `json:"paid_at" db:"paid_at"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

type InvoiceStatus string

const (
	StatusDraft InvoiceStatus = "draft"
	StatusSent  InvoiceStatus = "sent"
	StatusPaid  InvoiceStatus = "paid"
	StatusVoid  InvoiceStatus = "void"
)

// IsDraft reports whether the invoice can still be edited.
func (i *Invoice) IsDraft() bool {
	return i.Status == StatusDraft
}

// ComputeTotals recalculates subtotal and total from the line items. Totals
// are always derived server-side; client-provided totals are ignored.
func (i *Invoice) ComputeTotals() {
	var subtotal int64
	for _, li := range i.LineItems {
		subtotal += int64(li.Quantity) * li.UnitAmountCents
	}
	i.SubtotalCents = subtotal
	i.TotalCents = subtotal + i.TaxCents
}

// CreateInvoiceRequest represents the request to open a draft invoice for a
// completed gig
type CreateInvoiceRequest struct {
	GigID     uuid.UUID  `json:"gig_id" validate:"required"`
	LineItems LineItems  `json:"line_items" validate:"required,min=1"`
	TaxCents  int64      `json:"tax_cents" validate:"min=0"`
	Currency  string     `json:"currency"`
	DueAt     *time.Time `json:"due_at,omitempty"`
}

// UpdateInvoiceRequest represents the request to edit a draft invoice
type UpdateInvoiceRequest struct {
	LineItems *LineItems `json:"line_items,omitempty"`
	TaxCents  *int64     `json:"tax_cents,omitempty"`
	DueAt     *time.Time `json:"due_at,omitempty"`
}
