package ports

import "context"

// EmailService defines the interface for transactional email delivery
type EmailService interface {
	SendTeamInvite(ctx context.Context, email, companyName, token string) error
	SendInvoiceIssued(ctx context.Context, email, invoiceNumber string, totalCents int64, currency string) error
	SendContactMessage(ctx context.Context, name, replyTo, message string) error
}
