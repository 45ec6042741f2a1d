package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/internal/core/ports"
)

// EmailConfig holds email service configuration
type EmailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	SupportInbox   string
	BaseURL        string
}

// EmailService implements the EmailService interface via SendGrid. Bodies are
// plain rendered strings; no template layer.
type EmailService struct {
	config *EmailConfig
	logger *logrus.Logger
	client *sendgrid.Client
}

// NewEmailService creates a new email service instance
func NewEmailService(config *EmailConfig, logger *logrus.Logger) (ports.EmailService, error) {
	if config.SendGridAPIKey == "" {
		return nil, fmt.Errorf("sendgrid api key is required")
	}
	return &EmailService{
		config: config,
		logger: logger,
		client: sendgrid.NewSendClient(config.SendGridAPIKey),
	}, nil
}

// sendEmail sends an email using SendGrid
func (e *EmailService) sendEmail(to, subject, htmlContent string) error {
	from := mail.NewEmail(e.config.FromName, e.config.FromEmail)
	recipient := mail.NewEmail("", to)

	message := mail.NewSingleEmail(from, subject, recipient, "", htmlContent)

	response, err := e.client.Send(message)
	if err != nil {
		e.logger.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
			"error":   err,
		}).Error("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	e.logger.WithFields(logrus.Fields{
		"to":          to,
		"subject":     subject,
		"status_code": response.StatusCode,
	}).Info("Email sent successfully")

	return nil
}

// SendTeamInvite sends a company team invitation with the redeem link
func (e *EmailService) SendTeamInvite(ctx context.Context, email, companyName, token string) error {
	inviteURL := fmt.Sprintf("%s/invites/accept?token=%s", e.config.BaseURL, token)
	subject := fmt.Sprintf("You've been invited to join %s on Chef Pantry", companyName)
	body := fmt.Sprintf(
		"<p>%s has invited you to join their team on Chef Pantry.</p><p><a href=%q>Accept the invitation</a></p><p>The invitation expires in 7 days.</p>",
		companyName, inviteURL,
	)
	return e.sendEmail(email, subject, body)
}

// SendInvoiceIssued notifies a business contact that an invoice was sent
func (e *EmailService) SendInvoiceIssued(ctx context.Context, email, invoiceNumber string, totalCents int64, currency string) error {
	subject := fmt.Sprintf("Invoice %s from Chef Pantry", invoiceNumber)
	body := fmt.Sprintf(
		"<p>Invoice %s for %.2f %s is ready.</p><p><a href=%q>View it in your dashboard</a></p>",
		invoiceNumber, float64(totalCents)/100, currency, e.config.BaseURL+"/invoices",
	)
	return e.sendEmail(email, subject, body)
}

// SendContactMessage relays a public contact-form submission to the support inbox
func (e *EmailService) SendContactMessage(ctx context.Context, name, replyTo, message string) error {
	subject := fmt.Sprintf("Contact form message from %s", name)
	body := fmt.Sprintf("<p>From: %s &lt;%s&gt;</p><p>%s</p>", name, replyTo, message)
	return e.sendEmail(e.config.SupportInbox, subject, body)
}
