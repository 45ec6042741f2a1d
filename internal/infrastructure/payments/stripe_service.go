package payments

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/chefpantry/chefpantry/internal/core/ports"
)

// StripeConfig holds Stripe Connect configuration
type StripeConfig struct {
	APIKey           string
	OnboardingReturn string
	OnboardingRetry  string
}

// StripeService implements PaymentService on top of Stripe Connect express
// accounts. Chefs onboard through Stripe's hosted flow; we only poll account
// state afterwards.
type StripeService struct {
	config *StripeConfig
	logger *logrus.Logger
	api    *client.API
}

// NewStripeService creates a new Stripe-backed payment service
func NewStripeService(config *StripeConfig, logger *logrus.Logger) (ports.PaymentService, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("stripe api key is required")
	}
	api := &client.API{}
	api.Init(config.APIKey, nil)
	return &StripeService{config: config, logger: logger, api: api}, nil
}

// CreateAccount provisions an express connected account for a chef
func (s *StripeService) CreateAccount(ctx context.Context, email string) (string, error) {
	params := &stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeExpress)),
		Email: stripe.String(email),
	}
	params.Context = ctx

	acct, err := s.api.Accounts.New(params)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"email": email}).WithError(err).Error("stripe: failed to create connected account")
		}
		return "", fmt.Errorf("failed to create connected account: %w", err)
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"account_id": acct.ID}).Info("stripe: connected account created")
	}
	return acct.ID, nil
}

// OnboardingLink returns a single-use hosted onboarding URL
func (s *StripeService) OnboardingLink(ctx context.Context, accountID string) (string, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		ReturnURL:  stripe.String(s.config.OnboardingReturn),
		RefreshURL: stripe.String(s.config.OnboardingRetry),
		Type:       stripe.String("account_onboarding"),
	}
	params.Context = ctx

	link, err := s.api.AccountLinks.New(params)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"account_id": accountID}).WithError(err).Error("stripe: failed to create onboarding link")
		}
		return "", fmt.Errorf("failed to create onboarding link: %w", err)
	}
	return link.URL, nil
}

// GetAccountStatus polls Stripe for the account's current payout state
func (s *StripeService) GetAccountStatus(ctx context.Context, accountID string) (*ports.AccountStatus, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	acct, err := s.api.Accounts.GetByID(accountID, params)
	if err != nil {
		if s.logger != nil {
			s.logger.WithFields(logrus.Fields{"account_id": accountID}).WithError(err).Error("stripe: failed to fetch account")
		}
		return nil, fmt.Errorf("failed to fetch account %s: %w", accountID, err)
	}

	return &ports.AccountStatus{
		AccountID:      acct.ID,
		DetailsFilled:  acct.DetailsSubmitted,
		ChargesEnabled: acct.ChargesEnabled,
		PayoutsEnabled: acct.PayoutsEnabled,
	}, nil
}
