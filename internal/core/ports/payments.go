package ports

import (
	"context"

	"github.com/google/uuid"
)

// AccountStatus is the payout-relevant state of a connected payment account.
type AccountStatus struct {
	AccountID      string `json:"account_id"`
	DetailsFilled  bool   `json:"details_filled"`
	ChargesEnabled bool   `json:"charges_enabled"`
	PayoutsEnabled bool   `json:"payouts_enabled"`
}

// PayoutService defines the interface for chef payout onboarding business logic
type PayoutService interface {
	// StartOnboarding provisions a connected account on first use and
	// returns a hosted onboarding URL.
	StartOnboarding(ctx context.Context, userID uuid.UUID) (string, error)
	// RefreshStatus polls the provider and stores the payout state on the user.
	RefreshStatus(ctx context.Context, userID uuid.UUID) (*AccountStatus, error)
}

// PaymentService wraps the payment provider's Connect onboarding surface.
type PaymentService interface {
	// CreateAccount provisions a connected account for the chef's email and
	// returns its provider id.
	CreateAccount(ctx context.Context, email string) (string, error)
	// OnboardingLink returns a single-use hosted onboarding URL for the account.
	OnboardingLink(ctx context.Context, accountID string) (string, error)
	// GetAccountStatus polls the provider for the account's current state.
	GetAccountStatus(ctx context.Context, accountID string) (*AccountStatus, error)
}
