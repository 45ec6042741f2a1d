package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	impl "github.com/chefpantry/chefpantry/internal/application/services"
	"github.com/chefpantry/chefpantry/internal/core/domain/user"
	"github.com/chefpantry/chefpantry/internal/core/ports"
	"github.com/chefpantry/chefpantry/test/mocks"
)

func TestPayoutService_OnboardingProvisionsAccountOnce(t *testing.T) {
	u := &user.User{ID: uuid.New(), Email: "chef@example.com", Role: user.RoleChef}
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) { return u, nil },
		UpdateFn:  func(ctx context.Context, usr *user.User) error { return nil },
	}
	created := 0
	payments := &mocks.PaymentServiceMock{
		CreateAccountFn: func(ctx context.Context, email string) (string, error) {
			created++
			return "acct_123", nil
		},
		OnboardingLinkFn: func(ctx context.Context, accountID string) (string, error) {
			require.Equal(t, "acct_123", accountID)
			return "https://connect.example/onboard/acct_123", nil
		},
	}
	svc := impl.NewPayoutService(userRepo, payments, logrus.New())

	link, err := svc.StartOnboarding(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, "https://connect.example/onboard/acct_123", link)
	require.NotNil(t, u.StripeAccountID)

	// Second call reuses the stored account.
	_, err = svc.StartOnboarding(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, 1, created)
}

func TestPayoutService_OnboardingChefsOnly(t *testing.T) {
	u := &user.User{ID: uuid.New(), Role: user.RoleBusiness}
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) { return u, nil },
	}
	svc := impl.NewPayoutService(userRepo, &mocks.PaymentServiceMock{}, logrus.New())

	_, err := svc.StartOnboarding(context.Background(), u.ID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "only chefs")
}

func TestPayoutService_RefreshStatusPersistsPayoutFlag(t *testing.T) {
	accountID := "acct_456"
	u := &user.User{ID: uuid.New(), Role: user.RoleChef, StripeAccountID: &accountID}
	updated := false
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) { return u, nil },
		UpdateFn: func(ctx context.Context, usr *user.User) error {
			updated = true
			return nil
		},
	}
	payments := &mocks.PaymentServiceMock{
		GetAccountStatusFn: func(ctx context.Context, aID string) (*ports.AccountStatus, error) {
			return &ports.AccountStatus{AccountID: aID, DetailsFilled: true, ChargesEnabled: true, PayoutsEnabled: true}, nil
		},
	}
	svc := impl.NewPayoutService(userRepo, payments, logrus.New())

	status, err := svc.RefreshStatus(context.Background(), u.ID)
	require.NoError(t, err)
	require.True(t, status.PayoutsEnabled)
	require.True(t, u.PayoutsEnabled)
	require.True(t, updated)
}

func TestPayoutService_RefreshStatusRequiresAccount(t *testing.T) {
	u := &user.User{ID: uuid.New(), Role: user.RoleChef}
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) { return u, nil },
	}
	svc := impl.NewPayoutService(userRepo, &mocks.PaymentServiceMock{}, logrus.New())

	_, err := svc.RefreshStatus(context.Background(), u.ID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not been started")
}
