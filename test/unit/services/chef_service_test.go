package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	impl "github.com/chefpantry/chefpantry/internal/application/services"
	"github.com/chefpantry/chefpantry/internal/core/domain/chef"
	"github.com/chefpantry/chefpantry/internal/core/domain/user"
	"github.com/chefpantry/chefpantry/test/mocks"
)

func chefUserRepo(role user.UserRole) *mocks.UserRepositoryMock {
	return &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
			return &user.User{ID: id, Role: role, IsActive: true}, nil
		},
	}
}

func TestChefService_UpsertRequiresChefRole(t *testing.T) {
	svc := impl.NewChefService(&mocks.ChefRepositoryMock{}, chefUserRepo(user.RoleBusiness), logrus.New())

	_, err := svc.UpsertProfile(context.Background(), uuid.New(), &chef.UpsertProfileRequest{
		Headline: "Pastry specialist",
		Location: "Bristol",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "only chef accounts")
}

func TestChefService_UpsertDefaultsAvailableTrue(t *testing.T) {
	var saved *chef.Profile
	chefRepo := &mocks.ChefRepositoryMock{
		UpsertFn: func(ctx context.Context, p *chef.Profile) error {
			saved = p
			return nil
		},
		GetByUserIDFn: func(ctx context.Context, userID uuid.UUID) (*chef.Profile, error) {
			return nil, context.Canceled
		},
	}
	svc := impl.NewChefService(chefRepo, chefUserRepo(user.RoleChef), logrus.New())

	p, err := svc.UpsertProfile(context.Background(), uuid.New(), &chef.UpsertProfileRequest{
		Headline:        "Pastry specialist",
		Location:        "Bristol",
		Cuisines:        []string{"french", "patisserie"},
		HourlyRateCents: 3200,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.True(t, p.Available)
}

func TestChefService_UpsertPreservesExistingAvailability(t *testing.T) {
	userID := uuid.New()
	chefRepo := &mocks.ChefRepositoryMock{
		GetByUserIDFn: func(ctx context.Context, id uuid.UUID) (*chef.Profile, error) {
			return &chef.Profile{UserID: id, Available: false}, nil
		},
	}
	svc := impl.NewChefService(chefRepo, chefUserRepo(user.RoleChef), logrus.New())

	p, err := svc.UpsertProfile(context.Background(), userID, &chef.UpsertProfileRequest{
		Headline: "Grill chef",
		Location: "Leeds",
	})
	require.NoError(t, err)
	require.False(t, p.Available)
}

func TestChefService_SearchClampsPaging(t *testing.T) {
	var gotFilter *chef.SearchFilter
	chefRepo := &mocks.ChefRepositoryMock{
		SearchFn: func(ctx context.Context, filter *chef.SearchFilter) ([]*chef.Profile, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	svc := impl.NewChefService(chefRepo, &mocks.UserRepositoryMock{}, logrus.New())

	_, err := svc.SearchProfiles(context.Background(), &chef.SearchFilter{Limit: 5000, Offset: -1})
	require.NoError(t, err)
	require.NotNil(t, gotFilter)
	require.Equal(t, 100, gotFilter.Limit)
	require.Equal(t, 0, gotFilter.Offset)

	_, err = svc.SearchProfiles(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 20, gotFilter.Limit)
}

func TestChefService_SetAvailabilityFlipsFlag(t *testing.T) {
	userID := uuid.New()
	profile := &chef.Profile{UserID: userID, Available: true}
	var saved *chef.Profile
	chefRepo := &mocks.ChefRepositoryMock{
		GetByUserIDFn: func(ctx context.Context, id uuid.UUID) (*chef.Profile, error) { return profile, nil },
		UpsertFn: func(ctx context.Context, p *chef.Profile) error {
			saved = p
			return nil
		},
	}
	svc := impl.NewChefService(chefRepo, chefUserRepo(user.RoleChef), logrus.New())

	p, err := svc.SetAvailability(context.Background(), userID, false)
	require.NoError(t, err)
	require.False(t, p.Available)
	require.NotNil(t, saved)
}
