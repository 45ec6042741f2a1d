package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	impl "github.com/chefpantry/chefpantry/internal/application/services"
	"github.com/chefpantry/chefpantry/internal/core/domain/user"
	"github.com/chefpantry/chefpantry/test/mocks"
)

func TestUserService_RegisterHashesPasswordAndActivates(t *testing.T) {
	var created *user.User
	userRepo := &mocks.UserRepositoryMock{
		CreateFn: func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		},
	}
	svc := impl.NewUserService(userRepo, &mocks.TokenRepositoryMock{}, logrus.New())

	u, err := svc.Register(context.Background(), &user.RegisterRequest{
		Email:     "new@example.com",
		Password:  "s3cret-pass",
		FirstName: "Nia",
		LastName:  "Plater",
		Role:      user.RoleChef,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.True(t, u.IsActive)
	require.NotEqual(t, "s3cret-pass", u.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret-pass")))
}

func TestUserService_RegisterRejectsAdminRole(t *testing.T) {
	svc := impl.NewUserService(&mocks.UserRepositoryMock{}, &mocks.TokenRepositoryMock{}, logrus.New())

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		Email:     "boss@example.com",
		Password:  "s3cret-pass",
		FirstName: "A",
		LastName:  "B",
		Role:      user.RoleAdmin,
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid role")
}

func TestUserService_RegisterRejectsDuplicateEmail(t *testing.T) {
	existing := &user.User{ID: uuid.New(), Email: "taken@example.com"}
	userRepo := &mocks.UserRepositoryMock{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return existing, nil },
	}
	svc := impl.NewUserService(userRepo, &mocks.TokenRepositoryMock{}, logrus.New())

	_, err := svc.Register(context.Background(), &user.RegisterRequest{
		Email:     "taken@example.com",
		Password:  "s3cret-pass",
		FirstName: "A",
		LastName:  "B",
		Role:      user.RoleBusiness,
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")
}

func TestUserService_ChangePasswordRevokesRefreshTokens(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.MinCost)
	u := &user.User{ID: uuid.New(), PasswordHash: string(hash), IsActive: true}
	var updated *user.User
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) { return u, nil },
		UpdateFn: func(ctx context.Context, usr *user.User) error {
			updated = usr
			return nil
		},
	}
	revoked := false
	tokenRepo := &mocks.TokenRepositoryMock{
		DeleteUserRefreshTokensFn: func(ctx context.Context, id uuid.UUID) error {
			revoked = true
			return nil
		},
	}
	svc := impl.NewUserService(userRepo, tokenRepo, logrus.New())

	err := svc.ChangePassword(context.Background(), u.ID, "old-pass", "new-pass-123")
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-pass-123")))
	if !revoked {
		t.Fatal("expected refresh tokens to be revoked after password change")
	}
}

func TestUserService_ChangePasswordRejectsWrongCurrent(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.MinCost)
	u := &user.User{ID: uuid.New(), PasswordHash: string(hash), IsActive: true}
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) { return u, nil },
	}
	svc := impl.NewUserService(userRepo, &mocks.TokenRepositoryMock{}, logrus.New())

	err := svc.ChangePassword(context.Background(), u.ID, "not-it", "new-pass-123")
	require.Error(t, err)
	require.Contains(t, err.Error(), "current password is incorrect")
}

func TestUserService_UpdateUserPatchesOnlyProvidedFields(t *testing.T) {
	u := &user.User{ID: uuid.New(), FirstName: "Old", LastName: "Name", IsActive: true}
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) { return u, nil },
		UpdateFn:  func(ctx context.Context, usr *user.User) error { return nil },
	}
	svc := impl.NewUserService(userRepo, &mocks.TokenRepositoryMock{}, logrus.New())

	first := "New"
	out, err := svc.UpdateUser(context.Background(), u.ID, &user.UpdateUserRequest{FirstName: &first})
	require.NoError(t, err)
	require.Equal(t, "New", out.FirstName)
	require.Equal(t, "Name", out.LastName)
	require.True(t, out.IsActive)
}

func TestUserService_DeactivateRevokesSessions(t *testing.T) {
	u := &user.User{ID: uuid.New(), IsActive: true}
	userRepo := &mocks.UserRepositoryMock{
		GetByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) { return u, nil },
		UpdateFn:  func(ctx context.Context, usr *user.User) error { return nil },
	}
	revoked := false
	tokenRepo := &mocks.TokenRepositoryMock{
		DeleteUserRefreshTokensFn: func(ctx context.Context, id uuid.UUID) error {
			revoked = true
			return nil
		},
	}
	svc := impl.NewUserService(userRepo, tokenRepo, logrus.New())

	require.NoError(t, svc.DeactivateUser(context.Background(), u.ID))
	require.False(t, u.IsActive)
	require.True(t, revoked)
}
