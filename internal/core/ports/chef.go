package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/chefpantry/chefpantry/internal/core/domain/chef"
)

// ChefRepository defines the interface for chef profile data operations
type ChefRepository interface {
	Upsert(ctx context.Context, profile *chef.Profile) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*chef.Profile, error)
	Search(ctx context.Context, filter *chef.SearchFilter) ([]*chef.Profile, error)
}

// ChefService defines the interface for chef profile business logic
type ChefService interface {
	UpsertProfile(ctx context.Context, userID uuid.UUID, req *chef.UpsertProfileRequest) (*chef.Profile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*chef.Profile, error)
	SearchProfiles(ctx context.Context, filter *chef.SearchFilter) ([]*chef.Profile, error)
	SetAvailability(ctx context.Context, userID uuid.UUID, available bool) (*chef.Profile, error)
}
