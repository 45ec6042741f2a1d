package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/chefpantry/chefpantry/internal/core/domain/gig"
)

// GigRepository defines the interface for gig and application data operations
type GigRepository interface {
	Create(ctx context.Context, g *gig.Gig) error
	GetByID(ctx context.Context, id uuid.UUID) (*gig.Gig, error)
	Update(ctx context.Context, g *gig.Gig) error
	List(ctx context.Context, filter *gig.Filter) ([]*gig.Gig, error)

	CreateApplication(ctx context.Context, a *gig.Application) error
	GetApplication(ctx context.Context, id uuid.UUID) (*gig.Application, error)
	GetApplicationByGigAndChef(ctx context.Context, gigID, chefID uuid.UUID) (*gig.Application, error)
	UpdateApplication(ctx context.Context, a *gig.Application) error
	ListApplicationsForGig(ctx context.Context, gigID uuid.UUID) ([]*gig.Application, error)
	ListApplicationsForChef(ctx context.Context, chefID uuid.UUID) ([]*gig.Application, error)
	// DeclinePendingApplications declines every pending application on the
	// gig except keep, returning the affected chef ids.
	DeclinePendingApplications(ctx context.Context, gigID uuid.UUID, keep uuid.UUID) ([]uuid.UUID, error)
}

// GigService defines the interface for gig board business logic
type GigService interface {
	PostGig(ctx context.Context, actorID uuid.UUID, req *gig.CreateGigRequest) (*gig.Gig, error)
	UpdateGig(ctx context.Context, actorID, gigID uuid.UUID, req *gig.UpdateGigRequest) (*gig.Gig, error)
	CancelGig(ctx context.Context, actorID, gigID uuid.UUID) (*gig.Gig, error)
	CompleteGig(ctx context.Context, actorID, gigID uuid.UUID) (*gig.Gig, error)
	GetGig(ctx context.Context, id uuid.UUID) (*gig.Gig, error)
	ListGigs(ctx context.Context, filter *gig.Filter) ([]*gig.Gig, error)

	Apply(ctx context.Context, chefID, gigID uuid.UUID, req *gig.ApplyRequest) (*gig.Application, error)
	Withdraw(ctx context.Context, chefID, applicationID uuid.UUID) (*gig.Application, error)
	ListGigApplications(ctx context.Context, actorID, gigID uuid.UUID) ([]*gig.Application, error)
	ListOwnApplications(ctx context.Context, chefID uuid.UUID) ([]*gig.Application, error)
	AcceptApplication(ctx context.Context, actorID, applicationID uuid.UUID) (*gig.Application, error)
	DeclineApplication(ctx context.Context, actorID, applicationID uuid.UUID) (*gig.Application, error)
}
