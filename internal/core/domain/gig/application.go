package gig

import (
	"time"

	"github.com/google/uuid"
)

// Application is a chef's application to an open gig. At most one exists per
// (gig, chef) pair.
type Application struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	GigID     uuid.UUID         `json:"gig_id" db:"gig_id"`
	ChefID    uuid.UUID         `json:"chef_id" db:"chef_id"`
	CoverNote string            `json:"cover_note" db:"cover_note"`
	Status    ApplicationStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" db:"updated_at"`
}

type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationDeclined  ApplicationStatus = "declined"
	ApplicationWithdrawn ApplicationStatus = "withdrawn"
)

// IsPending reports whether the application still awaits a decision.
func (a *Application) IsPending() bool {
	return a.Status == ApplicationPending
}

// ApplyRequest represents the request to apply to a gig
type ApplyRequest struct {
	CoverNote string `json:"cover_note"`
}
