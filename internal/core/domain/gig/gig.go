package gig

import (
	"time"

	"github.com/google/uuid"
)

type Gig struct {
	ID           uuid.UUID `json:"id" db:"id"`
	CompanyID    uuid.UUID `json:"company_id" db:"company_id"`
	PostedBy     uuid.UUID `json:"posted_by" db:"posted_by"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Venue        string    `json:"venue" db:"venue"`
	Cuisine      string    `json:"cuisine" db:"cuisine"`
	StartsAt     time.Time `json:"starts_at" db:"starts_at"`
	EndsAt       time.Time `json:"ends_at" db:"ends_at"`
	PayRateCents int64     `json:"pay_rate_cents" db:"pay_rate_cents"`
	Status       GigStatus `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type GigStatus string

const (
	StatusOpen      GigStatus = "open"
	StatusFilled    GigStatus = "filled"
	StatusCompleted GigStatus = "completed"
	StatusCancelled GigStatus = "cancelled"
)

func (s GigStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusFilled, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the gig still accepts applications.
func (g *Gig) IsOpen() bool {
	return g.Status == StatusOpen
}

// IsTerminal reports whether the gig can no longer change state.
func (g *Gig) IsTerminal() bool {
	return g.Status == StatusCompleted || g.Status == StatusCancelled
}

// CreateGigRequest represents the request to post a gig
type CreateGigRequest struct {
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description"`
	Venue        string    `json:"venue" validate:"required"`
	Cuisine      string    `json:"cuisine"`
	StartsAt     time.Time `json:"starts_at" validate:"required"`
	EndsAt       time.Time `json:"ends_at" validate:"required"`
	PayRateCents int64     `json:"pay_rate_cents" validate:"required,min=0"`
}

// UpdateGigRequest represents the request to edit an open gig
type UpdateGigRequest struct {
	Title        *string    `json:"title,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Venue        *string    `json:"venue,omitempty"`
	Cuisine      *string    `json:"cuisine,omitempty"`
	StartsAt     *time.Time `json:"starts_at,omitempty"`
	EndsAt       *time.Time `json:"ends_at,omitempty"`
	PayRateCents *int64     `json:"pay_rate_cents,omitempty"`
}

// Filter narrows gig board queries.
type Filter struct {
	Status    GigStatus  `query:"status"`
	Cuisine   string     `query:"cuisine"`
	CompanyID uuid.UUID  `query:"company_id"`
	From      *time.Time `query:"from"`
	To        *time.Time `query:"to"`
	Limit     int        `query:"limit"`
	Offset    int        `query:"offset"`
}
