package chef

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Profile is a chef's public marketplace profile, keyed by the owning user.
type Profile struct {
	UserID          uuid.UUID      `json:"user_id" db:"user_id"`
	Headline        string         `json:"headline" db:"headline"`
	Bio             string         `json:"bio" db:"bio"`
	Cuisines        pq.StringArray `json:"cuisines" db:"cuisines"`
	YearsExperience int            `json:"years_experience" db:"years_experience"`
	HourlyRateCents int64          `json:"hourly_rate_cents" db:"hourly_rate_cents"`
	Location        string         `json:"location" db:"location"`
	Available       bool           `json:"available" db:"available"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// UpsertProfileRequest creates or replaces the caller's chef profile
type UpsertProfileRequest struct {
	Headline        string   `json:"headline" validate:"required"`
	Bio             string   `json:"bio"`
	Cuisines        []string `json:"cuisines"`
	YearsExperience int      `json:"years_experience" validate:"min=0"`
	HourlyRateCents int64    `json:"hourly_rate_cents" validate:"min=0"`
	Location        string   `json:"location" validate:"required"`
	Available       *bool    `json:"available,omitempty"`
}

// SearchFilter narrows profile searches on the public chef board.
type SearchFilter struct {
	Cuisine        string `query:"cuisine"`
	Location       string `query:"location"`
	MaxHourlyCents int64  `query:"max_hourly_cents"`
	AvailableOnly  bool   `query:"available_only"`
	Limit          int    `query:"limit"`
	Offset         int    `query:"offset"`
}
