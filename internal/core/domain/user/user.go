package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Email           string     `json:"email" db:"email"`
	PasswordHash    string     `json:"-" db:"password_hash"`
	FirstName       string     `json:"first_name" db:"first_name"`
	LastName        string     `json:"last_name" db:"last_name"`
	Role            UserRole   `json:"role" db:"role"`
	IsActive        bool       `json:"is_active" db:"is_active"`
	StripeAccountID *string    `json:"stripe_account_id,omitempty" db:"stripe_account_id"`
	PayoutsEnabled  bool       `json:"payouts_enabled" db:"payouts_enabled"`
	LastLoginAt     *time.Time `json:"last_login_at" db:"last_login_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

type UserRole string

const (
	RoleChef     UserRole = "chef"
	RoleBusiness UserRole = "business"
	RoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleChef, RoleBusiness, RoleAdmin:
		return true
	default:
		return false
	}
}

// FullName returns the display name used in notifications and emails.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RegisterRequest represents the request to create a new account
type RegisterRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=8"`
	FirstName string   `json:"first_name" validate:"required"`
	LastName  string   `json:"last_name" validate:"required"`
	Role      UserRole `json:"role" validate:"required"`
}

// UpdateUserRequest represents the request to update account details
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// ChangePasswordRequest represents the request to change the account password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
