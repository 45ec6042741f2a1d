package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Slug        string    `json:"slug" db:"slug"`
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location" db:"location"`
	Website     string    `json:"website" db:"website"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type MemberRole string

const (
	MemberRoleOwner   MemberRole = "owner"
	MemberRoleManager MemberRole = "manager"
	MemberRoleMember  MemberRole = "member"
)

func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleOwner, MemberRoleManager, MemberRoleMember:
		return true
	default:
		return false
	}
}

// CanManageTeam reports whether the role may invite and remove members.
func (r MemberRole) CanManageTeam() bool {
	return r == MemberRoleOwner || r == MemberRoleManager
}

// Member links a user to a company with a team role.
type Member struct {
	CompanyID uuid.UUID  `json:"company_id" db:"company_id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	Role      MemberRole `json:"role" db:"role"`
	Email     string     `json:"email" db:"email"`
	FirstName string     `json:"first_name" db:"first_name"`
	LastName  string     `json:"last_name" db:"last_name"`
	JoinedAt  time.Time  `json:"joined_at" db:"joined_at"`
}

// Invite is an emailed, token-bearing invitation to join a company team.
type Invite struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	CompanyID  uuid.UUID  `json:"company_id" db:"company_id"`
	Email      string     `json:"email" db:"email"`
	Role       MemberRole `json:"role" db:"role"`
	Token      string     `json:"-" db:"token"`
	ExpiresAt  time.Time  `json:"expires_at" db:"expires_at"`
	AcceptedAt *time.Time `json:"accepted_at" db:"accepted_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// IsExpired checks if the invite has passed its expiry instant
func (i *Invite) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}

// IsAccepted checks if the invite has already been redeemed
func (i *Invite) IsAccepted() bool {
	return i.AcceptedAt != nil
}

// IsValid checks if the invite can still be redeemed
func (i *Invite) IsValid() bool {
	return !i.IsExpired() && !i.IsAccepted()
}

// CreateCompanyRequest represents the request to register a company
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Website     string `json:"website"`
}

// UpdateCompanyRequest represents the request to update company details
type UpdateCompanyRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Website     *string `json:"website,omitempty"`
}

// InviteMemberRequest represents the request to invite a user onto the team
type InviteMemberRequest struct {
	Email string     `json:"email" validate:"required,email"`
	Role  MemberRole `json:"role" validate:"required"`
}

// AcceptInviteRequest represents the request to redeem an invite token
type AcceptInviteRequest struct {
	Token string `json:"token" validate:"required"`
}
