package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/internal/core/domain/company"
	"github.com/chefpantry/chefpantry/internal/core/ports"
	"github.com/chefpantry/chefpantry/internal/infrastructure/db"
)

// CompanyRepository implements the company repository interface
type CompanyRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(database *db.Database, logger *logrus.Logger) ports.CompanyRepository {
	return &CompanyRepository{
		db:     database,
		logger: logger,
	}
}

// Create creates a new company
func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	query := `
		INSERT INTO companies (id, name, slug, description, location, website)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.DB.ExecContext(ctx, query,
		c.ID, c.Name, c.Slug, c.Description, c.Location, c.Website)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"company_id": c.ID, "slug": c.Slug}).WithError(err).Error("db: failed to create company")
		}
		return fmt.Errorf("failed to create company: %w", err)
	}
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"company_id": c.ID, "slug": c.Slug}).Info("db: company created")
	}

	return nil
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	var c company.Company
	query := `
		SELECT id, name, slug, description, location, website, created_at, updated_at
		FROM companies
		WHERE id = $1`

	err := r.db.DB.GetContext(ctx, &c, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("company with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get company by ID: %w", err)
	}

	return &c, nil
}

// GetBySlug retrieves a company by slug
func (r *CompanyRepository) GetBySlug(ctx context.Context, slug string) (*company.Company, error) {
	var c company.Company
	query := `
		SELECT id, name, slug, description, location, website, created_at, updated_at
		FROM companies
		WHERE slug = $1`

	err := r.db.DB.GetContext(ctx, &c, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("company with slug %s not found", slug)
		}
		return nil, fmt.Errorf("failed to get company by slug: %w", err)
	}

	return &c, nil
}

// Update updates company details
func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	query := `
		UPDATE companies
		SET name = $2, description = $3, location = $4, website = $5, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query,
		c.ID, c.Name, c.Description, c.Location, c.Website)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"company_id": c.ID}).WithError(err).Error("db: failed to update company")
		}
		return fmt.Errorf("failed to update company: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("company with ID %s not found", c.ID)
	}

	return nil
}

// AddMember adds a user to the company team
func (r *CompanyRepository) AddMember(ctx context.Context, companyID, userID uuid.UUID, role company.MemberRole) error {
	query := `
		INSERT INTO company_members (company_id, user_id, role)
		VALUES ($1, $2, $3)`

	_, err := r.db.DB.ExecContext(ctx, query, companyID, userID, role)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"company_id": companyID, "user_id": userID}).WithError(err).Error("db: failed to add company member")
		}
		return fmt.Errorf("failed to add company member: %w", err)
	}

	return nil
}

// RemoveMember removes a user from the company team
func (r *CompanyRepository) RemoveMember(ctx context.Context, companyID, userID uuid.UUID) error {
	result, err := r.db.DB.ExecContext(ctx,
		`DELETE FROM company_members WHERE company_id = $1 AND user_id = $2`, companyID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove company member: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("user %s is not a member of company %s", userID, companyID)
	}

	return nil
}

const memberColumns = `
	cm.company_id, cm.user_id, cm.role, cm.joined_at,
	u.email, u.first_name, u.last_name`

// GetMember retrieves a single team membership
func (r *CompanyRepository) GetMember(ctx context.Context, companyID, userID uuid.UUID) (*company.Member, error) {
	var m company.Member
	query := `
		SELECT ` + memberColumns + `
		FROM company_members cm
		JOIN users u ON u.id = cm.user_id
		WHERE cm.company_id = $1 AND cm.user_id = $2`

	err := r.db.DB.GetContext(ctx, &m, query, companyID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %s is not a member of company %s", userID, companyID)
		}
		return nil, fmt.Errorf("failed to get company member: %w", err)
	}

	return &m, nil
}

// GetMembership retrieves the company membership of a user. A user belongs to
// at most one company.
func (r *CompanyRepository) GetMembership(ctx context.Context, userID uuid.UUID) (*company.Member, error) {
	var m company.Member
	query := `
		SELECT ` + memberColumns + `
		FROM company_members cm
		JOIN users u ON u.id = cm.user_id
		WHERE cm.user_id = $1`

	err := r.db.DB.GetContext(ctx, &m, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user %s has no company membership", userID)
		}
		return nil, fmt.Errorf("failed to get company membership: %w", err)
	}

	return &m, nil
}

// ListMembers lists the team of a company
func (r *CompanyRepository) ListMembers(ctx context.Context, companyID uuid.UUID) ([]*company.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM company_members cm
		JOIN users u ON u.id = cm.user_id
		WHERE cm.company_id = $1
		ORDER BY cm.joined_at`

	var members []*company.Member
	if err := r.db.DB.SelectContext(ctx, &members, query, companyID); err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"company_id": companyID}).WithError(err).Error("db: failed to list company members")
		}
		return nil, fmt.Errorf("failed to list company members: %w", err)
	}

	return members, nil
}

// CreateInvite stores a team invite
func (r *CompanyRepository) CreateInvite(ctx context.Context, inv *company.Invite) error {
	query := `
		INSERT INTO company_invites (id, company_id, email, role, token, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.DB.ExecContext(ctx, query,
		inv.ID, inv.CompanyID, inv.Email, inv.Role, inv.Token, inv.ExpiresAt)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"company_id": inv.CompanyID, "email": inv.Email}).WithError(err).Error("db: failed to create company invite")
		}
		return fmt.Errorf("failed to create company invite: %w", err)
	}

	return nil
}

// GetInviteByToken retrieves an invite by its redemption token
func (r *CompanyRepository) GetInviteByToken(ctx context.Context, token string) (*company.Invite, error) {
	var inv company.Invite
	query := `
		SELECT id, company_id, email, role, token, expires_at, accepted_at, created_at
		FROM company_invites
		WHERE token = $1`

	err := r.db.DB.GetContext(ctx, &inv, query, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("invite not found")
		}
		return nil, fmt.Errorf("failed to get invite by token: %w", err)
	}

	return &inv, nil
}

// MarkInviteAccepted records invite redemption
func (r *CompanyRepository) MarkInviteAccepted(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.DB.ExecContext(ctx,
		`UPDATE company_invites SET accepted_at = NOW() WHERE id = $1 AND accepted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to mark invite accepted: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("invite %s not found or already accepted", id)
	}

	return nil
}
