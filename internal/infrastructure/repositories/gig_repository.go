package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/internal/core/domain/gig"
	"github.com/chefpantry/chefpantry/internal/core/ports"
	"github.com/chefpantry/chefpantry/internal/infrastructure/db"
)

// GigRepository implements the gig repository interface
type GigRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewGigRepository creates a new gig repository
func NewGigRepository(database *db.Database, logger *logrus.Logger) ports.GigRepository {
	return &GigRepository{
		db:     database,
		logger: logger,
	}
}

const gigColumns = `id, company_id, posted_by, title, description, venue, cuisine, starts_at, ends_at, pay_rate_cents, status, created_at, updated_at`

// Create creates a new gig
func (r *GigRepository) Create(ctx context.Context, g *gig.Gig) error {
	query := `
		INSERT INTO gigs (id, company_id, posted_by, title, description, venue, cuisine, starts_at, ends_at, pay_rate_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.DB.ExecContext(ctx, query,
		g.ID, g.CompanyID, g.PostedBy, g.Title, g.Description, g.Venue,
		g.Cuisine, g.StartsAt, g.EndsAt, g.PayRateCents, g.Status)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"gig_id": g.ID, "company_id": g.CompanyID}).WithError(err).Error("db: failed to create gig")
		}
		return fmt.Errorf("failed to create gig: %w", err)
	}
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"gig_id": g.ID, "company_id": g.CompanyID}).Info("db: gig created")
	}

	return nil
}

// GetByID retrieves a gig by ID
func (r *GigRepository) GetByID(ctx context.Context, id uuid.UUID) (*gig.Gig, error) {
	var g gig.Gig
	query := `SELECT ` + gigColumns + ` FROM gigs WHERE id = $1`

	err := r.db.DB.GetContext(ctx, &g, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("gig with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get gig by ID: %w", err)
	}

	return &g, nil
}

// Update updates a gig
func (r *GigRepository) Update(ctx context.Context, g *gig.Gig) error {
	query := `
		UPDATE gigs
		SET title = $2, description = $3, venue = $4, cuisine = $5, starts_at = $6,
			ends_at = $7, pay_rate_cents = $8, status = $9, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query,
		g.ID, g.Title, g.Description, g.Venue, g.Cuisine, g.StartsAt,
		g.EndsAt, g.PayRateCents, g.Status)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"gig_id": g.ID}).WithError(err).Error("db: failed to update gig")
		}
		return fmt.Errorf("failed to update gig: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("gig with ID %s not found", g.ID)
	}

	return nil
}

// List retrieves gigs matching the filter
func (r *GigRepository) List(ctx context.Context, filter *gig.Filter) ([]*gig.Gig, error) {
	var conditions []string
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.Cuisine != "" {
		args = append(args, filter.Cuisine)
		conditions = append(conditions, "cuisine = $"+strconv.Itoa(len(args)))
	}
	if filter.CompanyID != uuid.Nil {
		args = append(args, filter.CompanyID)
		conditions = append(conditions, "company_id = $"+strconv.Itoa(len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, "starts_at >= $"+strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, "starts_at <= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + gigColumns + ` FROM gigs`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY starts_at"

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	args = append(args, limit)
	query += " LIMIT $" + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	var gigs []*gig.Gig
	if err := r.db.DB.SelectContext(ctx, &gigs, query, args...); err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"query": query}).WithError(err).Error("db: failed to list gigs")
		}
		return nil, fmt.Errorf("failed to list gigs: %w", err)
	}

	return gigs, nil
}

const applicationColumns = `id, gig_id, chef_id, cover_note, status, created_at, updated_at`

// CreateApplication stores a chef's application to a gig
func (r *GigRepository) CreateApplication(ctx context.Context, a *gig.Application) error {
	query := `
		INSERT INTO gig_applications (id, gig_id, chef_id, cover_note, status)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.DB.ExecContext(ctx, query, a.ID, a.GigID, a.ChefID, a.CoverNote, a.Status)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"gig_id": a.GigID, "chef_id": a.ChefID}).WithError(err).Error("db: failed to create gig application")
		}
		return fmt.Errorf("failed to create gig application: %w", err)
	}

	return nil
}

// GetApplication retrieves an application by ID
func (r *GigRepository) GetApplication(ctx context.Context, id uuid.UUID) (*gig.Application, error) {
	var a gig.Application
	query := `SELECT ` + applicationColumns + ` FROM gig_applications WHERE id = $1`

	err := r.db.DB.GetContext(ctx, &a, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("application with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get application by ID: %w", err)
	}

	return &a, nil
}

// GetApplicationByGigAndChef retrieves a chef's application to a gig
func (r *GigRepository) GetApplicationByGigAndChef(ctx context.Context, gigID, chefID uuid.UUID) (*gig.Application, error) {
	var a gig.Application
	query := `SELECT ` + applicationColumns + ` FROM gig_applications WHERE gig_id = $1 AND chef_id = $2`

	err := r.db.DB.GetContext(ctx, &a, query, gigID, chefID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("application not found")
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	return &a, nil
}

// UpdateApplication updates an application
func (r *GigRepository) UpdateApplication(ctx context.Context, a *gig.Application) error {
	query := `
		UPDATE gig_applications
		SET cover_note = $2, status = $3, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.DB.ExecContext(ctx, query, a.ID, a.CoverNote, a.Status)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("application with ID %s not found", a.ID)
	}

	return nil
}

// ListApplicationsForGig lists all applications on a gig
func (r *GigRepository) ListApplicationsForGig(ctx context.Context, gigID uuid.UUID) ([]*gig.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM gig_applications WHERE gig_id = $1 ORDER BY created_at`

	var apps []*gig.Application
	if err := r.db.DB.SelectContext(ctx, &apps, query, gigID); err != nil {
		return nil, fmt.Errorf("failed to list applications for gig: %w", err)
	}

	return apps, nil
}

// ListApplicationsForChef lists a chef's applications
func (r *GigRepository) ListApplicationsForChef(ctx context.Context, chefID uuid.UUID) ([]*gig.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM gig_applications WHERE chef_id = $1 ORDER BY created_at DESC`

	var apps []*gig.Application
	if err := r.db.DB.SelectContext(ctx, &apps, query, chefID); err != nil {
		return nil, fmt.Errorf("failed to list applications for chef: %w", err)
	}

	return apps, nil
}

// DeclinePendingApplications declines every pending application on the gig
// except keep, returning the affected chef ids.
func (r *GigRepository) DeclinePendingApplications(ctx context.Context, gigID uuid.UUID, keep uuid.UUID) ([]uuid.UUID, error) {
	query := `
		UPDATE gig_applications
		SET status = $3, updated_at = NOW()
		WHERE gig_id = $1 AND id <> $2 AND status = $4
		RETURNING chef_id`

	rows, err := r.db.DB.QueryContext(ctx, query, gigID, keep, gig.ApplicationDeclined, gig.ApplicationPending)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"gig_id": gigID}).WithError(err).Error("db: failed to decline sibling applications")
		}
		return nil, fmt.Errorf("failed to decline pending applications: %w", err)
	}
	defer rows.Close()

	var chefIDs []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan declined chef id: %w", err)
		}
		chefIDs = append(chefIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read declined chef ids: %w", err)
	}

	return chefIDs, nil
}
