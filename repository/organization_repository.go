package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"campaign-studio/models"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *sql.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *sql.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Ensure OrganizationRepository implements OrganizationRepositoryInterface
var _ OrganizationRepositoryInterface = (*OrganizationRepository)(nil)

const organizationColumns = `id, name, mission, vision, strategic_objectives, logo_url, created_by, created_at, updated_at`

// ListByOwner returns the organizations created by ownerID, newest first
func (r *OrganizationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE created_by = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Printf("❌ Error listing organizations: %v", err)
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	organizations := []models.Organization{}
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			log.Printf("❌ Error scanning organization: %v", err)
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		organizations = append(organizations, *org)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate organizations: %w", err)
	}

	log.Printf("✓ Listed %d organizations for owner %s", len(organizations), ownerID)
	return organizations, nil
}

// Get retrieves an organization owned by ownerID
func (r *OrganizationRepository) Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE id = $1 AND created_by = $2`

	org, err := scanOrganization(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

// Create inserts a new organization and fills in its id and timestamps
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	if org.ID == uuid.Nil {
		org.ID = uuid.Must(uuid.NewV7())
	}

	query := `
		INSERT INTO organizations (id, name, mission, vision, strategic_objectives, logo_url, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		org.ID, org.Name, org.Mission, org.Vision, nonNil(org.StrategicObjectives), org.LogoURL, org.CreatedBy,
	).Scan(&org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		log.Printf("❌ Error creating organization %q: %v", org.Name, err)
		return mapPostgresError(fmt.Errorf("failed to create organization: %w", err))
	}

	log.Printf("✓ Created organization: id=%s, name=%s", org.ID, org.Name)
	return nil
}

// Update replaces the editable fields of an organization owned by org.CreatedBy
func (r *OrganizationRepository) Update(ctx context.Context, org *models.Organization) error {
	query := `
		UPDATE organizations SET
			name = $3,
			mission = $4,
			vision = $5,
			strategic_objectives = $6,
			logo_url = $7,
			updated_at = NOW()
		WHERE id = $1 AND created_by = $2
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		org.ID, org.CreatedBy, org.Name, org.Mission, org.Vision, nonNil(org.StrategicObjectives), org.LogoURL,
	).Scan(&org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrganizationNotFound
		}
		log.Printf("❌ Error updating organization %s: %v", org.ID, err)
		return mapPostgresError(fmt.Errorf("failed to update organization: %w", err))
	}

	log.Printf("✓ Updated organization: id=%s", org.ID)
	return nil
}

// UpdateLogoURL sets only the logo of an organization
func (r *OrganizationRepository) UpdateLogoURL(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, logoURL string) error {
	query := `UPDATE organizations SET logo_url = $3, updated_at = NOW() WHERE id = $1 AND created_by = $2`

	result, err := r.db.ExecContext(ctx, query, id, ownerID, logoURL)
	if err != nil {
		log.Printf("❌ Error updating logo for organization %s: %v", id, err)
		return fmt.Errorf("failed to update organization logo: %w", err)
	}

	return requireAffected(result, ErrOrganizationNotFound)
}

// Delete removes an organization; products and personas go with it through ON DELETE CASCADE
func (r *OrganizationRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM organizations WHERE id = $1 AND created_by = $2`, id, ownerID)
	if err != nil {
		log.Printf("❌ Error deleting organization %s: %v", id, err)
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	if err := requireAffected(result, ErrOrganizationNotFound); err != nil {
		return err
	}

	log.Printf("🗑️  Deleted organization: id=%s", id)
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrganization(row rowScanner) (*models.Organization, error) {
	var org models.Organization
	err := row.Scan(
		&org.ID,
		&org.Name,
		&org.Mission,
		&org.Vision,
		textArray(&org.StrategicObjectives),
		&org.LogoURL,
		&org.CreatedBy,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// requireAffected turns "no rows affected" into notFound
func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

// requireOwnedOrganization returns ErrOrganizationNotFound unless organizationID exists and belongs to ownerID
func requireOwnedOrganization(ctx context.Context, db *sql.DB, organizationID uuid.UUID, ownerID uuid.UUID) error {
	var owned bool
	query := `SELECT EXISTS (SELECT 1 FROM organizations WHERE id = $1 AND created_by = $2)`
	if err := db.QueryRowContext(ctx, query, organizationID, ownerID).Scan(&owned); err != nil {
		return fmt.Errorf("failed to check organization ownership: %w", err)
	}
	if !owned {
		return ErrOrganizationNotFound
	}
	return nil
}
