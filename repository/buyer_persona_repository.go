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

// BuyerPersonaRepository handles database operations for buyer personas
type BuyerPersonaRepository struct {
	db *sql.DB
}

// NewBuyerPersonaRepository creates a new BuyerPersonaRepository
func NewBuyerPersonaRepository(db *sql.DB) *BuyerPersonaRepository {
	return &BuyerPersonaRepository{db: db}
}

// Ensure BuyerPersonaRepository implements BuyerPersonaRepositoryInterface
var _ BuyerPersonaRepositoryInterface = (*BuyerPersonaRepository)(nil)

const personaColumns = `bp.id, bp.organization_id, bp.name, bp.age_range, bp.gender, bp.occupation,
	bp.income_level, bp.education_level, bp.location, bp.pain_points, bp.goals, bp.preferred_channels,
	bp.behavior_patterns, bp.motivations, bp.frustrations, bp.created_at, bp.updated_at`

// ListByOrganization returns the personas of an organization owned by ownerID, oldest first.
// Returns ErrOrganizationNotFound when the organization does not belong to ownerID.
func (r *BuyerPersonaRepository) ListByOrganization(ctx context.Context, organizationID uuid.UUID, ownerID uuid.UUID) ([]models.BuyerPersona, error) {
	query := `
		SELECT ` + personaColumns + `
		FROM buyer_personas bp
		INNER JOIN organizations o ON bp.organization_id = o.id
		WHERE bp.organization_id = $1 AND o.created_by = $2
		ORDER BY bp.created_at ASC
	`

	if err := requireOwnedOrganization(ctx, r.db, organizationID, ownerID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, organizationID, ownerID)
	if err != nil {
		log.Printf("❌ Error listing buyer personas: %v", err)
		return nil, fmt.Errorf("failed to list buyer personas: %w", err)
	}
	defer rows.Close()

	personas := []models.BuyerPersona{}
	for rows.Next() {
		persona, err := scanPersona(rows)
		if err != nil {
			log.Printf("❌ Error scanning buyer persona: %v", err)
			return nil, fmt.Errorf("failed to scan buyer persona: %w", err)
		}
		personas = append(personas, *persona)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate buyer personas: %w", err)
	}

	log.Printf("✓ Listed %d buyer personas for organization %s", len(personas), organizationID)
	return personas, nil
}

// Get retrieves a persona whose organization is owned by ownerID
func (r *BuyerPersonaRepository) Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.BuyerPersona, error) {
	query := `
		SELECT ` + personaColumns + `
		FROM buyer_personas bp
		INNER JOIN organizations o ON bp.organization_id = o.id
		WHERE bp.id = $1 AND o.created_by = $2
	`

	persona, err := scanPersona(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPersonaNotFound
		}
		return nil, fmt.Errorf("failed to get buyer persona: %w", err)
	}
	return persona, nil
}

// Create inserts a persona under an organization owned by ownerID.
// Returns ErrOrganizationNotFound when the organization does not belong to ownerID.
func (r *BuyerPersonaRepository) Create(ctx context.Context, persona *models.BuyerPersona, ownerID uuid.UUID) error {
	if persona.ID == uuid.Nil {
		persona.ID = uuid.Must(uuid.NewV7())
	}

	query := `
		INSERT INTO buyer_personas (
			id, organization_id, name, age_range, gender, occupation, income_level, education_level,
			location, pain_points, goals, preferred_channels, behavior_patterns, motivations, frustrations,
			created_at, updated_at
		)
		SELECT $1::uuid, o.id, $3::text, $4::text, $5::text, $6::text, $7::text, $8::text,
			$9::text, $10::text[], $11::text[], $12::text[], $13::text, $14::text, $15::text,
			NOW(), NOW()
		FROM organizations o
		WHERE o.id = $2 AND o.created_by = $16
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		persona.ID, persona.OrganizationID, persona.Name, persona.AgeRange, persona.Gender,
		persona.Occupation, persona.IncomeLevel, persona.EducationLevel, persona.Location,
		nonNil(persona.PainPoints), nonNil(persona.Goals), nonNil(persona.PreferredChannels),
		persona.BehaviorPatterns, persona.Motivations, persona.Frustrations, ownerID,
	).Scan(&persona.CreatedAt, &persona.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrganizationNotFound
		}
		log.Printf("❌ Error creating buyer persona %q: %v", persona.Name, err)
		return mapPostgresError(fmt.Errorf("failed to create buyer persona: %w", err))
	}

	log.Printf("✓ Created buyer persona: id=%s, organization_id=%s", persona.ID, persona.OrganizationID)
	return nil
}

// Update replaces the editable fields of a persona; the organization cannot change
func (r *BuyerPersonaRepository) Update(ctx context.Context, persona *models.BuyerPersona, ownerID uuid.UUID) error {
	query := `
		UPDATE buyer_personas bp SET
			name = $3,
			age_range = $4,
			gender = $5,
			occupation = $6,
			income_level = $7,
			education_level = $8,
			location = $9,
			pain_points = $10,
			goals = $11,
			preferred_channels = $12,
			behavior_patterns = $13,
			motivations = $14,
			frustrations = $15,
			updated_at = NOW()
		FROM organizations o
		WHERE bp.id = $1 AND bp.organization_id = o.id AND o.created_by = $2
		RETURNING bp.organization_id, bp.created_at, bp.updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		persona.ID, ownerID, persona.Name, persona.AgeRange, persona.Gender, persona.Occupation,
		persona.IncomeLevel, persona.EducationLevel, persona.Location,
		nonNil(persona.PainPoints), nonNil(persona.Goals), nonNil(persona.PreferredChannels),
		persona.BehaviorPatterns, persona.Motivations, persona.Frustrations,
	).Scan(&persona.OrganizationID, &persona.CreatedAt, &persona.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPersonaNotFound
		}
		log.Printf("❌ Error updating buyer persona %s: %v", persona.ID, err)
		return mapPostgresError(fmt.Errorf("failed to update buyer persona: %w", err))
	}

	log.Printf("✓ Updated buyer persona: id=%s", persona.ID)
	return nil
}

// Delete removes a persona whose organization is owned by ownerID
func (r *BuyerPersonaRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `
		DELETE FROM buyer_personas bp
		USING organizations o
		WHERE bp.id = $1 AND bp.organization_id = o.id AND o.created_by = $2
	`
	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		log.Printf("❌ Error deleting buyer persona %s: %v", id, err)
		return fmt.Errorf("failed to delete buyer persona: %w", err)
	}

	if err := requireAffected(result, ErrPersonaNotFound); err != nil {
		return err
	}

	log.Printf("🗑️  Deleted buyer persona: id=%s", id)
	return nil
}

func scanPersona(row rowScanner) (*models.BuyerPersona, error) {
	var persona models.BuyerPersona
	err := row.Scan(
		&persona.ID,
		&persona.OrganizationID,
		&persona.Name,
		&persona.AgeRange,
		&persona.Gender,
		&persona.Occupation,
		&persona.IncomeLevel,
		&persona.EducationLevel,
		&persona.Location,
		textArray(&persona.PainPoints),
		textArray(&persona.Goals),
		textArray(&persona.PreferredChannels),
		&persona.BehaviorPatterns,
		&persona.Motivations,
		&persona.Frustrations,
		&persona.CreatedAt,
		&persona.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &persona, nil
}
