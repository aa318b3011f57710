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

// ProductRepository handles database operations for products
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

const productColumns = `p.id, p.organization_id, p.name, p.description, p.category, p.price, p.currency, p.status, p.created_at, p.updated_at`

// ListByOrganization returns the products of an organization owned by ownerID, newest first.
// Returns ErrOrganizationNotFound when the organization does not belong to ownerID.
func (r *ProductRepository) ListByOrganization(ctx context.Context, organizationID uuid.UUID, ownerID uuid.UUID) ([]models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		INNER JOIN organizations o ON p.organization_id = o.id
		WHERE p.organization_id = $1 AND o.created_by = $2
		ORDER BY p.created_at DESC
	`

	if err := requireOwnedOrganization(ctx, r.db, organizationID, ownerID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, organizationID, ownerID)
	if err != nil {
		log.Printf("❌ Error listing products: %v", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Printf("❌ Error scanning product: %v", err)
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	log.Printf("✓ Listed %d products for organization %s", len(products), organizationID)
	return products, nil
}

// Get retrieves a product whose organization is owned by ownerID
func (r *ProductRepository) Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		INNER JOIN organizations o ON p.organization_id = o.id
		WHERE p.id = $1 AND o.created_by = $2
	`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// Create inserts a product under an organization owned by ownerID.
// Returns ErrOrganizationNotFound when the organization does not belong to ownerID.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product, ownerID uuid.UUID) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.Must(uuid.NewV7())
	}

	query := `
		INSERT INTO products (id, organization_id, name, description, category, price, currency, status, created_at, updated_at)
		SELECT $1::uuid, o.id, $3::text, $4::text, $5::text, $6::numeric, $7::text, $8::text, NOW(), NOW()
		FROM organizations o
		WHERE o.id = $2 AND o.created_by = $9
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		product.ID, product.OrganizationID, product.Name, product.Description, product.Category,
		product.Price, product.Currency, product.Status, ownerID,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrOrganizationNotFound
		}
		log.Printf("❌ Error creating product %q: %v", product.Name, err)
		return mapPostgresError(fmt.Errorf("failed to create product: %w", err))
	}

	log.Printf("✓ Created product: id=%s, organization_id=%s", product.ID, product.OrganizationID)
	return nil
}

// Update replaces the editable fields of a product; the organization cannot change
func (r *ProductRepository) Update(ctx context.Context, product *models.Product, ownerID uuid.UUID) error {
	query := `
		UPDATE products p SET
			name = $3,
			description = $4,
			category = $5,
			price = $6,
			currency = $7,
			status = $8,
			updated_at = NOW()
		FROM organizations o
		WHERE p.id = $1 AND p.organization_id = o.id AND o.created_by = $2
		RETURNING p.organization_id, p.created_at, p.updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		product.ID, ownerID, product.Name, product.Description, product.Category,
		product.Price, product.Currency, product.Status,
	).Scan(&product.OrganizationID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProductNotFound
		}
		log.Printf("❌ Error updating product %s: %v", product.ID, err)
		return mapPostgresError(fmt.Errorf("failed to update product: %w", err))
	}

	log.Printf("✓ Updated product: id=%s", product.ID)
	return nil
}

// Delete removes a product whose organization is owned by ownerID
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	query := `
		DELETE FROM products p
		USING organizations o
		WHERE p.id = $1 AND p.organization_id = o.id AND o.created_by = $2
	`
	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		log.Printf("❌ Error deleting product %s: %v", id, err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if err := requireAffected(result, ErrProductNotFound); err != nil {
		return err
	}

	log.Printf("🗑️  Deleted product: id=%s", id)
	return nil
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var product models.Product
	err := row.Scan(
		&product.ID,
		&product.OrganizationID,
		&product.Name,
		&product.Description,
		&product.Category,
		&product.Price,
		&product.Currency,
		&product.Status,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
