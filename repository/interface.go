package repository

import (
	"context"

	"github.com/google/uuid"

	"campaign-studio/models"
)

// UserRepositoryInterface defines the contract for user account storage
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// UpsertOAuthUser creates the user or refreshes name/avatar of the existing account with the same email
	UpsertOAuthUser(ctx context.Context, user *models.User) (*models.User, error)
}

// OrganizationRepositoryInterface defines the contract for organization storage.
// Every operation is scoped to the owner that created the organization.
type OrganizationRepositoryInterface interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Organization, error)
	Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.Organization, error)
	Create(ctx context.Context, org *models.Organization) error
	Update(ctx context.Context, org *models.Organization) error
	UpdateLogoURL(ctx context.Context, id uuid.UUID, ownerID uuid.UUID, logoURL string) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}

// ProductRepositoryInterface defines the contract for product storage.
// ownerID is the user that created the product's organization.
type ProductRepositoryInterface interface {
	ListByOrganization(ctx context.Context, organizationID uuid.UUID, ownerID uuid.UUID) ([]models.Product, error)
	Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.Product, error)
	Create(ctx context.Context, product *models.Product, ownerID uuid.UUID) error
	Update(ctx context.Context, product *models.Product, ownerID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}

// BuyerPersonaRepositoryInterface defines the contract for buyer persona storage.
// ownerID is the user that created the persona's organization.
type BuyerPersonaRepositoryInterface interface {
	ListByOrganization(ctx context.Context, organizationID uuid.UUID, ownerID uuid.UUID) ([]models.BuyerPersona, error)
	Get(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*models.BuyerPersona, error)
	Create(ctx context.Context, persona *models.BuyerPersona, ownerID uuid.UUID) error
	Update(ctx context.Context, persona *models.BuyerPersona, ownerID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}
