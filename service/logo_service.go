package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"campaign-studio/models"
	"campaign-studio/repository"
)

// LogoServiceInterface defines the contract for organization logo uploads
type LogoServiceInterface interface {
	Upload(ctx context.Context, organizationID uuid.UUID, ownerID uuid.UUID, data []byte) (*models.LogoUploadResponse, error)
}

// LogoService optimizes uploaded logos, stores them and points the organization at the stored copy
type LogoService struct {
	organizations repository.OrganizationRepositoryInterface
	store         LogoStore
	now           func() time.Time
}

// NewLogoService creates a new LogoService
func NewLogoService(organizations repository.OrganizationRepositoryInterface, store LogoStore) *LogoService {
	return &LogoService{
		organizations: organizations,
		store:         store,
		now:           time.Now,
	}
}

// Ensure LogoService implements LogoServiceInterface
var _ LogoServiceInterface = (*LogoService)(nil)

// Upload replaces the logo of an organization owned by ownerID
func (s *LogoService) Upload(ctx context.Context, organizationID uuid.UUID, ownerID uuid.UUID, data []byte) (*models.LogoUploadResponse, error) {
	log.Printf("🔄 Uploading logo for organization %s (%d bytes)", organizationID, len(data))

	// Check ownership before doing any image work
	if _, err := s.organizations.Get(ctx, organizationID, ownerID); err != nil {
		return nil, err
	}

	optimized, err := OptimizeLogo(data)
	if err != nil {
		return nil, err
	}

	// A new name per upload so browsers don't keep showing a cached logo
	name := fmt.Sprintf("%s-%d.jpg", organizationID, s.now().Unix())
	url, err := s.store.Save(ctx, name, optimized)
	if err != nil {
		return nil, err
	}

	if err := s.organizations.UpdateLogoURL(ctx, organizationID, ownerID, url); err != nil {
		return nil, err
	}

	log.Printf("✅ Logo for organization %s stored at %s", organizationID, url)
	return &models.LogoUploadResponse{
		OrganizationID: organizationID,
		LogoURL:        url,
		Size:           len(optimized),
	}, nil
}
