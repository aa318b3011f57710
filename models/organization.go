package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a client company managed from the dashboard
type Organization struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Mission             string    `json:"mission"`
	Vision              string    `json:"vision"`
	StrategicObjectives []string  `json:"strategic_objectives"`
	LogoURL             string    `json:"logo_url"`
	CreatedBy           uuid.UUID `json:"created_by"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// OrganizationRequest represents the request body for creating or updating an organization
type OrganizationRequest struct {
	Name                string   `json:"name"`
	Mission             string   `json:"mission"`
	Vision              string   `json:"vision"`
	StrategicObjectives []string `json:"strategic_objectives"`
	LogoURL             string   `json:"logo_url"`
}

// LogoUploadResponse is returned after a logo has been stored
type LogoUploadResponse struct {
	OrganizationID uuid.UUID `json:"organization_id"`
	LogoURL        string    `json:"logo_url"`
	Size           int       `json:"size"`
}
