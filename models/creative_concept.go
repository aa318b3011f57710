package models

import (
	"time"

	"github.com/google/uuid"
)

// CreativeConceptRequest represents the request body for generating a creative concept
type CreativeConceptRequest struct {
	OrganizationID uuid.UUID   `json:"organization_id"`
	ProductIDs     []uuid.UUID `json:"product_ids"`
	PersonaIDs     []uuid.UUID `json:"persona_ids"`
	Title          string      `json:"title"`
	Brief          string      `json:"brief"`
	UseAI          bool        `json:"ai"`
}

// CreativeConcept is a generated marketing brief. It is returned to the caller and never stored.
type CreativeConcept struct {
	Title          string      `json:"title"`
	OrganizationID uuid.UUID   `json:"organization_id"`
	ProductIDs     []uuid.UUID `json:"product_ids"`
	PersonaIDs     []uuid.UUID `json:"persona_ids"`
	Brief          string      `json:"brief"`
	Content        string      `json:"content"`
	AIProposal     string      `json:"ai_proposal,omitempty"`
	Warning        string      `json:"warning,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}
