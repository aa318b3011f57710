package models

import (
	"time"

	"github.com/google/uuid"
)

// BuyerPersona describes a target customer segment of an organization
type BuyerPersona struct {
	ID                uuid.UUID `json:"id"`
	OrganizationID    uuid.UUID `json:"organization_id"`
	Name              string    `json:"name"`
	AgeRange          string    `json:"age_range"`
	Gender            string    `json:"gender"`
	Occupation        string    `json:"occupation"`
	IncomeLevel       string    `json:"income_level"`
	EducationLevel    string    `json:"education_level"`
	Location          string    `json:"location"`
	PainPoints        []string  `json:"pain_points"`
	Goals             []string  `json:"goals"`
	PreferredChannels []string  `json:"preferred_channels"`
	BehaviorPatterns  string    `json:"behavior_patterns"`
	Motivations       string    `json:"motivations"`
	Frustrations      string    `json:"frustrations"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BuyerPersonaRequest represents the request body for creating or updating a persona
type BuyerPersonaRequest struct {
	Name              string   `json:"name"`
	AgeRange          string   `json:"age_range"`
	Gender            string   `json:"gender"`
	Occupation        string   `json:"occupation"`
	IncomeLevel       string   `json:"income_level"`
	EducationLevel    string   `json:"education_level"`
	Location          string   `json:"location"`
	PainPoints        []string `json:"pain_points"`
	Goals             []string `json:"goals"`
	PreferredChannels []string `json:"preferred_channels"`
	BehaviorPatterns  string   `json:"behavior_patterns"`
	Motivations       string   `json:"motivations"`
	Frustrations      string   `json:"frustrations"`
}

// PersonaSuggestionRequest asks for an AI drafted persona
type PersonaSuggestionRequest struct {
	ProductIDs []uuid.UUID `json:"product_ids"`
	Hint       string      `json:"hint"`
}
