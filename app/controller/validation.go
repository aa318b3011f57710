package controller

import (
	"strings"

	"github.com/google/uuid"

	"campaign-studio/models"
	"campaign-studio/utils"
)

// maxProductPrice is the first value products.price NUMERIC(12,2) cannot hold
const maxProductPrice = 1e10

// validationError carries a message safe to show to the client
type validationError string

func (e validationError) Error() string { return string(e) }

func newOrganization(req models.OrganizationRequest, ownerID uuid.UUID) (*models.Organization, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("name is required")
	}

	return &models.Organization{
		Name:                name,
		Mission:             strings.TrimSpace(req.Mission),
		Vision:              strings.TrimSpace(req.Vision),
		StrategicObjectives: utils.CleanList(req.StrategicObjectives),
		LogoURL:             strings.TrimSpace(req.LogoURL),
		CreatedBy:           ownerID,
	}, nil
}

func newProduct(req models.ProductRequest, organizationID uuid.UUID) (*models.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("name is required")
	}
	if req.Price < 0 {
		return nil, validationError("price must be greater than or equal to 0")
	}
	if req.Price >= maxProductPrice {
		return nil, validationError("price must be less than 10000000000")
	}

	status := strings.ToLower(strings.TrimSpace(req.Status))
	if status == "" {
		status = models.ProductStatusActive
	}
	if !utils.IsValidProductStatus(status) {
		return nil, validationError("status must be one of active, inactive, draft")
	}

	currency := utils.NormalizeCurrency(req.Currency)
	if !utils.IsValidCurrency(currency) {
		return nil, validationError("currency must be a 3-letter ISO code")
	}

	return &models.Product{
		OrganizationID: organizationID,
		Name:           name,
		Description:    strings.TrimSpace(req.Description),
		Category:       strings.TrimSpace(req.Category),
		Price:          req.Price,
		Currency:       currency,
		Status:         status,
	}, nil
}

func newBuyerPersona(req models.BuyerPersonaRequest, organizationID uuid.UUID) (*models.BuyerPersona, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("name is required")
	}

	return &models.BuyerPersona{
		OrganizationID:    organizationID,
		Name:              name,
		AgeRange:          strings.TrimSpace(req.AgeRange),
		Gender:            strings.TrimSpace(req.Gender),
		Occupation:        strings.TrimSpace(req.Occupation),
		IncomeLevel:       strings.TrimSpace(req.IncomeLevel),
		EducationLevel:    strings.TrimSpace(req.EducationLevel),
		Location:          strings.TrimSpace(req.Location),
		PainPoints:        utils.CleanList(req.PainPoints),
		Goals:             utils.CleanList(req.Goals),
		PreferredChannels: utils.CleanList(req.PreferredChannels),
		BehaviorPatterns:  strings.TrimSpace(req.BehaviorPatterns),
		Motivations:       strings.TrimSpace(req.Motivations),
		Frustrations:      strings.TrimSpace(req.Frustrations),
	}, nil
}
