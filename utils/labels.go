package utils

import (
	"strings"

	"campaign-studio/models"
)

// Dashboard sections, in navigation order
const (
	SectionOverview      = "overview"
	SectionOrganizations = "organizations"
	SectionPersonas      = "personas"
	SectionProducts      = "products"
	SectionConcepts      = "concepts"
)

// Theme values
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Sections lists the dashboard sections in navigation order
var Sections = []string{SectionOverview, SectionOrganizations, SectionPersonas, SectionProducts, SectionConcepts}

var sectionLabels = map[string]string{
	SectionOverview:      "Resumen",
	SectionOrganizations: "Organizaciones",
	SectionPersonas:      "Buyer Personas",
	SectionProducts:      "Productos",
	SectionConcepts:      "Concepto Creativo",
}

var productStatusLabels = map[string]string{
	models.ProductStatusActive:   "Activo",
	models.ProductStatusInactive: "Inactivo",
	models.ProductStatusDraft:    "Borrador",
}

// NormalizeCode lowercases and trims a code coming from a form or query string
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// IsValidSection reports whether section names a dashboard section
func IsValidSection(section string) bool {
	_, ok := sectionLabels[NormalizeCode(section)]
	return ok
}

// MapSectionToLabel returns the navigation label for a section code.
// Unknown codes are returned unchanged.
func MapSectionToLabel(section string) string {
	if label, ok := sectionLabels[NormalizeCode(section)]; ok {
		return label
	}
	return section
}

// IsValidTheme reports whether theme is light, dark or system
func IsValidTheme(theme string) bool {
	switch NormalizeCode(theme) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// IsValidProductStatus reports whether status is accepted by the products table
func IsValidProductStatus(status string) bool {
	_, ok := productStatusLabels[NormalizeCode(status)]
	return ok
}

// MapProductStatusToLabel returns the display label for a product status code
func MapProductStatusToLabel(status string) string {
	if label, ok := productStatusLabels[NormalizeCode(status)]; ok {
		return label
	}
	return status
}

// NormalizeCurrency upper-cases an ISO-4217 code, defaulting to models.DefaultCurrency
func NormalizeCurrency(currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return models.DefaultCurrency
	}
	return currency
}

// IsValidCurrency reports whether currency is three upper-case ASCII letters
func IsValidCurrency(currency string) bool {
	if len(currency) != 3 {
		return false
	}
	for i := 0; i < len(currency); i++ {
		if currency[i] < 'A' || currency[i] > 'Z' {
			return false
		}
	}
	return true
}
