package controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"campaign-studio/models"
	"campaign-studio/service"
)

// CreativeConceptController handles concept generation and PDF export
type CreativeConceptController struct {
	concepts service.CreativeConceptServiceInterface
	exporter service.ConceptExporterInterface
}

// NewCreativeConceptController creates a new CreativeConceptController
func NewCreativeConceptController(concepts service.CreativeConceptServiceInterface, exporter service.ConceptExporterInterface) *CreativeConceptController {
	return &CreativeConceptController{
		concepts: concepts,
		exporter: exporter,
	}
}

// Generate handles POST /api/creative-concepts
func (c *CreativeConceptController) Generate(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GenerateConcept: Received %s request to %s", r.Method, r.URL.Path)

	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.CreativeConceptRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Printf("❌ GenerateConcept: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	log.Printf("📋 GenerateConcept: organization_id=%s, products=%d, personas=%d, ai=%t",
		req.OrganizationID, len(req.ProductIDs), len(req.PersonaIDs), req.UseAI)

	concept, err := c.concepts.Generate(r.Context(), user.ID, req)
	if err != nil {
		writeServiceError(w, "GenerateConcept", err)
		return
	}

	writeJSON(w, http.StatusOK, concept)
}

// Export handles POST /api/creative-concepts/export.
// The body is a concept previously returned by Generate; the response is a PDF attachment.
func (c *CreativeConceptController) Export(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ExportConcept: Received %s request to %s", r.Method, r.URL.Path)

	if _, ok := currentUser(w, r); !ok {
		return
	}

	var concept models.CreativeConcept
	if err := decodeJSON(w, r, &concept); err != nil {
		log.Printf("❌ ExportConcept: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(concept.Content) == "" {
		writeServiceError(w, "ExportConcept", validationError("content is required"))
		return
	}

	pdf, err := c.exporter.ExportPDF(r.Context(), &concept)
	if err != nil {
		writeServiceError(w, "ExportConcept", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, conceptFileName(concept.Title)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("❌ ExportConcept: Failed to write PDF: %v", err)
	}
}

// conceptFileName keeps letters, digits and dashes so the title is safe in a header
func conceptFileName(title string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash && b.Len() > 0:
			b.WriteByte('-')
			lastDash = true
		}
	}
	name := strings.TrimSuffix(b.String(), "-")
	if name == "" {
		return "concepto-creativo"
	}
	return name
}
