package controller

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"campaign-studio/models"
	"campaign-studio/repository"
	"campaign-studio/service"
)

// BuyerPersonaController handles HTTP requests for buyer personas
type BuyerPersonaController struct {
	repository    repository.BuyerPersonaRepositoryInterface
	organizations repository.OrganizationRepositoryInterface
	products      repository.ProductRepositoryInterface
	suggester     service.PersonaSuggesterInterface
}

// NewBuyerPersonaController creates a new BuyerPersonaController
func NewBuyerPersonaController(
	repo repository.BuyerPersonaRepositoryInterface,
	organizations repository.OrganizationRepositoryInterface,
	products repository.ProductRepositoryInterface,
	suggester service.PersonaSuggesterInterface,
) *BuyerPersonaController {
	return &BuyerPersonaController{
		repository:    repo,
		organizations: organizations,
		products:      products,
		suggester:     suggester,
	}
}

// List handles GET /api/organizations/{id}/personas
func (c *BuyerPersonaController) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	personas, err := c.repository.ListByOrganization(r.Context(), orgID, user.ID)
	if err != nil {
		writeServiceError(w, "ListPersonas", err)
		return
	}

	writeJSON(w, http.StatusOK, personas)
}

// Create handles POST /api/organizations/{id}/personas
func (c *BuyerPersonaController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreatePersona: Received %s request to %s", r.Method, r.URL.Path)

	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.BuyerPersonaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Printf("❌ CreatePersona: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	persona, err := newBuyerPersona(req, orgID)
	if err != nil {
		writeServiceError(w, "CreatePersona", err)
		return
	}

	if err := c.repository.Create(r.Context(), persona, user.ID); err != nil {
		writeServiceError(w, "CreatePersona", err)
		return
	}

	log.Printf("✅ CreatePersona: Created persona %s in organization %s", persona.ID, orgID)
	writeJSON(w, http.StatusCreated, persona)
}

// Update handles PUT /api/personas/{id}
func (c *BuyerPersonaController) Update(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdatePersona: Received %s request to %s", r.Method, r.URL.Path)

	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.BuyerPersonaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Printf("❌ UpdatePersona: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	persona, err := newBuyerPersona(req, uuid.Nil)
	if err != nil {
		writeServiceError(w, "UpdatePersona", err)
		return
	}
	persona.ID = id

	if err := c.repository.Update(r.Context(), persona, user.ID); err != nil {
		writeServiceError(w, "UpdatePersona", err)
		return
	}

	log.Printf("✅ UpdatePersona: Updated persona %s", persona.ID)
	writeJSON(w, http.StatusOK, persona)
}

// Delete handles DELETE /api/personas/{id}
func (c *BuyerPersonaController) Delete(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeletePersona: Received %s request to %s", r.Method, r.URL.Path)

	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := c.repository.Delete(r.Context(), id, user.ID); err != nil {
		writeServiceError(w, "DeletePersona", err)
		return
	}

	log.Printf("🗑️  DeletePersona: Deleted persona %s", id)
	w.WriteHeader(http.StatusNoContent)
}

// Suggest handles POST /api/organizations/{id}/personas/suggest.
// The drafted persona is returned unsaved; an empty body uses every product of the organization.
func (c *BuyerPersonaController) Suggest(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SuggestPersona: Received %s request to %s", r.Method, r.URL.Path)

	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.PersonaSuggestionRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		log.Printf("❌ SuggestPersona: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	org, err := c.organizations.Get(r.Context(), orgID, user.ID)
	if err != nil {
		writeServiceError(w, "SuggestPersona", err)
		return
	}

	products, err := c.products.ListByOrganization(r.Context(), orgID, user.ID)
	if err != nil {
		writeServiceError(w, "SuggestPersona", err)
		return
	}
	if len(req.ProductIDs) > 0 {
		products, err = service.SelectProducts(products, req.ProductIDs)
		if err != nil {
			writeServiceError(w, "SuggestPersona", err)
			return
		}
	}

	persona, err := c.suggester.SuggestPersona(r.Context(), org, products, req.Hint)
	if err != nil {
		writeServiceError(w, "SuggestPersona", err)
		return
	}

	log.Printf("✅ SuggestPersona: Drafted persona %q for organization %s", persona.Name, orgID)
	writeJSON(w, http.StatusOK, persona)
}
