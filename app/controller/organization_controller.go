package controller

import (
	"io"
	"log"
	"net/http"

	"campaign-studio/models"
	"campaign-studio/repository"
	"campaign-studio/service"
)

// maxLogoUpload bounds the multipart body of a logo upload
const maxLogoUpload = 6 << 20

// OrganizationController handles HTTP requests for organizations
type OrganizationController struct {
	repository repository.OrganizationRepositoryInterface
	logos      service.LogoServiceInterface
}

// NewOrganizationController creates a new OrganizationController
func NewOrganizationController(repo repository.OrganizationRepositoryInterface, logos service.LogoServiceInterface) *OrganizationController {
	return &OrganizationController{
		repository: repo,
		logos:      logos,
	}
}

// List handles GET /api/organizations
func (c *OrganizationController) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	organizations, err := c.repository.ListByOwner(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, "ListOrganizations", err)
		return
	}

	writeJSON(w, http.StatusOK, organizations)
}

// Create handles POST /api/organizations
func (c *OrganizationController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateOrganization: Received %s request to %s", r.Method, r.URL.Path)

	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.OrganizationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Printf("❌ CreateOrganization: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	org, err := newOrganization(req, user.ID)
	if err != nil {
		writeServiceError(w, "CreateOrganization", err)
		return
	}

	if err := c.repository.Create(r.Context(), org); err != nil {
		writeServiceError(w, "CreateOrganization", err)
		return
	}

	log.Printf("✅ CreateOrganization: Created organization %s (%s)", org.ID, org.Name)
	writeJSON(w, http.StatusCreated, org)
}

// Get handles GET /api/organizations/{id}
func (c *OrganizationController) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	org, err := c.repository.Get(r.Context(), id, user.ID)
	if err != nil {
		writeServiceError(w, "GetOrganization", err)
		return
	}

	writeJSON(w, http.StatusOK, org)
}

// Update handles PUT /api/organizations/{id}. Every editable field is replaced.
func (c *OrganizationController) Update(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateOrganization: Received %s request to %s", r.Method, r.URL.Path)

	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.OrganizationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Printf("❌ UpdateOrganization: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	org, err := newOrganization(req, user.ID)
	if err != nil {
		writeServiceError(w, "UpdateOrganization", err)
		return
	}
	org.ID = id

	if err := c.repository.Update(r.Context(), org); err != nil {
		writeServiceError(w, "UpdateOrganization", err)
		return
	}

	log.Printf("✅ UpdateOrganization: Updated organization %s", org.ID)
	writeJSON(w, http.StatusOK, org)
}

// Delete handles DELETE /api/organizations/{id}
func (c *OrganizationController) Delete(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteOrganization: Received %s request to %s", r.Method, r.URL.Path)

	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := c.repository.Delete(r.Context(), id, user.ID); err != nil {
		writeServiceError(w, "DeleteOrganization", err)
		return
	}

	log.Printf("🗑️  DeleteOrganization: Deleted organization %s", id)
	w.WriteHeader(http.StatusNoContent)
}

// UploadLogo handles POST /api/organizations/{id}/logo with a multipart "logo" file
func (c *OrganizationController) UploadLogo(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UploadLogo: Received %s request to %s", r.Method, r.URL.Path)

	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxLogoUpload)
	file, header, err := r.FormFile("logo")
	if err != nil {
		log.Printf("❌ UploadLogo: Failed to read logo file: %v", err)
		writeError(w, http.StatusBadRequest, "logo file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("❌ UploadLogo: Failed to read %s: %v", header.Filename, err)
		writeError(w, http.StatusBadRequest, "failed to read logo file")
		return
	}

	resp, err := c.logos.Upload(r.Context(), id, user.ID, data)
	if err != nil {
		writeServiceError(w, "UploadLogo", err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
