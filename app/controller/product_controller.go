package controller

import (
	"log"
	"net/http"

	"github.com/google/uuid"

	"campaign-studio/models"
	"campaign-studio/repository"
)

// ProductController handles HTTP requests for products
type ProductController struct {
	repository repository.ProductRepositoryInterface
}

// NewProductController creates a new ProductController
func NewProductController(repo repository.ProductRepositoryInterface) *ProductController {
	return &ProductController{repository: repo}
}

// List handles GET /api/organizations/{id}/products
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	products, err := c.repository.ListByOrganization(r.Context(), orgID, user.ID)
	if err != nil {
		writeServiceError(w, "ListProducts", err)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Create handles POST /api/organizations/{id}/products
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateProduct: Received %s request to %s", r.Method, r.URL.Path)

	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	orgID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.ProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Printf("❌ CreateProduct: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := newProduct(req, orgID)
	if err != nil {
		writeServiceError(w, "CreateProduct", err)
		return
	}

	if err := c.repository.Create(r.Context(), product, user.ID); err != nil {
		writeServiceError(w, "CreateProduct", err)
		return
	}

	log.Printf("✅ CreateProduct: Created product %s in organization %s", product.ID, orgID)
	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id}
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateProduct: Received %s request to %s", r.Method, r.URL.Path)

	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.ProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Printf("❌ UpdateProduct: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The organization is read back from the stored row
	product, err := newProduct(req, uuid.Nil)
	if err != nil {
		writeServiceError(w, "UpdateProduct", err)
		return
	}
	product.ID = id

	if err := c.repository.Update(r.Context(), product, user.ID); err != nil {
		writeServiceError(w, "UpdateProduct", err)
		return
	}

	log.Printf("✅ UpdateProduct: Updated product %s", product.ID)
	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id}
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DeleteProduct: Received %s request to %s", r.Method, r.URL.Path)

	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := c.repository.Delete(r.Context(), id, user.ID); err != nil {
		writeServiceError(w, "DeleteProduct", err)
		return
	}

	log.Printf("🗑️  DeleteProduct: Deleted product %s", id)
	w.WriteHeader(http.StatusNoContent)
}
