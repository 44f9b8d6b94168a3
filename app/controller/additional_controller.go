package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pizzaria-storefront/models"
)

// AdditionalCatalog manages additionals
type AdditionalCatalog interface {
	ListAdditionals(ctx context.Context) ([]models.Additional, error)
	CreateAdditional(ctx context.Context, req *models.AdditionalRequest) (*models.Additional, error)
	UpdateAdditional(ctx context.Context, id string, req *models.AdditionalRequest) (*models.Additional, error)
	DeleteAdditional(ctx context.Context, id string) error
}

// AdditionalController handles HTTP requests for admin additional management
type AdditionalController struct {
	catalog AdditionalCatalog
}

// NewAdditionalController creates a new AdditionalController
func NewAdditionalController(catalog AdditionalCatalog) *AdditionalController {
	return &AdditionalController{catalog: catalog}
}

// ListAdditionals handles GET /admin/additionals
func (c *AdditionalController) ListAdditionals(w http.ResponseWriter, r *http.Request) {
	additionals, err := c.catalog.ListAdditionals(r.Context())
	if err != nil {
		log.Printf("❌ ListAdditionals: %v", err)
		http.Error(w, "Failed to list additionals", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, additionals, "ListAdditionals")
}

// CreateAdditional handles POST /admin/additionals
func (c *AdditionalController) CreateAdditional(w http.ResponseWriter, r *http.Request) {
	var req models.AdditionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateAdditional: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	additional, err := c.catalog.CreateAdditional(r.Context(), &req)
	if err != nil {
		log.Printf("❌ CreateAdditional: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create additional: %v", err), statusFor(err))
		return
	}

	log.Printf("✅ CreateAdditional: Created additional id=%s, name=%s", additional.ID, additional.Name)
	writeJSON(w, http.StatusCreated, additional, "CreateAdditional")
}

// UpdateAdditional handles PUT /admin/additionals/{id}
func (c *AdditionalController) UpdateAdditional(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.AdditionalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateAdditional: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	additional, err := c.catalog.UpdateAdditional(r.Context(), id, &req)
	if err != nil {
		log.Printf("❌ UpdateAdditional: %v", err)
		http.Error(w, fmt.Sprintf("Failed to update additional: %v", err), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, additional, "UpdateAdditional")
}

// DeleteAdditional handles DELETE /admin/additionals/{id}
func (c *AdditionalController) DeleteAdditional(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := c.catalog.DeleteAdditional(r.Context(), id); err != nil {
		log.Printf("❌ DeleteAdditional: id=%s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to delete additional: %v", err), statusFor(err))
		return
	}
	log.Printf("✅ DeleteAdditional: Deleted additional id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}
