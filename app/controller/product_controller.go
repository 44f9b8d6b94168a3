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

// ProductCatalog manages products
type ProductCatalog interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, req *models.ProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req *models.ProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ProductController handles HTTP requests for admin product management
type ProductController struct {
	catalog ProductCatalog
}

// NewProductController creates a new ProductController
func NewProductController(catalog ProductCatalog) *ProductController {
	return &ProductController{catalog: catalog}
}

// ListProducts handles GET /admin/products
func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.ListProducts(r.Context())
	if err != nil {
		log.Printf("❌ ListProducts: %v", err)
		http.Error(w, "Failed to list products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products, "ListProducts")
}

// GetProduct handles GET /admin/products/{id}
func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, err := c.catalog.GetProduct(r.Context(), id)
	if err != nil {
		log.Printf("❌ GetProduct: id=%s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to get product: %v", err), statusFor(err))
		return
	}
	writeJSON(w, http.StatusOK, product, "GetProduct")
}

// CreateProduct handles POST /admin/products
func (c *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateProduct: Received %s request to %s", r.Method, r.URL.Path)

	var req models.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateProduct: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	product, err := c.catalog.CreateProduct(r.Context(), &req)
	if err != nil {
		log.Printf("❌ CreateProduct: %v", err)
		http.Error(w, fmt.Sprintf("Failed to create product: %v", err), statusFor(err))
		return
	}

	log.Printf("✅ CreateProduct: Created product id=%s, name=%s", product.ID, product.Name)
	writeJSON(w, http.StatusCreated, product, "CreateProduct")
}

// UpdateProduct handles PUT /admin/products/{id}
func (c *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	log.Printf("📥 UpdateProduct: id=%s", id)

	var req models.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateProduct: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	product, err := c.catalog.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		log.Printf("❌ UpdateProduct: %v", err)
		http.Error(w, fmt.Sprintf("Failed to update product: %v", err), statusFor(err))
		return
	}

	log.Printf("✅ UpdateProduct: Updated product id=%s", product.ID)
	writeJSON(w, http.StatusOK, product, "UpdateProduct")
}

// DeleteProduct handles DELETE /admin/products/{id}
func (c *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := c.catalog.DeleteProduct(r.Context(), id); err != nil {
		log.Printf("❌ DeleteProduct: id=%s: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to delete product: %v", err), statusFor(err))
		return
	}
	log.Printf("✅ DeleteProduct: Deleted product id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}
