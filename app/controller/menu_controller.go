package controller

import (
	"context"
	"log"
	"net/http"

	"pizzaria-storefront/models"
)

// MenuProvider supplies the public menu listing
type MenuProvider interface {
	Menu(ctx context.Context, category string) (*models.MenuResponse, error)
	ListAdditionals(ctx context.Context) ([]models.Additional, error)
}

// MenuPDFGenerator prints the menu
type MenuPDFGenerator interface {
	GeneratePDF(ctx context.Context) ([]byte, error)
}

// MenuController handles HTTP requests for the public menu
type MenuController struct {
	catalog MenuProvider
	pdf     MenuPDFGenerator
}

// NewMenuController creates a new MenuController
func NewMenuController(catalog MenuProvider, pdf MenuPDFGenerator) *MenuController {
	return &MenuController{catalog: catalog, pdf: pdf}
}

// GetMenu handles GET /menu
// Query parameters:
//   - category: optional, restricts the listing to one category (case-insensitive)
func (c *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	log.Printf("📥 GetMenu: category=%q", category)

	menu, err := c.catalog.Menu(r.Context(), category)
	if err != nil {
		log.Printf("❌ GetMenu: Error loading menu: %v", err)
		http.Error(w, "Failed to load menu", http.StatusInternalServerError)
		return
	}

	log.Printf("✅ GetMenu: %d categories", len(menu.Categories))
	writeJSON(w, http.StatusOK, menu, "GetMenu")
}

// GetAdditionals handles GET /menu/additionals
func (c *MenuController) GetAdditionals(w http.ResponseWriter, r *http.Request) {
	additionals, err := c.catalog.ListAdditionals(r.Context())
	if err != nil {
		log.Printf("❌ GetAdditionals: Error loading additionals: %v", err)
		http.Error(w, "Failed to load additionals", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, additionals, "GetAdditionals")
}

// GetMenuPDF handles GET /menu/pdf
func (c *MenuController) GetMenuPDF(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetMenuPDF: Generating printable menu")

	pdf, err := c.pdf.GeneratePDF(r.Context())
	if err != nil {
		log.Printf("❌ GetMenuPDF: %v", err)
		http.Error(w, "Failed to generate menu PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="cardapio.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("❌ GetMenuPDF: Error writing response: %v", err)
	}
}
