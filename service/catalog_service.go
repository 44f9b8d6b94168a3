package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"pizzaria-storefront/cache"
	"pizzaria-storefront/models"
	"pizzaria-storefront/repository"
	"pizzaria-storefront/utils"
)

const menuCacheKey = "menu"

var (
	// ErrInvalidProduct is returned when a product request breaks the catalog rules
	ErrInvalidProduct = errors.New("invalid product")
	// ErrInvalidAdditional is returned when an additional request breaks the catalog rules
	ErrInvalidAdditional = errors.New("invalid additional")
	// ErrAdditionalNotOffered is returned when an add-on is selected that the product does not offer
	ErrAdditionalNotOffered = errors.New("additional not offered for product")
)

// CatalogService handles the product and additional catalog and the menu listing
type CatalogService struct {
	products    repository.ProductRepositoryInterface
	additionals repository.AdditionalRepositoryInterface
	cache       cache.Cache
}

// NewCatalogService creates a new CatalogService. A nil cache disables caching.
func NewCatalogService(
	products repository.ProductRepositoryInterface,
	additionals repository.AdditionalRepositoryInterface,
	menuCache cache.Cache,
) *CatalogService {
	if menuCache == nil {
		menuCache = cache.NopCache{}
	}
	return &CatalogService{
		products:    products,
		additionals: additionals,
		cache:       menuCache,
	}
}

// Menu returns products grouped by category, optionally restricted to one category.
// The full listing is served from cache when available.
func (s *CatalogService) Menu(ctx context.Context, category string) (*models.MenuResponse, error) {
	var menu models.MenuResponse
	found, err := s.cache.Get(ctx, menuCacheKey, &menu)
	if err != nil {
		log.Printf("⚠️  Menu: cache read failed, falling back to database: %v", err)
	}

	if !found {
		menu, err = s.buildMenu(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(ctx, menuCacheKey, menu); err != nil {
			log.Printf("⚠️  Menu: cache write failed: %v", err)
		}
	} else {
		log.Printf("✓ Menu: served from cache")
	}

	if category == "" {
		return &menu, nil
	}

	filtered := models.MenuResponse{Additionals: menu.Additionals, Categories: []models.MenuCategory{}}
	for _, c := range menu.Categories {
		if strings.EqualFold(c.Name, strings.TrimSpace(category)) {
			filtered.Categories = append(filtered.Categories, c)
		}
	}
	return &filtered, nil
}

func (s *CatalogService) buildMenu(ctx context.Context) (models.MenuResponse, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return models.MenuResponse{}, fmt.Errorf("failed to list products: %w", err)
	}
	additionals, err := s.additionals.List(ctx)
	if err != nil {
		return models.MenuResponse{}, fmt.Errorf("failed to list additionals: %w", err)
	}
	if additionals == nil {
		additionals = []models.Additional{}
	}
	return models.MenuResponse{Categories: GroupByCategory(products), Additionals: additionals}, nil
}

// GroupByCategory groups products by category keeping first-seen category order
func GroupByCategory(products []models.Product) []models.MenuCategory {
	categories := []models.MenuCategory{}
	index := make(map[string]int)
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(categories)
			index[p.Category] = i
			categories = append(categories, models.MenuCategory{Name: p.Category})
		}
		categories[i].Products = append(categories[i].Products, p)
	}
	return categories
}

// ListProducts returns every product
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// GetProduct returns a single product
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}

// CreateProduct validates the request and stores a new product under a fresh id
func (s *CatalogService) CreateProduct(ctx context.Context, req *models.ProductRequest) (*models.Product, error) {
	product, err := s.productFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	product.ID = uuid.NewString()

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateMenu(ctx)
	return product, nil
}

// UpdateProduct validates the request and replaces the stored product
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req *models.ProductRequest) (*models.Product, error) {
	product, err := s.productFromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateMenu(ctx)
	return product, nil
}

// DeleteProduct removes a product
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateMenu(ctx)
	return nil
}

// ListAdditionals returns every additional
func (s *CatalogService) ListAdditionals(ctx context.Context) ([]models.Additional, error) {
	additionals, err := s.additionals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list additionals: %w", err)
	}
	if additionals == nil {
		additionals = []models.Additional{}
	}
	return additionals, nil
}

// CreateAdditional validates the request and stores a new additional
func (s *CatalogService) CreateAdditional(ctx context.Context, req *models.AdditionalRequest) (*models.Additional, error) {
	additional, err := additionalFromRequest(req)
	if err != nil {
		return nil, err
	}
	additional.ID = uuid.NewString()

	if err := s.additionals.Create(ctx, additional); err != nil {
		return nil, err
	}
	s.invalidateMenu(ctx)
	return additional, nil
}

// UpdateAdditional validates the request and replaces the stored additional
func (s *CatalogService) UpdateAdditional(ctx context.Context, id string, req *models.AdditionalRequest) (*models.Additional, error) {
	additional, err := additionalFromRequest(req)
	if err != nil {
		return nil, err
	}
	additional.ID = id

	if err := s.additionals.Update(ctx, additional); err != nil {
		return nil, err
	}
	s.invalidateMenu(ctx)
	return additional, nil
}

// DeleteAdditional removes an additional
func (s *CatalogService) DeleteAdditional(ctx context.Context, id string) error {
	if err := s.additionals.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateMenu(ctx)
	return nil
}

// ResolveAdditionals loads the selected add-ons, which must all be offered by the product
func (s *CatalogService) ResolveAdditionals(ctx context.Context, product *models.Product, ids []string) ([]models.Additional, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	offered := make(map[string]bool, len(product.AdditionalIDs))
	for _, id := range product.AdditionalIDs {
		offered[id] = true
	}
	seen := make(map[string]bool, len(ids))
	var unique []string
	for _, id := range ids {
		if !offered[id] {
			return nil, fmt.Errorf("%w: %s", ErrAdditionalNotOffered, id)
		}
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	additionals, err := s.additionals.GetByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("failed to load additionals: %w", err)
	}
	if len(additionals) != len(unique) {
		return nil, fmt.Errorf("%w: one or more additionals no longer exist", ErrAdditionalNotOffered)
	}
	return additionals, nil
}

func (s *CatalogService) productFromRequest(ctx context.Context, req *models.ProductRequest) (*models.Product, error) {
	if err := ValidateProductRequest(req); err != nil {
		return nil, err
	}

	if len(req.AdditionalIDs) > 0 {
		found, err := s.additionals.GetByIDs(ctx, req.AdditionalIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load additionals: %w", err)
		}
		known := make(map[string]bool, len(found))
		for _, a := range found {
			known[a.ID] = true
		}
		for _, id := range req.AdditionalIDs {
			if !known[id] {
				return nil, fmt.Errorf("%w: unknown additional %s", ErrInvalidProduct, id)
			}
		}
	}

	product := &models.Product{
		Name:          strings.TrimSpace(req.Name),
		Description:   strings.TrimSpace(req.Description),
		Category:      utils.CapitalizeWords(strings.TrimSpace(req.Category)),
		ImageURL:      strings.TrimSpace(req.ImageURL),
		AdditionalIDs: req.AdditionalIDs,
	}
	if len(req.Variations) > 0 {
		product.Variations = make([]models.Variation, len(req.Variations))
		for i, v := range req.Variations {
			product.Variations[i] = models.Variation{Name: strings.TrimSpace(v.Name), Price: v.Price}
		}
	} else {
		price := *req.Price
		product.Price = &price
	}
	return product, nil
}

// ValidateProductRequest enforces exactly one pricing mode: a positive flat price
// or a non-empty list of uniquely named variations with positive prices
func ValidateProductRequest(req *models.ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}

	hasPrice := req.Price != nil
	hasVariations := len(req.Variations) > 0
	switch {
	case hasPrice && hasVariations:
		return fmt.Errorf("%w: price and variations are mutually exclusive", ErrInvalidProduct)
	case !hasPrice && !hasVariations:
		return fmt.Errorf("%w: either price or variations is required", ErrInvalidProduct)
	case hasPrice && !req.Price.IsPositive():
		return fmt.Errorf("%w: price must be positive", ErrInvalidProduct)
	}

	names := make(map[string]bool, len(req.Variations))
	for _, v := range req.Variations {
		name := strings.TrimSpace(v.Name)
		if name == "" {
			return fmt.Errorf("%w: variation name is required", ErrInvalidProduct)
		}
		if names[name] {
			return fmt.Errorf("%w: duplicate variation %q", ErrInvalidProduct, name)
		}
		names[name] = true
		if !v.Price.IsPositive() {
			return fmt.Errorf("%w: variation %q must have a positive price", ErrInvalidProduct, name)
		}
	}
	return nil
}

func additionalFromRequest(req *models.AdditionalRequest) (*models.Additional, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidAdditional)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidAdditional)
	}
	return &models.Additional{Name: name, Price: req.Price}, nil
}

func (s *CatalogService) invalidateMenu(ctx context.Context) {
	if err := s.cache.Delete(ctx, menuCacheKey); err != nil {
		log.Printf("⚠️  Failed to invalidate menu cache: %v", err)
	}
}
