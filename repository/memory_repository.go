package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"pizzaria-storefront/models"
)

// MemoryProductRepository keeps products in memory. Used when no database is configured.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]models.Product
	order    []string
}

// NewMemoryProductRepository creates an empty MemoryProductRepository
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{products: make(map[string]models.Product)}
}

// Ensure MemoryProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*MemoryProductRepository)(nil)

// List returns products ordered by category then name
func (r *MemoryProductRepository) List(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(r.order))
	for _, id := range r.order {
		products = append(products, cloneProduct(r.products[id]))
	}
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].Category != products[j].Category {
			return products[i].Category < products[j].Category
		}
		return products[i].Name < products[j].Name
	})
	return products, nil
}

func (r *MemoryProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	clone := cloneProduct(p)
	return &clone, nil
}

func (r *MemoryProductRepository) Create(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; exists {
		return fmt.Errorf("product %s already exists", product.ID)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products[product.ID] = cloneProduct(*product)
	r.order = append(r.order, product.ID)
	return nil
}

func (r *MemoryProductRepository) Update(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product %s: %w", product.ID, ErrNotFound)
	}
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	r.products[product.ID] = cloneProduct(*product)
	return nil
}

func (r *MemoryProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	delete(r.products, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// removeAdditional drops links to a deleted additional, mirroring ON DELETE CASCADE
func (r *MemoryProductRepository) removeAdditional(additionalID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, p := range r.products {
		kept := p.AdditionalIDs[:0:0]
		for _, a := range p.AdditionalIDs {
			if a != additionalID {
				kept = append(kept, a)
			}
		}
		p.AdditionalIDs = kept
		r.products[id] = p
	}
}

func cloneProduct(p models.Product) models.Product {
	if p.Price != nil {
		price := *p.Price
		p.Price = &price
	}
	p.Variations = append([]models.Variation(nil), p.Variations...)
	p.AdditionalIDs = append([]string(nil), p.AdditionalIDs...)
	return p
}

// MemoryAdditionalRepository keeps additionals in memory. Used when no database is configured.
type MemoryAdditionalRepository struct {
	mu          sync.RWMutex
	additionals map[string]models.Additional
	products    *MemoryProductRepository
}

// NewMemoryAdditionalRepository creates an empty MemoryAdditionalRepository. Deleting an
// additional also unlinks it from products when products is not nil.
func NewMemoryAdditionalRepository(products *MemoryProductRepository) *MemoryAdditionalRepository {
	return &MemoryAdditionalRepository{additionals: make(map[string]models.Additional), products: products}
}

// Ensure MemoryAdditionalRepository implements AdditionalRepositoryInterface
var _ AdditionalRepositoryInterface = (*MemoryAdditionalRepository)(nil)

// List returns additionals ordered by name
func (r *MemoryAdditionalRepository) List(ctx context.Context) ([]models.Additional, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	additionals := make([]models.Additional, 0, len(r.additionals))
	for _, a := range r.additionals {
		additionals = append(additionals, a)
	}
	sort.Slice(additionals, func(i, j int) bool { return additionals[i].Name < additionals[j].Name })
	return additionals, nil
}

func (r *MemoryAdditionalRepository) GetByID(ctx context.Context, id string) (*models.Additional, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.additionals[id]
	if !ok {
		return nil, fmt.Errorf("additional %s: %w", id, ErrNotFound)
	}
	return &a, nil
}

// GetByIDs returns the known additionals among ids, ordered by name
func (r *MemoryAdditionalRepository) GetByIDs(ctx context.Context, ids []string) ([]models.Additional, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var additionals []models.Additional
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if a, ok := r.additionals[id]; ok && !seen[id] {
			seen[id] = true
			additionals = append(additionals, a)
		}
	}
	sort.Slice(additionals, func(i, j int) bool { return additionals[i].Name < additionals[j].Name })
	return additionals, nil
}

func (r *MemoryAdditionalRepository) Create(ctx context.Context, additional *models.Additional) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	additional.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	r.additionals[additional.ID] = *additional
	return nil
}

func (r *MemoryAdditionalRepository) Update(ctx context.Context, additional *models.Additional) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.additionals[additional.ID]
	if !ok {
		return fmt.Errorf("additional %s: %w", additional.ID, ErrNotFound)
	}
	additional.CreatedAt = existing.CreatedAt
	r.additionals[additional.ID] = *additional
	return nil
}

func (r *MemoryAdditionalRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	if _, ok := r.additionals[id]; !ok {
		r.mu.Unlock()
		return fmt.Errorf("additional %s: %w", id, ErrNotFound)
	}
	delete(r.additionals, id)
	r.mu.Unlock()

	if r.products != nil {
		r.products.removeAdditional(id)
	}
	return nil
}
