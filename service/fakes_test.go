package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"pizzaria-storefront/models"
	"pizzaria-storefront/repository"
)

type fakeProductRepo struct {
	products map[string]models.Product
	order    []string
	listed   int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]models.Product)}
}

func (r *fakeProductRepo) List(ctx context.Context) ([]models.Product, error) {
	r.listed++
	var out []models.Product
	for _, id := range r.order {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
	}
	return &p, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	r.products[product.ID] = *product
	r.order = append(r.order, product.ID)
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *models.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product %s: %w", product.ID, repository.ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

type fakeAdditionalRepo struct {
	additionals map[string]models.Additional
}

func newFakeAdditionalRepo(additionals ...models.Additional) *fakeAdditionalRepo {
	r := &fakeAdditionalRepo{additionals: make(map[string]models.Additional)}
	for _, a := range additionals {
		r.additionals[a.ID] = a
	}
	return r
}

func (r *fakeAdditionalRepo) List(ctx context.Context) ([]models.Additional, error) {
	var out []models.Additional
	for _, a := range r.additionals {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeAdditionalRepo) GetByID(ctx context.Context, id string) (*models.Additional, error) {
	a, ok := r.additionals[id]
	if !ok {
		return nil, fmt.Errorf("additional %s: %w", id, repository.ErrNotFound)
	}
	return &a, nil
}

func (r *fakeAdditionalRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Additional, error) {
	var out []models.Additional
	for _, id := range ids {
		if a, ok := r.additionals[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAdditionalRepo) Create(ctx context.Context, additional *models.Additional) error {
	r.additionals[additional.ID] = *additional
	return nil
}

func (r *fakeAdditionalRepo) Update(ctx context.Context, additional *models.Additional) error {
	if _, ok := r.additionals[additional.ID]; !ok {
		return fmt.Errorf("additional %s: %w", additional.ID, repository.ErrNotFound)
	}
	r.additionals[additional.ID] = *additional
	return nil
}

func (r *fakeAdditionalRepo) Delete(ctx context.Context, id string) error {
	delete(r.additionals, id)
	return nil
}

// memoryCache is a map-backed cache.Cache
type memoryCache struct {
	values map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = data
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

func (c *memoryCache) Close() error { return nil }
