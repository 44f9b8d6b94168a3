package repository

import (
	"context"
	"errors"

	"pizzaria-storefront/models"
)

// ErrNotFound is returned when the requested row does not exist
var ErrNotFound = errors.New("not found")

// ProductRepositoryInterface defines the contract for product repository operations
type ProductRepositoryInterface interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

// AdditionalRepositoryInterface defines the contract for additional repository operations
type AdditionalRepositoryInterface interface {
	List(ctx context.Context) ([]models.Additional, error)
	GetByID(ctx context.Context, id string) (*models.Additional, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Additional, error)
	Create(ctx context.Context, additional *models.Additional) error
	Update(ctx context.Context, additional *models.Additional) error
	Delete(ctx context.Context, id string) error
}
