package repository

import (
	"context"

	"catalog-api/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a new product and replaces it with the stored row.
	Create(ctx context.Context, product *model.Product) error

	// List retrieves products matching the filter, each with its category.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// GetByID retrieves a single product with its category.
	GetByID(ctx context.Context, id uint) (*model.Product, error)

	// Update applies a partial update and returns the updated product.
	// Returns model.ErrProductNotFound when no row has the given ID.
	Update(ctx context.Context, id uint, patch model.ProductPatch) (*model.Product, error)

	// Delete removes a product and returns the row as it was before deletion.
	// Returns model.ErrProductNotFound when no row has the given ID.
	Delete(ctx context.Context, id uint) (*model.Product, error)
}
