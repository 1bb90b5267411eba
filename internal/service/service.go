package service

import (
	"context"

	"catalog-api/internal/model"
)

// ProductService defines operations for product management.
type ProductService interface {
	// Create stores a new product and returns the persisted row.
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)

	// List retrieves products matching the filter.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// Update applies a partial update. An empty patch returns the row unchanged.
	Update(ctx context.Context, id uint, patch model.ProductPatch) (*model.Product, error)

	// Delete removes a product and returns it.
	Delete(ctx context.Context, id uint) (*model.Product, error)
}
