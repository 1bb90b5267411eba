package service

import (
	"context"
	"errors"
	"fmt"

	"catalog-api/internal/model"
	"catalog-api/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Create stores a new product and returns the row as persisted. Field
// constraints are left to the database.
func (s *productService) Create(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	product := input.Product()
	if err := s.productRepo.Create(ctx, &product); err != nil {
		return nil, s.wrap(err, "failed to create product")
	}

	s.logger.Info().
		Uint("product_id", product.ID).
		Str("name", product.Name).
		Msg("product created")

	return &product, nil
}

// List retrieves products matching the filter.
func (s *productService) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, s.wrap(err, "failed to list products")
	}

	if products == nil {
		products = []model.Product{}
	}

	s.logger.Debug().
		Int("count", len(products)).
		Bool("by_category", filter.Category != nil).
		Bool("by_min_price", filter.MinPrice != nil).
		Bool("by_max_price", filter.MaxPrice != nil).
		Msg("listed products")

	return products, nil
}

// Update applies a partial update.
func (s *productService) Update(ctx context.Context, id uint, patch model.ProductPatch) (*model.Product, error) {
	product, err := s.productRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, s.wrap(err, "failed to update product")
	}

	s.logger.Info().Uint("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes a product and returns it.
func (s *productService) Delete(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, s.wrap(err, "failed to delete product")
	}

	s.logger.Info().Uint("product_id", id).Msg("product deleted")

	return product, nil
}

// wrap passes domain errors through untouched and adds context to the rest.
func (s *productService) wrap(err error, msg string) error {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	s.logger.Error().Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
