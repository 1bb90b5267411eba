package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog-api/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the ProductRepository interface using gorm.
type productRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewProductRepository creates a new gorm-backed product repository.
func NewProductRepository(db *gorm.DB, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		db:     db,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a new product and replaces it with the stored row, category
// included. Numeric columns may round the price on the way in.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(product).Error; err != nil {
			return err
		}

		var stored model.Product
		if err := tx.Preload("Category").First(&stored, product.ID).Error; err != nil {
			return err
		}
		*product = stored
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			r.logger.Warn().
				Uint("category_id", product.CategoryID).
				Msg("product references a missing category")
			return model.ErrCategoryNotFound
		}
		r.logger.Error().Err(err).Str("name", product.Name).Msg("failed to insert product")
		return fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().Uint("product_id", product.ID).Msg("product created")

	return nil
}

// List retrieves products matching the filter. Unset filter fields are not applied.
func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Preload("Category")

	if filter.Category != nil {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.name = ?", *filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filter.MaxPrice)
	}

	products := make([]model.Product, 0)
	if err := query.Order("products.id").Find(&products).Error; err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product with its category.
func (r *productRepository) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&product, id).Error
	if err != nil {
		return nil, r.translate(err, id, "failed to query product")
	}
	return &product, nil
}

// Update applies a partial update inside a transaction and returns the
// updated product. An empty patch only reads the row back.
func (r *productRepository) Update(ctx context.Context, id uint, patch model.ProductPatch) (*model.Product, error) {
	var updated model.Product

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Product
		if err := tx.Select("id").First(&existing, id).Error; err != nil {
			return err
		}

		if !patch.IsEmpty() {
			if err := tx.Model(&existing).Updates(patch.Columns()).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Category").First(&updated, id).Error
	})
	if err != nil {
		return nil, r.translate(err, id, "failed to update product")
	}

	r.logger.Debug().Uint("product_id", id).Msg("product updated")

	return &updated, nil
}

// Delete removes a product inside a transaction and returns the deleted row.
func (r *productRepository) Delete(ctx context.Context, id uint) (*model.Product, error) {
	var deleted model.Product

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Category").First(&deleted, id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, id).Error
	})
	if err != nil {
		return nil, r.translate(err, id, "failed to delete product")
	}

	r.logger.Debug().Uint("product_id", id).Msg("product deleted")

	return &deleted, nil
}

// translate maps ORM errors onto domain errors and wraps everything else.
func (r *productRepository) translate(err error, id uint, msg string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		r.logger.Debug().Uint("product_id", id).Msg("product not found")
		return model.ErrProductNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		r.logger.Warn().Uint("product_id", id).Msg("product references a missing category")
		return model.ErrCategoryNotFound
	default:
		r.logger.Error().Err(err).Uint("product_id", id).Msg(msg)
		return fmt.Errorf("%s: %w", msg, err)
	}
}
