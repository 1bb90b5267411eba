package database

import (
	"context"
	"fmt"

	"catalog-api/internal/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the catalogue schema. Parents precede children
// so foreign keys resolve.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Customer{},
		&model.Order{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
