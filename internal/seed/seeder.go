package seed

import (
	"context"
	"fmt"

	"catalog-api/internal/model"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Summary reports how many rows a seed run inserted.
type Summary struct {
	Categories int
	Products   int
	Customers  int
	Orders     int
}

// Seeder inserts fixtures into the catalogue database.
type Seeder struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewSeeder creates a new seeder.
func NewSeeder(db *gorm.DB, logger zerolog.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger.With().Str("component", "seeder").Logger(),
	}
}

// Seed inserts the fixture in a single transaction. With reset set, existing
// orders, products, customers and categories are removed first. Any failure
// rolls back the whole run.
func (s *Seeder) Seed(ctx context.Context, fx *Fixture, reset bool) (*Summary, error) {
	if err := fx.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}

	summary := &Summary{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if reset {
			if err := clearCatalogue(tx); err != nil {
				return err
			}
			s.logger.Info().Msg("existing catalogue rows removed")
		}

		categoryIDs := make(map[string]uint, len(fx.Categories))
		for _, c := range fx.Categories {
			row := model.Category{Name: c.Name}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert category %q: %w", c.Name, err)
			}
			categoryIDs[c.Name] = row.ID
			summary.Categories++
		}

		for _, p := range fx.Products {
			row := model.Product{
				Name:       p.Name,
				Price:      p.Price,
				Stock:      p.Stock,
				CategoryID: categoryIDs[p.Category],
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert product %q: %w", p.Name, err)
			}
			summary.Products++
		}

		customerIDs := make(map[string]uint, len(fx.Customers))
		for _, c := range fx.Customers {
			row := model.Customer{Name: c.Name, Email: c.Email}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert customer %q: %w", c.Email, err)
			}
			customerIDs[c.Email] = row.ID
			summary.Customers++
		}

		for _, o := range fx.Orders {
			row := model.Order{CustomerID: customerIDs[o.CustomerEmail]}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert order for %q: %w", o.CustomerEmail, err)
			}
			summary.Orders++
		}

		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("seed transaction rolled back")
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	s.logger.Info().
		Int("categories", summary.Categories).
		Int("products", summary.Products).
		Int("customers", summary.Customers).
		Int("orders", summary.Orders).
		Msg("database seeded")

	return summary, nil
}

// clearCatalogue deletes all catalogue rows, children before parents.
func clearCatalogue(tx *gorm.DB) error {
	all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, table := range []interface{}{&model.Order{}, &model.Product{}, &model.Customer{}, &model.Category{}} {
		if err := all.Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", table, err)
		}
	}
	return nil
}
