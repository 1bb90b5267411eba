package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"catalog-api/internal/config"
	"catalog-api/internal/database"
	"catalog-api/internal/seed"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().
		Str("file", cfg.Seed.File).
		Bool("reset", cfg.Seed.Reset).
		Bool("s3", cfg.S3.Enabled).
		Msg("starting catalogue seed")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close database")
		}
	}()

	if err := database.Migrate(ctx, db.Gorm); err != nil {
		return err
	}

	loader, source := seed.LoaderFor(ctx, cfg.Seed, cfg.S3, logger)
	fx, err := loader.Load(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to load fixture: %w", err)
	}

	summary, err := seed.NewSeeder(db.Gorm, logger).Seed(ctx, fx, cfg.Seed.Reset)
	if err != nil {
		return err
	}

	fmt.Printf("Seeded %d categories, %d products, %d customers, %d orders\n",
		summary.Categories, summary.Products, summary.Customers, summary.Orders)

	return nil
}
