package seed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Loader defines the interface for loading seed fixtures.
type Loader interface {
	// Load reads the fixture identified by source. Sources ending in ".gz"
	// are treated as gzip-compressed JSON.
	Load(ctx context.Context, source string) (*Fixture, error)
}

// fileLoader implements Loader for fixtures on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based fixture loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "fixture-loader").Logger(),
	}
}

// Load reads a fixture file from disk.
func (l *fileLoader) Load(ctx context.Context, filePath string) (*Fixture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.logger.Info().Str("file", filePath).Msg("loading fixture file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open fixture file")
		return nil, fmt.Errorf("failed to open fixture file %s: %w", filePath, err)
	}
	defer file.Close()

	fx, err := Decode(file, isGzip(filePath))
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read fixture file")
		return nil, fmt.Errorf("fixture file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("categories", len(fx.Categories)).
		Int("products", len(fx.Products)).
		Msg("fixture file loaded successfully")

	return fx, nil
}

// embeddedLoader always returns the built-in catalogue.
type embeddedLoader struct{}

// NewEmbeddedLoader creates a loader that ignores its source and returns
// the built-in sample catalogue.
func NewEmbeddedLoader() Loader {
	return embeddedLoader{}
}

func (embeddedLoader) Load(ctx context.Context, _ string) (*Fixture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return DefaultFixture()
}

func isGzip(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".gz")
}
