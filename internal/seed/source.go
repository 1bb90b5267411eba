package seed

import (
	"context"

	"catalog-api/internal/config"

	"github.com/rs/zerolog"
)

// LoaderFor selects where fixtures come from: S3 with local fallback when S3
// is enabled, the configured local file, or the built-in catalogue. It returns
// the loader and the source to pass to it.
func LoaderFor(ctx context.Context, seedCfg config.SeedConfig, s3Cfg config.S3Config, logger zerolog.Logger) (Loader, string) {
	fileLoader := NewFileLoader(logger)

	if s3Cfg.Enabled {
		s3, err := NewS3Loader(ctx, s3Cfg.Bucket, s3Cfg.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			return fileLoader, seedCfg.File
		}
		return NewFallbackLoader(s3, fileLoader, s3Cfg.Prefix, logger), seedCfg.File
	}

	if seedCfg.File != "" {
		return fileLoader, seedCfg.File
	}

	logger.Info().Msg("no seed file configured, using built-in catalogue")
	return NewEmbeddedLoader(), ""
}
