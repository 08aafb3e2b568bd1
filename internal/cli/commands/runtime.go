// Package commands implements the calibrate subcommands.
package commands

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/calibrate/aggregate"
	"github.com/katalvlaran/calibrate/internal/config"
)

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// WithRuntime returns ctx carrying the loaded config and logger.
func WithRuntime(ctx context.Context, cfg *config.Config, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, configKey{}, cfg)
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	// Return default config if none in context
	return &config.Config{
		Input:   config.DefaultInput,
		Workers: config.DefaultWorkers,
		Prune:   true,
		Output:  config.DefaultOutput,
	}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// aggregateOptions maps config onto aggregate options.
func aggregateOptions(ctx context.Context) []aggregate.Option {
	cfg := GetConfig(ctx)
	return []aggregate.Option{
		aggregate.WithWorkers(cfg.Workers),
		aggregate.WithPruning(cfg.Prune),
		aggregate.WithLogger(GetLogger(ctx)),
	}
}
