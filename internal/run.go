package internal

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/kiltia/showroom"
	"github.com/kiltia/showroom/config"
	"github.com/kiltia/showroom/internal/server"
	"github.com/kiltia/showroom/internal/source"
	"github.com/kiltia/showroom/pkg/log"

	"go.uber.org/zap"
)

// NewStore builds the store and, when configured, seeds it from the
// initial import location. A failed seed is logged and the defaults stay.
func NewStore(
	ctx context.Context,
	cfg *config.Config,
	logger log.Logger,
	loader *source.Loader,
) *showroom.Store {
	store := showroom.NewStore(showroom.WithLogger(logger))
	location := cfg.Editor.InitialImport
	if location == "" {
		return store
	}

	text, err := loader.Load(ctx, location)
	if err != nil {
		logger.Warn(
			"initial import could not be read, keeping defaults",
			log.L().Tag(log.LogTagInit).Error(err).Add("location", location),
		)
		return store
	}
	if !store.ImportConfiguration(text) {
		logger.Warn(
			"initial import was rejected, keeping defaults",
			log.L().Tag(log.LogTagInit).Add("location", location),
		)
	}
	return store
}

// RunServer serves the store over HTTP until SIGINT or SIGTERM.
func RunServer(cfg *config.Config, logger log.Logger) error {
	// application will run using this context
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer cancel()

	if cfg.Tracing.Enabled {
		tp, err := server.InitTracer(ctx, cfg.Tracing)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(shutdownCtx); err != nil {
				zap.S().Warnw("shutting down tracer provider", "error", err)
			}
		}()
	}

	loader := source.New(cfg.Source)
	defer loader.Close()

	store := NewStore(ctx, cfg, logger, loader)
	srv := server.New(store, cfg.Server, logger)
	err := srv.Run(ctx)
	zap.S().Info("server is stopped")
	return err
}
