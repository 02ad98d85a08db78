// Package server exposes a configuration store over HTTP.
package server

import (
	"context"
	"errors"

	"github.com/kiltia/showroom"
	"github.com/kiltia/showroom/config"
	"github.com/kiltia/showroom/pkg/log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	app    *fiber.App
	cfg    config.ServerConfig
	logger log.Logger

	unsubscribe func()
}

func New(store *showroom.Store, cfg config.ServerConfig, logger log.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
	}
	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		// Handlers hand path parameters to the store, which may keep them.
		Immutable:    true,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: s.handleError,
	})

	s.app.Use(recover.New())
	s.app.Use(otelfiber.Middleware())
	s.app.Use(prometheusMiddleware())
	s.app.Use(loggingMiddleware(logger))
	s.app.Use(storeMiddleware(store))

	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	s.app.Get("/healthz", healthHandler)

	api := s.app.Group("/api/v1")
	api.Get("/configuration", getConfiguration)
	api.Patch("/configuration", patchConfiguration)
	api.Get("/configuration/export", exportConfiguration)
	api.Post("/configuration/import", importConfiguration)
	api.Post("/configuration/reset", resetConfiguration)
	api.Put("/configuration/"+currentLayoutSection, putCurrentLayout)
	api.Get("/configuration/:section", getSection)
	api.Patch("/configuration/:section", patchSection)
	api.Post("/product/customization/:option", changeCustomization)
	api.Get("/catalog", getCatalog)

	s.unsubscribe = store.Subscribe(func(ch showroom.Change) {
		StoreWritesTotal.WithLabelValues(string(ch.Operation)).Inc()
	})
	return s
}

// App exposes the underlying fiber application, mostly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then shuts down within the configured
// timeout.
func (s *Server) Run(ctx context.Context) error {
	defer s.unsubscribe()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(
			"starting server",
			log.L().Tag(log.LogTagServer).Add("addr", s.cfg.Addr),
		)
		errCh <- s.app.Listen(s.cfg.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info(
			"shutting down server",
			log.L().Tag(log.LogTagServer).Add("timeout", s.cfg.ShutdownTimeout.String()),
		)
		return s.app.ShutdownWithTimeout(s.cfg.ShutdownTimeout)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		s.logger.Error(
			"request failed",
			log.L().Tag(log.LogTagServer).Error(err).Add("path", c.Path()),
		)
	}
	return c.Status(code).JSON(errorBody{Error: err.Error()})
}
