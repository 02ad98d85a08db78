package server

import (
	"strconv"
	"time"

	"github.com/kiltia/showroom"
	"github.com/kiltia/showroom/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// storeMiddleware makes the store reachable from handlers through the
// request's user context.
func storeMiddleware(s *showroom.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.SetUserContext(showroom.WithStore(c.UserContext(), s))
		return c.Next()
	}
}

func prometheusMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start).Seconds()

		code := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			} else {
				code = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		HTTPRequestsTotal.WithLabelValues(strconv.Itoa(code), route).Inc()
		HTTPRequestDurationSeconds.WithLabelValues(route).Observe(latency)
		return err
	}
}

func loggingMiddleware(logger log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Debug(
			"request served",
			log.L().Tag(log.LogTagServer).
				Error(err).
				Add("method", c.Method()).
				Add("path", c.Path()).
				Add("status", c.Response().StatusCode()).
				Add("duration", time.Since(start).String()),
		)
		return err
	}
}
