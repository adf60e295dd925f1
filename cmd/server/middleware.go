package main

import (
	"github.com/JaimeStill/lunch-web/internal/config"
	"github.com/JaimeStill/lunch-web/internal/infrastructure"
	"github.com/JaimeStill/lunch-web/pkg/middleware"
)

// buildMiddleware creates the server-wide middleware stack: slash
// normalization, request ids, logging, CORS, and request metrics.
func buildMiddleware(infra *infrastructure.Infrastructure, cfg *config.Config) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.TrimSlash())
	middlewareSys.Use(middleware.RequestID())
	middlewareSys.Use(middleware.Logger(infra.Logger))
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	if infra.Metrics != nil {
		middlewareSys.Use(infra.Metrics.Instrument())
	}
	return middlewareSys
}
