package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/JaimeStill/lunch-web/internal/config"
	"github.com/JaimeStill/lunch-web/internal/infrastructure"
	"github.com/JaimeStill/lunch-web/internal/server"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	handler http.Handler
	http    server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	infra := infrastructure.NewWithLogger(cfg, logger)

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	handler := buildMiddleware(infra, cfg).Apply(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"history", cfg.Frontend.History,
		"routes", cfg.Frontend.Routes,
		"api_base_url", cfg.Frontend.APIBaseURL,
	)

	return &Server{
		infra:   infra,
		modules: modules,
		handler: handler,
		http:    server.New(&cfg.Server, handler, infra.Logger, cfg.ShutdownTimeoutDuration()),
	}, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins all subsystems and returns when they are ready.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
