// Package infrastructure provides core service initialization for application startup.
// It assembles the common dependencies (lifecycle, logging, metrics) that the
// frontend and its supporting modules require.
package infrastructure

import (
	"log/slog"

	"github.com/JaimeStill/lunch-web/internal/config"
	"github.com/JaimeStill/lunch-web/pkg/lifecycle"
	"github.com/JaimeStill/lunch-web/pkg/logging"
	"github.com/JaimeStill/lunch-web/pkg/metrics"
)

// Infrastructure holds the core systems required by all modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	// Metrics is nil when metrics are disabled.
	Metrics *metrics.Manager
}

// New creates an Infrastructure from the application configuration.
func New(cfg *config.Config) *Infrastructure {
	return NewWithLogger(cfg, logging.New(&cfg.Logging))
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) *Infrastructure {
	infra := &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
	}

	if cfg.Metrics.IsEnabled() {
		infra.Metrics = metrics.NewManager(
			metrics.WithNamespace(cfg.Metrics.Namespace),
			metrics.WithRuntimeCollectors(),
		)
	}

	return infra
}

// Recorder returns the page metrics recorder, a no-op when metrics are disabled.
func (i *Infrastructure) Recorder() metrics.Recorder {
	if i.Metrics == nil {
		return metrics.Nop{}
	}
	return i.Metrics
}
