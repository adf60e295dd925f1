package main

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/lunch-web/internal/config"
	"github.com/JaimeStill/lunch-web/internal/infrastructure"
	"github.com/JaimeStill/lunch-web/pkg/handlers"
	"github.com/JaimeStill/lunch-web/pkg/module"
	"github.com/JaimeStill/lunch-web/web/app"
)

var errNotReady = errors.New("service not ready")

// Modules holds the mounted HTTP surfaces. Metrics is nil when disabled.
type Modules struct {
	App     *app.Handler
	Metrics *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	table, err := cfg.Frontend.Table()
	if err != nil {
		return nil, err
	}

	appHandler, err := app.NewHandler(app.Options{
		Table:    table,
		History:  cfg.Frontend.History,
		Resolver: cfg.Frontend.Resolver(),
		Metrics:  infra.Recorder(),
		Logger:   infra.Logger,
	})
	if err != nil {
		return nil, err
	}

	modules := &Modules{App: appHandler}

	if infra.Metrics != nil {
		modules.Metrics = module.New(cfg.Metrics.Path, infra.Metrics.Handler())
	}

	return modules, nil
}

// Mount registers the metrics module under its prefix and the frontend as the
// catch-all, since page paths start at the root.
func (m *Modules) Mount(router *module.Router) {
	if m.Metrics != nil {
		router.Mount(m.Metrics)
	}
	router.HandleNative("/", m.App.Router().ServeHTTP)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			handlers.RespondError(w, r, infra.Logger, http.StatusServiceUnavailable, errNotReady)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	})

	return router
}
