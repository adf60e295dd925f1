package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/lunch-web/pkg/apiurl"
	"github.com/JaimeStill/lunch-web/pkg/routing"
)

const (
	// EnvAPIBaseURL overrides the base URL prepended to API paths.
	// Setting it to an empty string forces same-origin requests.
	EnvAPIBaseURL = "API_BASE_URL"

	// EnvFrontendHistory overrides the history mode (hash or web).
	EnvFrontendHistory = "FRONTEND_HISTORY"

	// EnvFrontendRoutes overrides the route table variant (full or minimal).
	EnvFrontendRoutes = "FRONTEND_ROUTES"
)

// FrontendConfig controls the page router and API URL resolution.
type FrontendConfig struct {
	APIBaseURL string          `toml:"api_base_url"`
	History    routing.History `toml:"history"`
	Routes     string          `toml:"routes"`
}

// Table returns the configured route table variant.
func (c *FrontendConfig) Table() (*routing.Table, error) {
	return routing.Variant(c.Routes)
}

// Resolver returns an API URL resolver bound to the configured base.
func (c *FrontendConfig) Resolver() *apiurl.Resolver {
	return apiurl.New(c.APIBaseURL)
}

// Finalize applies defaults, loads environment overrides, and validates the frontend configuration.
func (c *FrontendConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *FrontendConfig) Merge(overlay *FrontendConfig) {
	if overlay.APIBaseURL != "" {
		c.APIBaseURL = overlay.APIBaseURL
	}
	if overlay.History != "" {
		c.History = overlay.History
	}
	if overlay.Routes != "" {
		c.Routes = overlay.Routes
	}
}

func (c *FrontendConfig) loadDefaults() {
	if c.History == "" {
		c.History = routing.HistoryHash
	}
	if c.Routes == "" {
		c.Routes = routing.VariantFull
	}
}

func (c *FrontendConfig) loadEnv() {
	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok {
		c.APIBaseURL = v
	}
	if v := os.Getenv(EnvFrontendHistory); v != "" {
		c.History = routing.History(v)
	}
	if v := os.Getenv(EnvFrontendRoutes); v != "" {
		c.Routes = v
	}
}

func (c *FrontendConfig) validate() error {
	if err := c.History.Validate(); err != nil {
		return err
	}
	if _, err := routing.Variant(c.Routes); err != nil {
		return fmt.Errorf("routes: %w", err)
	}
	return nil
}
