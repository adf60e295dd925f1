// Package app serves the group order-splitting frontend: page shells selected
// by the route table, embedded assets, and the client bootstrap document.
package app

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"slices"

	"github.com/JaimeStill/lunch-web/pkg/apiurl"
	"github.com/JaimeStill/lunch-web/pkg/handlers"
	"github.com/JaimeStill/lunch-web/pkg/metrics"
	"github.com/JaimeStill/lunch-web/pkg/routing"
	"github.com/JaimeStill/lunch-web/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

// FragmentHeader marks client-side navigation requests in hash history mode.
// Those requests receive the rendered view instead of a redirect to the fragment URL.
const FragmentHeader = "X-Lunch-Fragment"

const layout = "app.html"

var publicFiles = []string{
	"favicon.svg",
	"robots.txt",
}

var views = []web.ViewDef{
	{Page: routing.Home, Template: "home.html", Title: "Home", Bundle: "app"},
	{Page: routing.Order, Template: "order.html", Title: "Order", Bundle: "app"},
	{Page: routing.Stats, Template: "stats.html", Title: "Group Stats", Bundle: "app"},
	{Page: routing.Settlement, Template: "settlement.html", Title: "Settlement", Bundle: "app"},
	{Page: routing.Instructions, Template: "instructions.html", Title: "Instructions", Bundle: "app"},
}

var notFoundView = web.ViewDef{Template: "404.html", Title: "Not Found", Bundle: "app"}

// Options carries the dependencies the frontend needs. Table and Resolver are required.
type Options struct {
	Table    *routing.Table
	History  routing.History
	Resolver *apiurl.Resolver
	Metrics  metrics.Recorder
	Logger   *slog.Logger
}

// Handler renders page shells for the configured route table.
type Handler struct {
	table     *routing.Table
	history   routing.History
	resolver  *apiurl.Resolver
	views     map[routing.Page]web.ViewDef
	templates *web.TemplateSet
	notFound  http.HandlerFunc
	metrics   metrics.Recorder
	logger    *slog.Logger
}

// NewHandler parses every view template and checks that each routed page has a view.
func NewHandler(opts Options) (*Handler, error) {
	if opts.Table == nil || opts.Resolver == nil {
		return nil, fmt.Errorf("app: table and resolver are required")
	}
	if opts.History == "" {
		opts.History = routing.HistoryHash
	}
	if err := opts.History.Validate(); err != nil {
		return nil, err
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	byPage := make(map[routing.Page]web.ViewDef, len(views))
	for _, v := range views {
		byPage[v.Page] = v
	}
	for _, r := range opts.Table.Routes() {
		if _, ok := byPage[r.Page]; !ok {
			return nil, fmt.Errorf("app: no view for page %s", r.Page)
		}
	}

	h := &Handler{
		table:    opts.Table,
		history:  opts.History,
		resolver: opts.Resolver,
		views:    byPage,
		metrics:  opts.Metrics,
		logger:   opts.Logger.With("module", "app"),
	}

	ts, err := web.NewTemplateSet(web.TemplateConfig{
		LayoutFS:   layoutFS,
		ViewFS:     viewFS,
		LayoutGlob: "server/layouts/*.html",
		ViewSubdir: "server/views",
		BasePath:   "/",
		APIBase:    opts.Resolver.Base(),
		History:    opts.History,
		Funcs:      h.funcs(),
	}, append(slices.Clone(views), notFoundView))
	if err != nil {
		return nil, err
	}
	h.templates = ts
	h.notFound = ts.ErrorHandler(layout, notFoundView, http.StatusNotFound)

	return h, nil
}

// Router returns the frontend's HTTP handler. Static assets and the bootstrap
// document are served by pattern; every other request goes through the route table.
func (h *Handler) Router() http.Handler {
	r := web.NewRouter()
	r.SetFallback(h.serveView)

	r.HandleFunc("GET /dist/", web.DistServer(distFS, "dist", "/dist/"))
	r.HandleFunc("GET /routes.json", h.serveRoutes)

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}

func (h *Handler) serveView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	m, ok := h.table.Match(r.URL.EscapedPath())
	if !ok {
		h.metrics.RouteMiss()
		h.logger.Debug("no route", "path", r.URL.Path)
		h.notFound(w, r)
		return
	}

	if h.history == routing.HistoryHash && r.URL.Path != "/" && r.Header.Get(FragmentHeader) == "" {
		target := h.history.Link(r.URL.EscapedPath())
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusFound)
		return
	}

	view := h.views[m.Route.Page]
	if h.render(w, view, m.Params, http.StatusOK) {
		h.metrics.PageView(m.Route.Page.String())
		h.logger.Debug("page rendered", "page", m.Route.Page, "params", m.Params)
	}
}

func (h *Handler) render(w http.ResponseWriter, view web.ViewDef, params routing.Params, status int) bool {
	if err := h.templates.RenderStatus(w, layout, view, params, status); err != nil {
		h.logger.Error("render failed", "template", view.Template, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return false
	}
	return true
}

type routesDocument struct {
	History routing.History `json:"history"`
	APIBase string          `json:"apiBase"`
	Routes  []routing.Route `json:"routes"`
}

func (h *Handler) serveRoutes(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, routesDocument{
		History: h.history,
		APIBase: h.resolver.Base(),
		Routes:  h.table.Routes(),
	})
}

func (h *Handler) funcs() template.FuncMap {
	funcs := h.resolver.FuncMap()
	funcs["href"] = h.href
	funcs["hasPage"] = h.hasPage
	return funcs
}

// href builds a history-aware link to page from alternating name/value pairs.
func (h *Handler) href(page string, pairs ...string) (string, error) {
	if len(pairs)%2 != 0 {
		return "", fmt.Errorf("href %s: odd number of parameter arguments", page)
	}

	params := make(routing.Params, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		params[pairs[i]] = pairs[i+1]
	}

	path, err := h.table.Href(routing.Page(page), params)
	if err != nil {
		return "", err
	}
	return h.history.Link(path), nil
}

func (h *Handler) hasPage(page string) bool {
	return h.table.Has(routing.Page(page))
}
