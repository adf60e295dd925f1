// Package web provides infrastructure for serving page shells with Go templates.
// Templates are parsed once at startup; each view is a clone of the shared
// layouts with its own content template.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/JaimeStill/lunch-web/pkg/routing"
)

// ViewDef binds a logical page to its template, title, and script bundle.
type ViewDef struct {
	Page     routing.Page
	Template string
	Title    string
	Bundle   string
}

// ViewData is passed to templates during rendering.
type ViewData struct {
	Title    string
	Bundle   string
	BasePath string
	APIBase  string
	History  routing.History
	Page     routing.Page
	Params   routing.Params
}

// TemplateSet holds pre-parsed view templates and the values shared by every render.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
	apiBase  string
	history  routing.History
}

// TemplateConfig describes where templates live and what every render shares.
type TemplateConfig struct {
	LayoutFS   fs.FS
	ViewFS     fs.FS
	LayoutGlob string
	ViewSubdir string
	BasePath   string
	APIBase    string
	History    routing.History
	Funcs      template.FuncMap
}

// NewTemplateSet parses the layouts once and clones them for each view.
// Parsing at startup surfaces template errors before the server accepts traffic.
func NewTemplateSet(cfg TemplateConfig, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.New("").Funcs(cfg.Funcs).ParseFS(cfg.LayoutFS, cfg.LayoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	viewSub, err := fs.Sub(cfg.ViewFS, cfg.ViewSubdir)
	if err != nil {
		return nil, fmt.Errorf("open views: %w", err)
	}

	parsed := make(map[string]*template.Template, len(views))
	for _, v := range views {
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		parsed[v.Template] = t
	}

	return &TemplateSet{
		views:    parsed,
		basePath: cfg.BasePath,
		apiBase:  cfg.APIBase,
		history:  cfg.History,
	}, nil
}

// Data returns ViewData for view with the shared fields filled in.
func (ts *TemplateSet) Data(view ViewDef, params routing.Params) ViewData {
	return ViewData{
		Title:    view.Title,
		Bundle:   view.Bundle,
		BasePath: ts.basePath,
		APIBase:  ts.apiBase,
		History:  ts.history,
		Page:     view.Page,
		Params:   params,
	}
}

// ErrorHandler returns a handler that renders view with the given status code.
// When rendering fails it falls back to a plain-text body with the same status.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.RenderStatus(w, layout, view, nil, status); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// RenderStatus renders view with params and writes it with status.
// Nothing is written when rendering fails, so callers can still send an error response.
func (ts *TemplateSet) RenderStatus(w http.ResponseWriter, layout string, view ViewDef, params routing.Params, status int) error {
	t, ok := ts.views[view.Template]
	if !ok {
		return fmt.Errorf("template not found: %s", view.Template)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layout, ts.Data(view, params)); err != nil {
		return fmt.Errorf("render %s: %w", view.Template, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
