// Package apiurl resolves application paths against the configured API base URL.
//
// Every call site, Go code and page templates alike, goes through Resolve so
// the rule exists in exactly one place.
package apiurl

import (
	"html/template"
	"strings"
)

// Resolve returns the absolute URL for path.
//
// An empty path yields "". A path that already begins with "http" is returned
// unchanged. Anything else is appended to base with no separator handling;
// callers supply the leading "/" they need.
func Resolve(base, path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http") {
		return path
	}
	return base + path
}

// Resolver binds Resolve to a base URL fixed at startup.
type Resolver struct {
	base string
}

// New creates a Resolver for base. An empty base means same-origin requests.
func New(base string) *Resolver {
	return &Resolver{base: base}
}

// Base returns the configured base URL.
func (r *Resolver) Base() string {
	return r.base
}

// URL resolves path against the bound base.
func (r *Resolver) URL(path string) string {
	return Resolve(r.base, path)
}

// FuncMap exposes URL to templates as "api".
func (r *Resolver) FuncMap() template.FuncMap {
	return template.FuncMap{
		"api": r.URL,
	}
}
