package web

import (
	"bytes"
	"io/fs"
	"net/http"
	"strings"
	"time"
)

// StaticRoute describes a handler for a single embedded file.
type StaticRoute struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// DistServer serves files from subdir of fsys under urlPrefix.
func DistServer(fsys fs.FS, subdir, urlPrefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}
	return http.StripPrefix(urlPrefix, http.FileServer(http.FS(sub))).ServeHTTP
}

// PublicFile serves a single file from subdir of fsys.
func PublicFile(fsys fs.FS, subdir, name string) http.HandlerFunc {
	path := strings.TrimSuffix(subdir, "/") + "/" + name
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
	}
}

// PublicFileRoutes returns a GET route at "/<name>" for each named file.
func PublicFileRoutes(fsys fs.FS, subdir string, names ...string) []StaticRoute {
	routes := make([]StaticRoute, 0, len(names))
	for _, name := range names {
		routes = append(routes, StaticRoute{
			Method:  http.MethodGet,
			Pattern: "/" + name,
			Handler: PublicFile(fsys, subdir, name),
		})
	}
	return routes
}
