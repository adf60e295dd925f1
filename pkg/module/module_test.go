package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/lunch-web/pkg/module"
)

func serve(h http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestNew(t *testing.T) {
	m := module.New("/dist", http.NotFoundHandler())

	require.NotNil(t, m)
	assert.Equal(t, "/dist", m.Prefix())
}

func TestNew_InvalidPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"empty", ""},
		{"no leading slash", "dist"},
		{"multi-level", "/dist/js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, func() { module.New(tt.prefix, http.NotFoundHandler()) })
		})
	}
}

func TestModule_Handler(t *testing.T) {
	m := module.New("/dist", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	}))

	h := m.Handler()
	require.NotNil(t, h)
	assert.Equal(t, "hello", serve(h, "/test").Body.String())
}

func TestModule_Use(t *testing.T) {
	m := module.New("/dist", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("handler"))
	}))

	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Middleware", "applied")
			next.ServeHTTP(w, r)
		})
	})

	assert.Equal(t, "applied", serve(m.Handler(), "/test").Header().Get("X-Middleware"))
}

func TestModule_Serve(t *testing.T) {
	m := module.New("/dist", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	}))

	tests := []struct {
		name     string
		path     string
		wantPath string
	}{
		{"root path", "/dist", "/"},
		{"sub path", "/dist/app.js", "/app.js"},
		{"nested path", "/dist/js/app.js", "/js/app.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			m.Serve(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantPath, w.Body.String())
		})
	}
}

func TestModule_MiddlewareOrder(t *testing.T) {
	var order []string

	m := module.New("/dist", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))

	for _, name := range []string{"first", "second"} {
		m.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		})
	}

	serve(m.Handler(), "/test")

	assert.Equal(t, []string{"first", "second", "handler"}, order)
}
