package module_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/lunch-web/pkg/module"
)

func writeBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(body))
	}
}

func writePath(w http.ResponseWriter, req *http.Request) {
	w.Write([]byte(req.URL.Path))
}

func TestNewRouter(t *testing.T) {
	require.NotNil(t, module.NewRouter())
}

func TestRouter_HandleNative(t *testing.T) {
	r := module.NewRouter()
	r.HandleNative("GET /healthz", writeBody("ok"))

	assert.Equal(t, "ok", serve(r, "/healthz").Body.String())
}

func TestRouter_Mount(t *testing.T) {
	r := module.NewRouter()
	r.Mount(module.New("/dist", writeBody("asset response")))

	assert.Equal(t, "asset response", serve(r, "/dist/test").Body.String())
}

func TestRouter_MultipleModules(t *testing.T) {
	r := module.NewRouter()
	r.Mount(module.New("/dist", writeBody("dist")))
	r.Mount(module.New("/metrics", writeBody("metrics")))

	tests := []struct {
		path string
		want string
	}{
		{"/dist/app.js", "dist"},
		{"/metrics/raw", "metrics"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(r, tt.path).Body.String())
		})
	}
}

func TestRouter_ModulePrefixStripping(t *testing.T) {
	r := module.NewRouter()
	r.Mount(module.New("/dist", http.HandlerFunc(writePath)))

	tests := []struct {
		name     string
		path     string
		wantPath string
	}{
		{"module root", "/dist", "/"},
		{"single segment", "/dist/app.js", "/app.js"},
		{"multiple segments", "/dist/js/app/chunk.js", "/js/app/chunk.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPath, serve(r, tt.path).Body.String())
		})
	}
}

func TestRouter_FallbackToNative(t *testing.T) {
	r := module.NewRouter()
	r.HandleNative("GET /healthz", writeBody("healthy"))
	r.Mount(module.New("/dist", writeBody("dist")))

	assert.Equal(t, "healthy", serve(r, "/healthz").Body.String())
}

func TestRouter_UnmatchedPath(t *testing.T) {
	r := module.NewRouter()
	r.Mount(module.New("/dist", writeBody("dist")))

	assert.Equal(t, http.StatusNotFound, serve(r, "/unknown").Code)
}

func TestRouter_PathNormalization(t *testing.T) {
	r := module.NewRouter()
	r.Mount(module.New("/dist", http.HandlerFunc(writePath)))

	tests := []struct {
		name       string
		inputPath  string
		wantPath   string
		wantStatus int
	}{
		{"strips trailing slash", "/dist/app.js/", "/app.js", http.StatusOK},
		{"no change for path without slash", "/dist/app.js", "/app.js", http.StatusOK},
		{"root path unchanged", "/", "/", http.StatusNotFound},
		{"module root with slash normalized", "/dist/", "/", http.StatusOK},
		{"deep path trailing slash", "/dist/js/app/chunk.js/", "/js/app/chunk.js", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, tt.inputPath)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantPath, w.Body.String())
			}
		})
	}
}

func TestRouter_PathNormalizationKeepsEscapedPath(t *testing.T) {
	r := module.NewRouter()
	r.HandleNative("/", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(req.URL.EscapedPath()))
	})

	assert.Equal(t, "/group/a%2Fstats", serve(r, "/group/a%2Fstats/").Body.String())
}
