package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/lunch-web/pkg/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestSystem_Apply_Order(t *testing.T) {
	mw := middleware.New()
	var order []string

	for _, name := range []string{"first", "second"} {
		mw.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+"-before")
				next.ServeHTTP(w, r)
				order = append(order, name+"-after")
			})
		})
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	mw.Apply(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first-before", "second-before", "handler", "second-after", "first-after"}, order)
}

func TestLogger_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	wrapped := middleware.RequestID()(middleware.Logger(logger)(handler))

	req := httptest.NewRequest(http.MethodGet, "/group/42/stats", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{"msg=request", "method=GET", "uri=/group/42/stats", "status=404", "duration=", "request_id=req-123"} {
		assert.Contains(t, out, want)
	}
}

func TestLogger_LogsAfterHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Zero(t, buf.Len(), "log was written before handler completed")
		w.WriteHeader(http.StatusOK)
	})

	middleware.Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotZero(t, buf.Len(), "log was not written after handler completed")
}

func TestStatusRecorder(t *testing.T) {
	w := httptest.NewRecorder()
	rec := middleware.NewStatusRecorder(w)
	assert.Equal(t, http.StatusOK, rec.Status)

	rec.WriteHeader(http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, rec.Status)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Same(t, w, rec.Unwrap())
}

func TestRequestID_Generates(t *testing.T) {
	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetRequestID(r.Context())
	})

	w := httptest.NewRecorder()
	middleware.RequestID()(handler).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen, "no request id in context")
	assert.Equal(t, seen, w.Header().Get(middleware.RequestIDHeader))
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "upstream-id")

	middleware.RequestID()(okHandler()).ServeHTTP(w, req)

	assert.Equal(t, "upstream-id", w.Header().Get(middleware.RequestIDHeader))
}

func TestTrimSlash(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{"root preserved", "/", http.StatusOK, ""},
		{"no slash", "/group/42", http.StatusOK, ""},
		{"trailing slash", "/group/42/", http.StatusMovedPermanently, "/group/42"},
		{"query kept", "/instructions/?lang=en", http.StatusMovedPermanently, "/instructions?lang=en"},
		{"leading slashes collapsed", "//evil.example/", http.StatusMovedPermanently, "/evil.example"},
		{"escaped separator kept", "/group/a%2Fstats/", http.StatusMovedPermanently, "/group/a%2Fstats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			middleware.TrimSlash()(okHandler()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
		})
	}
}
