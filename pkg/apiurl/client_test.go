package apiurl_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/lunch-web/pkg/apiurl"
)

func TestClient_GetResolvesAgainstBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	}))
	defer srv.Close()

	c := apiurl.NewClient(apiurl.New(srv.URL), srv.Client())

	resp, err := c.Get(context.Background(), "/api/groups/42")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/api/groups/42", string(body))
}

func TestClient_AbsolutePathBypassesBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	c := apiurl.NewClient(apiurl.New("http://unreachable.invalid"), srv.Client())

	resp, err := c.Get(context.Background(), srv.URL+"/anything")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
}

func TestClient_EmptyPath(t *testing.T) {
	c := apiurl.NewClient(apiurl.New("http://api"), nil)

	_, err := c.Get(context.Background(), "")
	assert.ErrorIs(t, err, apiurl.ErrNoURL)
}

func TestClient_NewRequestSetsMethod(t *testing.T) {
	c := apiurl.NewClient(apiurl.New("http://api.example.com"), nil)

	req, err := c.NewRequest(context.Background(), http.MethodPost, "/api/groups", nil)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "http://api.example.com/api/groups", req.URL.String())
}
