package apiurl

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Client issues HTTP requests against paths resolved through a Resolver.
type Client struct {
	resolver *Resolver
	http     *http.Client
}

// NewClient wraps hc, or http.DefaultClient when hc is nil.
func NewClient(resolver *Resolver, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{resolver: resolver, http: hc}
}

// NewRequest builds a request whose URL is the resolved form of path.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	target := c.resolver.URL(path)
	if target == "" {
		return nil, ErrNoURL
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, target, err)
	}
	return req, nil
}

// Get issues a GET for the resolved path.
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	req, err := c.NewRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// Do sends req with the wrapped client.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	return resp, nil
}
