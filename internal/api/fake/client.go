// Package fake implements an in-process stand-in for an HTTP client and
// server pair. Requests carry a method, a path and a JSON body; dispatch is
// a plain function call through a route table, no sockets involved.
package fake

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Request is a fake HTTP request.
type Request struct {
	Method string
	Path   string
	Body   []byte
}

// Response is a fake HTTP response.
type Response struct {
	Status int
	Body   []byte
}

// OK reports whether the response status is in the 2xx range.
func (r Response) OK() bool {
	return r.Status >= http.StatusOK && r.Status < http.StatusMultipleChoices
}

// ErrorMessage extracts the message from a failure response body, or ""
// when the body carries none.
func (r Response) ErrorMessage() string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return ""
	}

	return body.Error
}

// HandlerFunc handles a single fake request.
type HandlerFunc func(ctx context.Context, req Request) Response

// Middleware wraps a handler.
type Middleware func(next HandlerFunc) HandlerFunc

// Client routes fake requests to registered handlers. Middleware applies to
// every route at dispatch time, outermost first.
type Client struct {
	baseURL     string
	routes      map[string]HandlerFunc
	middlewares []Middleware
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		routes:  make(map[string]HandlerFunc),
	}
}

// Use appends a middleware to the chain.
func (c *Client) Use(mw Middleware) {
	c.middlewares = append(c.middlewares, mw)
}

// Handle registers a handler for the method and path pair.
func (c *Client) Handle(method, path string, h HandlerFunc) {
	c.routes[routeKey(method, path)] = h
}

// URL returns the full URL a real client would have requested. Used for
// logging only.
func (c *Client) URL(path string) string {
	return c.baseURL + path
}

// Do marshals body to JSON and dispatches the request to the matching
// handler. An unknown route yields a 404 response, not an error; the error
// return covers request construction only.
func (c *Client) Do(ctx context.Context, method, path string, body any) (Response, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return Response{}, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	h, ok := c.routes[routeKey(method, path)]
	if !ok {
		return Response{Status: http.StatusNotFound}, nil
	}

	for i := len(c.middlewares) - 1; i >= 0; i-- {
		h = c.middlewares[i](h)
	}

	return h(ctx, Request{Method: method, Path: path, Body: payload}), nil
}

func routeKey(method, path string) string {
	return method + " " + path
}
