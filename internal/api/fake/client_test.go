package fake

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Do_RoutesByMethodAndPath(t *testing.T) {
	t.Parallel()

	c := NewClient("http://localhost:8080")
	c.Handle(http.MethodPost, "/users", func(ctx context.Context, req Request) Response {
		return Response{Status: http.StatusCreated, Body: req.Body}
	})
	c.Handle(http.MethodDelete, "/users", func(ctx context.Context, req Request) Response {
		return Response{Status: http.StatusOK}
	})

	resp, err := c.Do(context.Background(), http.MethodPost, "/users", map[string]string{"name": "user1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.JSONEq(t, `{"name":"user1"}`, string(resp.Body))

	resp, err = c.Do(context.Background(), http.MethodDelete, "/users", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
}

func TestClient_Do_UnknownRoute(t *testing.T) {
	t.Parallel()

	c := NewClient("http://localhost:8080")

	resp, err := c.Do(context.Background(), http.MethodGet, "/nope", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.False(t, resp.OK())
}

func TestClient_Do_MarshalFailure(t *testing.T) {
	t.Parallel()

	c := NewClient("http://localhost:8080")
	c.Handle(http.MethodPost, "/users", func(ctx context.Context, req Request) Response {
		return Response{Status: http.StatusOK}
	})

	_, err := c.Do(context.Background(), http.MethodPost, "/users", func() {})
	require.Error(t, err)
}

func TestClient_MiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(tag string) Middleware {
		return func(next HandlerFunc) HandlerFunc {
			return func(ctx context.Context, req Request) Response {
				order = append(order, tag)
				return next(ctx, req)
			}
		}
	}

	c := NewClient("http://localhost:8080")
	c.Use(mw("outer"))
	c.Use(mw("inner"))
	c.Handle(http.MethodGet, "/ping", func(ctx context.Context, req Request) Response {
		order = append(order, "handler")
		return Response{Status: http.StatusOK}
	})

	_, err := c.Do(context.Background(), http.MethodGet, "/ping", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestClient_URL(t *testing.T) {
	t.Parallel()

	c := NewClient("http://localhost:8080")
	assert.Equal(t, "http://localhost:8080/users", c.URL("/users"))
}

func TestResponse_OK(t *testing.T) {
	t.Parallel()

	assert.True(t, Response{Status: http.StatusOK}.OK())
	assert.True(t, Response{Status: http.StatusCreated}.OK())
	assert.False(t, Response{Status: http.StatusConflict}.OK())
	assert.False(t, Response{Status: http.StatusInternalServerError}.OK())
}

func TestResponse_ErrorMessage(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(map[string]string{"error": "user user1 already exists"})
	require.NoError(t, err)

	assert.Equal(t, "user user1 already exists", Response{Status: 409, Body: body}.ErrorMessage())
	assert.Empty(t, Response{Status: 404}.ErrorMessage())
	assert.Empty(t, Response{Status: 500, Body: []byte("not json")}.ErrorMessage())
}
