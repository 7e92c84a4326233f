package rmux_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rmux"
	"github.com/rohanthewiz/rmux/consts"
)

func TestGroupRoutes(t *testing.T) {
	d := rmux.NewDispatcher()

	api := d.Group("/api/v1")
	api.Get("/users", func(ctx rmux.Context) (any, error) { return "users", nil })
	api.Post("/users", func(ctx rmux.Context) (any, error) { return "created", nil })
	api.Get("/users/:id", func(ctx rmux.Context) (any, error) {
		return "user " + ctx.Param("id"), nil
	})

	response := get(d, "/api/v1/users")
	assert.Equal(t, string(response.Body()), "users")

	response = d.Handle(&rmux.Request{Method: consts.MethodPost, URL: "/api/v1/users"}, nil)
	assert.Equal(t, string(response.Body()), "created")

	response = get(d, "/api/v1/users/8")
	assert.Equal(t, string(response.Body()), "user 8")

	// Group routes do not leak to the bare path.
	response = get(d, "/users")
	assert.Equal(t, response.Status(), 404)
}

func TestGroupMiddlewareScoping(t *testing.T) {
	d := rmux.NewDispatcher()
	var touched []string

	admin := d.Group("/admin", func(ctx rmux.Context) (any, error) {
		touched = append(touched, ctx.Path())
		return nil, ctx.Next()
	})
	admin.Get("/panel", func(ctx rmux.Context) (any, error) { return "panel", nil })
	d.Get("/open", func(ctx rmux.Context) (any, error) { return "open", nil })

	get(d, "/admin/panel")
	get(d, "/open")

	assert.Equal(t, len(touched), 1)
	assert.Equal(t, touched[0], "/admin/panel")
}

func TestGroupNesting(t *testing.T) {
	d := rmux.NewDispatcher()
	order := []string{}

	api := d.Group("/api", func(ctx rmux.Context) (any, error) {
		order = append(order, "api")
		return nil, ctx.Next()
	})
	v2 := api.Group("/v2", func(ctx rmux.Context) (any, error) {
		order = append(order, "v2")
		return nil, ctx.Next()
	})
	v2.Get("/ping", func(ctx rmux.Context) (any, error) {
		order = append(order, "handler")
		return "pong", nil
	})

	response := get(d, "/api/v2/ping")
	assert.Equal(t, string(response.Body()), "pong")
	assert.Equal(t, len(order), 3)
	assert.Equal(t, order[0], "api")
	assert.Equal(t, order[1], "v2")
	assert.Equal(t, order[2], "handler")
}

// path.Join semantics: sloppy prefixes and route paths still come out
// as clean single-slash paths.
func TestGroupPathCleaning(t *testing.T) {
	d := rmux.NewDispatcher()

	g := d.Group("/api/")
	g.Get("items", func(ctx rmux.Context) (any, error) { return "items", nil })
	g.Get("/more/", func(ctx rmux.Context) (any, error) { return "more", nil })

	response := get(d, "/api/items")
	assert.Equal(t, string(response.Body()), "items")

	response = get(d, "/api/more")
	assert.Equal(t, string(response.Body()), "more")
}
