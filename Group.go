package rmux

import (
	"path"

	"github.com/rohanthewiz/rmux/consts"
)

// Group registers routes under a common URL prefix (e.g. /api/v1).
// Middleware attached to a group is registered against the prefix pattern
// (prefix + "/*"), so it covers every request under the prefix - routes
// added later and nested groups included - consistent with the
// dispatcher's pattern-matched pipeline.
// Groups can be nested to create hierarchical route structures.
type Group struct {
	prefix     string
	dispatcher *Dispatcher
}

// Group creates a route group at the given prefix,
// optionally attaching middleware scoped to it.
func (d *Dispatcher) Group(prefix string, handlers ...Handler) *Group {
	g := &Group{prefix: prefix, dispatcher: d}
	if len(handlers) > 0 {
		g.Use(handlers...)
	}
	return g
}

// Group creates a sub-group with an additional prefix and optional middleware.
// Example: api.Group("/users", authCheck) scopes authCheck under /api/users.
func (g *Group) Group(prefix string, handlers ...Handler) *Group {
	return g.dispatcher.Group(path.Join(g.prefix, prefix), handlers...)
}

// Use attaches middleware to every request path under the group's prefix.
func (g *Group) Use(handlers ...Handler) {
	g.dispatcher.UseFor(path.Join(g.prefix, consts.PatternAll), handlers...)
}

// Get registers a GET route under the group prefix.
func (g *Group) Get(routePath string, handler Handler) {
	g.dispatcher.Get(g.join(routePath), handler)
}

// Post registers a POST route under the group prefix.
func (g *Group) Post(routePath string, handler Handler) {
	g.dispatcher.Post(g.join(routePath), handler)
}

// Put registers a PUT route under the group prefix.
func (g *Group) Put(routePath string, handler Handler) {
	g.dispatcher.Put(g.join(routePath), handler)
}

// Delete registers a DELETE route under the group prefix.
func (g *Group) Delete(routePath string, handler Handler) {
	g.dispatcher.Delete(g.join(routePath), handler)
}

// Patch registers a PATCH route under the group prefix.
func (g *Group) Patch(routePath string, handler Handler) {
	g.dispatcher.Patch(g.join(routePath), handler)
}

// Options registers an OPTIONS route under the group prefix.
func (g *Group) Options(routePath string, handler Handler) {
	g.dispatcher.Options(g.join(routePath), handler)
}

// join combines the group prefix and a route path.
// path.Join also cleans the result, so group routes always come out with
// single slashes and no trailing separator.
func (g *Group) join(routePath string) string {
	return path.Join(g.prefix, routePath)
}
