package rmux

import (
	"strings"

	"github.com/rohanthewiz/rmux/consts"
	"github.com/rohanthewiz/rmux/core/rtr"
	"go.uber.org/zap"
)

// Dispatcher routes requests to handlers. Fully static paths sit in a flat
// exact-match table answered by one probe; paths with parameter or wildcard
// segments live in the route tree. Each request flows through the
// middleware matched to its path and into the resolved handler, and every
// dispatch yields a response - failures are contained, never raised.
//
// Register everything before the first Handle call: the route structures
// are append-only and shared without locks between concurrent dispatches.
type Dispatcher struct {
	staticRoutes *rtr.StaticTable[Handler]
	tree         *rtr.Tree[Handler]
	middleware   []middlewareEntry
	pool         *uriPool
	logger       *zap.Logger
	verbose      bool
}

// DispatcherOptions configures a new Dispatcher.
type DispatcherOptions struct {
	// PoolSize sets how many URI parse buffers are pre-allocated.
	// Zero means DefaultPoolSize.
	PoolSize int
	// Logger receives dispatcher logs. Nil means no logging.
	Logger *zap.Logger
	// Verbose enables registration logging.
	Verbose bool
}

// NewDispatcher creates a dispatcher ready for route registration.
func NewDispatcher(options ...DispatcherOptions) *Dispatcher {
	opts := DispatcherOptions{}
	if len(options) > 0 {
		opts = options[0]
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Dispatcher{
		staticRoutes: rtr.NewStaticTable[Handler](),
		tree:         &rtr.Tree[Handler]{},
		pool:         newURIPool(opts.PoolSize),
		logger:       opts.Logger,
		verbose:      opts.Verbose,
	}
}

// Get registers your function to be called when the given GET path has been requested.
func (d *Dispatcher) Get(path string, handler Handler) {
	d.register(rtr.MethodGet, path, handler)
}

// Post registers your function to be called when the given POST path has been requested.
func (d *Dispatcher) Post(path string, handler Handler) {
	d.register(rtr.MethodPost, path, handler)
}

// Put registers your function to be called when the given PUT path has been requested.
func (d *Dispatcher) Put(path string, handler Handler) {
	d.register(rtr.MethodPut, path, handler)
}

// Delete registers your function to be called when the given DELETE path has been requested.
func (d *Dispatcher) Delete(path string, handler Handler) {
	d.register(rtr.MethodDelete, path, handler)
}

// Patch registers your function to be called when the given PATCH path has been requested.
func (d *Dispatcher) Patch(path string, handler Handler) {
	d.register(rtr.MethodPatch, path, handler)
}

// Options registers your function to be called when the given OPTIONS path has been requested.
func (d *Dispatcher) Options(path string, handler Handler) {
	d.register(rtr.MethodOptions, path, handler)
}

// AddMethod registers a handler for a method given as a string, for cases
// where the method is not fixed at compile time. Strings outside the six
// routable methods are logged and dropped.
func (d *Dispatcher) AddMethod(method string, path string, handler Handler) {
	m, ok := rtr.ParseMethod(method)
	if !ok {
		d.logger.Warn("ignoring route with unroutable method",
			zap.String("method", method), zap.String("path", path))
		return
	}
	d.register(m, path, handler)
}

// register stores fully static paths in the exact-match table and paths
// with parameter or wildcard segments in the tree. Registering the same
// method and path again silently replaces the handler.
func (d *Dispatcher) register(m rtr.Method, path string, handler Handler) {
	if strings.IndexByte(path, consts.RuneColon) < 0 && strings.IndexByte(path, consts.RuneAsterisk) < 0 {
		d.staticRoutes.Add(m, path, handler)
	} else {
		d.tree.Add(m, path, handler)
	}

	if d.verbose {
		d.logger.Info("route registered",
			zap.String("method", m.String()), zap.String("path", path))
	}
}

// Use registers middleware for every request.
func (d *Dispatcher) Use(handlers ...Handler) {
	d.UseFor(consts.PatternAll, handlers...)
}

// UseFor registers middleware for requests whose path matches the pattern:
// "*" for everything, a trailing "/*" for a path prefix, or a fixed-length
// path whose segments are literals or ":name" placeholders. Middleware
// runs in registration order, whichever call registered it.
func (d *Dispatcher) UseFor(pattern string, handlers ...Handler) {
	for _, handler := range handlers {
		d.middleware = append(d.middleware, newMiddlewareEntry(pattern, handler))
	}

	if d.verbose {
		d.logger.Info("middleware registered",
			zap.String("pattern", pattern), zap.Int("handlers", len(handlers)))
	}
}

// Handle dispatches one request and always returns a response: not-found
// when nothing matches, the standard error shape when the chain fails, and
// whatever the chain produced otherwise. It never panics. env is an opaque
// environment object handed through to the context untouched; callers that
// have none pass nil.
func (d *Dispatcher) Handle(req *Request, env any) *Response {
	uri := d.pool.Acquire()
	defer d.pool.Release(uri)

	return d.dispatch(uri, req, env)
}

// dispatch resolves and runs one request. It is split from Handle so the
// pool release stays unconditional however this unwinds.
func (d *Dispatcher) dispatch(uri *URI, req *Request, env any) (res *Response) {
	defer func() {
		if recovered := recover(); recovered != nil {
			d.logger.Error("dispatch panicked", zap.Any("panic", recovered))
			res = errorResponse(panicMessage(recovered))
		}
	}()

	if req == nil {
		return errorResponse(ErrNilRequest.Error())
	}

	path := uri.Project(req.URL)

	method, ok := rtr.ParseMethod(req.Method)
	if !ok {
		return notFoundResponse()
	}

	var params rtr.Params
	handler, found := d.staticRoutes.Lookup(method, path)
	if !found {
		params = make(rtr.Params, 4)
		handler, found = d.tree.Lookup(method, path, params)
	}
	if !found {
		return notFoundResponse()
	}

	ctx := newContext(req, env, path, uri.Query(), params)
	ctx.handler = handler
	ctx.chain = d.matchingMiddleware(path)

	if err := ctx.Next(); err != nil {
		d.logger.Warn("request failed",
			zap.String("method", req.Method), zap.String("path", path), zap.Error(err))
		return errorResponse(err.Error())
	}

	return ctx.response
}

// ListRoutes returns every registered route: the static table's entries
// first, then the tree's, each sorted by path and method.
func (d *Dispatcher) ListRoutes() []rtr.RouteList {
	routes := d.staticRoutes.ListRoutes()
	return append(routes, d.tree.ListRoutes()...)
}

// PoolStats reports URI pool activity for diagnostics.
func (d *Dispatcher) PoolStats() PoolStats {
	return d.pool.Stats()
}
