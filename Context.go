package rmux

import (
	"encoding/json"

	"github.com/rohanthewiz/rmux/consts"
	"github.com/rohanthewiz/rmux/core/rtr"
	"github.com/rohanthewiz/serr"
)

// Handler processes one request. Route handlers and middleware share this
// signature; middleware additionally calls Next to hand control down the
// chain, and not calling it short-circuits the dispatch.
//
// A non-nil returned value is normalized into the response slot - a
// *Response passes through as-is, a string becomes a plain-text body, a
// byte slice a raw body, anything else a JSON body. A returned error
// abandons the dispatch and produces the standard error response.
type Handler func(ctx Context) (any, error)

// Context is the interface for a request and its response.
type Context interface {
	Bytes([]byte) error
	Delete(key string)
	Env() any
	Get(key string) any
	Has(key string) bool
	Next() error
	Param(name string) string
	Params() rtr.Params
	Path() string
	Query() string
	Redirect(int, string) error
	Request() *Request
	Response() *Response
	Set(key string, value any)
	SetHeader(key, value string)
	Status(int) Context
	WriteHTML(string) error
	WriteJSON(any) error
	WriteText(string) error
}

// context carries one request through the middleware chain to its route
// handler. One is built per dispatch and discarded afterwards; nothing
// retains it past Handle's return.
type context struct {
	request  *Request
	response *Response
	env      any
	path     string
	query    string
	params   rtr.Params
	chain    []Handler // middleware matched to this request's path
	handler  Handler   // resolved route handler, runs after the chain
	index    int       // position in chain, -1 before the first Next
	data     map[string]any
}

// newContext assembles a context around the default empty response.
// The chain and handler are attached by the dispatcher afterwards.
func newContext(req *Request, env any, path string, query string, params rtr.Params) *context {
	return &context{
		request:  req,
		response: NewResponse(),
		env:      env,
		path:     path,
		query:    query,
		params:   params,
		index:    -1,
	}
}

// Next runs the rest of the chain: each remaining middleware in
// registration order, then the route handler exactly once. Values returned
// by either are normalized into the response slot as they surface, so
// middleware code after its Next call observes the final response. Calls
// past the end of the chain are no-ops.
func (ctx *context) Next() error {
	ctx.index++

	switch {
	case ctx.index < len(ctx.chain):
		return ctx.apply(ctx.chain[ctx.index](ctx))
	case ctx.index == len(ctx.chain):
		return ctx.apply(ctx.handler(ctx))
	default:
		return nil
	}
}

// apply funnels a handler's return pair into the response slot.
func (ctx *context) apply(result any, err error) error {
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return ctx.normalize(result)
}

// Request returns the request being dispatched.
func (ctx *context) Request() *Request {
	return ctx.request
}

// Response returns the mutable response slot.
func (ctx *context) Response() *Response {
	return ctx.response
}

// Env returns the environment object the caller passed to Handle.
func (ctx *context) Env() any {
	return ctx.env
}

// Path returns the resolved request path.
func (ctx *context) Path() string {
	return ctx.path
}

// Query returns the raw query string, if the request URL carried one.
func (ctx *context) Query() string {
	return ctx.query
}

// Param retrieves a route parameter bound during resolution.
func (ctx *context) Param(name string) string {
	return ctx.params.Get(name)
}

// Params returns all route parameter bindings. Static routes have none.
// Treat the map as read-only.
func (ctx *context) Params() rtr.Params {
	return ctx.params
}

// Status sets the HTTP status of the response
// and returns the context for method chaining.
func (ctx *context) Status(status int) Context {
	ctx.response.SetStatus(status)
	return ctx
}

// SetHeader sets a response header.
func (ctx *context) SetHeader(key string, value string) {
	ctx.response.SetHeader(key, value)
}

// Redirect redirects the client to a different location
// with the specified status code.
func (ctx *context) Redirect(status int, location string) error {
	ctx.response.SetStatus(status)
	ctx.response.SetHeader(consts.HeaderLocation, location)
	return nil
}

// Bytes adds the raw byte slice to the response body.
func (ctx *context) Bytes(body []byte) error {
	_, err := ctx.response.Write(body)
	return err
}

// WriteText adds the given string to the response body
// and marks the response as plain text.
func (ctx *context) WriteText(body string) error {
	ctx.response.SetHeader(consts.HeaderContentType, consts.MIMETextPlain)
	_, err := ctx.response.WriteString(body)
	return err
}

// WriteHTML adds the given string to the response body
// and marks the response as HTML.
func (ctx *context) WriteHTML(body string) error {
	ctx.response.SetHeader(consts.HeaderContentType, consts.MIMEHTML)
	_, err := ctx.response.WriteString(body)
	return err
}

// WriteJSON encodes the value into the response body
// and marks the response as JSON.
func (ctx *context) WriteJSON(value any) error {
	body, err := json.Marshal(value)
	if err != nil {
		return serr.Wrap(err, "failed to encode value as JSON")
	}

	ctx.response.SetHeader(consts.HeaderContentType, consts.MIMEJSON)
	_, err = ctx.response.Write(body)
	return err
}

// Set stores a request-scoped value, available to later middleware and
// the handler.
func (ctx *context) Set(key string, value any) {
	if ctx.data == nil {
		ctx.data = make(map[string]any, 4)
	}
	ctx.data[key] = value
}

// Get retrieves a request-scoped value, or nil.
func (ctx *context) Get(key string) any {
	return ctx.data[key]
}

// Has reports whether a request-scoped value exists for the key.
func (ctx *context) Has(key string) bool {
	_, ok := ctx.data[key]
	return ok
}

// Delete removes a request-scoped value.
func (ctx *context) Delete(key string) {
	delete(ctx.data, key)
}
