package rmux

import "github.com/rohanthewiz/rmux/consts"

// Response is the engine's answer to one dispatched request.
//
// Every dispatch starts from an empty response (status 200, no headers, no
// body) reachable through the context. Handlers and middleware can mutate
// it in place, let normalization fill it from a returned value, or build a
// fresh one with NewResponse and return that to take over entirely.
type Response struct {
	body    []byte
	headers []Header
	status  int
}

// NewResponse creates an empty response with status 200.
func NewResponse() *Response {
	return &Response{status: consts.StatusOK}
}

// Body returns the response body.
func (res *Response) Body() []byte {
	return res.body
}

// Status returns the HTTP status code.
func (res *Response) Status() int {
	return res.status
}

// Header returns the header value for the given key.
func (res *Response) Header(key string) string {
	for _, header := range res.headers {
		if header.Key == key {
			return header.Value
		}
	}

	return ""
}

// Headers returns all headers in the order they were first set.
// Transports iterate this when writing the response out.
func (res *Response) Headers() []Header {
	return res.headers
}

// SetHeader sets the header value for the given key, replacing any
// previous value in place.
func (res *Response) SetHeader(key string, value string) {
	for i, header := range res.headers {
		if header.Key == key {
			res.headers[i].Value = value
			return
		}
	}

	res.headers = append(res.headers, Header{Key: key, Value: value})
}

// SetBody replaces the response body with the new contents.
func (res *Response) SetBody(body []byte) {
	res.body = body
}

// SetStatus sets the HTTP status code.
func (res *Response) SetStatus(status int) {
	res.status = status
}

// Write implements the io.Writer interface by appending to the body.
func (res *Response) Write(body []byte) (int, error) {
	res.body = append(res.body, body...)
	return len(body), nil
}

// WriteString implements the io.StringWriter interface by appending to the body.
func (res *Response) WriteString(body string) (int, error) {
	res.body = append(res.body, body...)
	return len(body), nil
}
