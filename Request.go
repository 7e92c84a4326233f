package rmux

import "strings"

// Request describes one incoming request. The transport layer (or a test)
// constructs it and hands it to Dispatcher.Handle; the engine treats it as
// read-only. URL may be an absolute URL, an origin-form path, or any raw
// string - see URI.Project for how each is interpreted.
type Request struct {
	Method  string
	URL     string
	Headers []Header
	Body    []byte
}

// Header returns the first value for the given header key, matching
// case-insensitively, or an empty string.
func (req *Request) Header(key string) string {
	for _, header := range req.Headers {
		if strings.EqualFold(header.Key, key) {
			return header.Value
		}
	}
	return ""
}
