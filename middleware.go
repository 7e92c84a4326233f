package rmux

import (
	"strings"

	"github.com/rohanthewiz/rmux/consts"
)

// middlewareEntry is one registered middleware with its path pattern.
// The pattern is split once at registration so request-time matching only
// compares segments.
type middlewareEntry struct {
	pattern  string
	segments []string // pattern segments, minus a trailing wildcard
	trailing bool     // pattern ended with a "*" segment
	handler  Handler
}

// newMiddlewareEntry compiles a pattern. Three forms exist:
//   - "*" matches every path
//   - a pattern whose last segment is "*" matches any path whose leading
//     segments equal the ones before the wildcard
//   - anything else matches paths with the same segment count where each
//     position is byte-equal or a ":name" placeholder (which matches any
//     single value)
func newMiddlewareEntry(pattern string, handler Handler) middlewareEntry {
	entry := middlewareEntry{pattern: pattern, handler: handler}
	if pattern == consts.PatternAll {
		return entry
	}

	segments := strings.Split(pattern, consts.FwdSlash)
	if last := len(segments) - 1; segments[last] == consts.PatternAll {
		entry.trailing = true
		segments = segments[:last]
	}
	entry.segments = segments
	return entry
}

// matches reports whether the pattern covers a path already split into
// segments. The caller splits the request path once and shares the slice
// across every entry.
func (entry *middlewareEntry) matches(pathSegments []string) bool {
	if entry.pattern == consts.PatternAll {
		return true
	}

	if entry.trailing {
		if len(pathSegments) < len(entry.segments) {
			return false
		}
		for i, segment := range entry.segments {
			if pathSegments[i] != segment {
				return false
			}
		}
		return true
	}

	if len(pathSegments) != len(entry.segments) {
		return false
	}
	for i, segment := range entry.segments {
		if len(segment) > 0 && segment[0] == consts.RuneColon {
			continue
		}
		if pathSegments[i] != segment {
			return false
		}
	}
	return true
}

// matchingMiddleware returns the handlers whose patterns cover the path,
// preserving registration order.
func (d *Dispatcher) matchingMiddleware(path string) []Handler {
	if len(d.middleware) == 0 {
		return nil
	}

	pathSegments := strings.Split(path, consts.FwdSlash)

	var chain []Handler
	for i := range d.middleware {
		if d.middleware[i].matches(pathSegments) {
			chain = append(chain, d.middleware[i].handler)
		}
	}
	return chain
}
