package rmux

import (
	"strings"

	"github.com/rohanthewiz/rmux/consts"
)

// URI is a reusable URL parse buffer. One is drawn from the dispatcher's
// pool per in-flight request and returned when the request completes.
// Though we could have used the standard URL package we wanted to maintain
// fine control: input that is not a URL at all must degrade to being
// routed verbatim instead of failing the request.
type URI struct {
	scheme string
	host   string
	path   string
	query  string
}

// Project parses rawURL into the buffer and returns the path component.
//
// Two input shapes are recognized:
//   - absolute form "scheme://host/path?query": scheme and host are split
//     off first ("scheme://host" alone yields path "/")
//   - everything else is treated as origin form: an optional "?query" tail
//     is split off and the remainder, however malformed, becomes the path
//
// Nothing is rejected and nothing is normalized beyond an empty path
// becoming "/". A raw string that is not a URL simply routes as itself.
func (u *URI) Project(rawURL string) string {
	u.Reset()
	rest := rawURL

	if schemeEnd := strings.Index(rest, consts.SchemeSeparator); schemeEnd != -1 {
		u.scheme = rest[:schemeEnd]
		rest = rest[schemeEnd+len(consts.SchemeSeparator):]

		if pathStart := strings.IndexByte(rest, consts.RuneFwdSlash); pathStart != -1 {
			u.host = rest[:pathStart]
			rest = rest[pathStart:]
		} else {
			u.host = rest
			rest = ""
		}
	}

	if queryPos := strings.IndexByte(rest, consts.RuneQuestion); queryPos != -1 {
		u.query = rest[queryPos+1:]
		rest = rest[:queryPos]
	}

	if rest == "" {
		rest = consts.FwdSlash
	}
	u.path = rest

	return u.path
}

// Reset clears the buffer for reuse.
func (u *URI) Reset() {
	u.scheme = ""
	u.host = ""
	u.path = ""
	u.query = ""
}

// Scheme returns the scheme of the last projected URL, if any.
func (u *URI) Scheme() string { return u.scheme }

// Host returns the host of the last projected URL, if any.
func (u *URI) Host() string { return u.host }

// Path returns the path of the last projected URL.
func (u *URI) Path() string { return u.path }

// Query returns the raw query of the last projected URL, if any.
func (u *URI) Query() string { return u.query }
