package rmux

import (
	"encoding/json"

	"github.com/rohanthewiz/rmux/consts"
	"github.com/rohanthewiz/serr"
)

// normalize projects a non-nil handler (or middleware) return value onto
// the response. The value's dynamic type picks the shape:
//
//   - *Response: replaces the response slot outright, passed through
//     untouched
//   - string: becomes the body, content type text/plain
//   - []byte: becomes the body verbatim, content type octet-stream
//   - anything else: JSON-encoded into the body, content type
//     application/json
//
// The status code already on the slot is kept for every case except the
// *Response replacement, which carries its own. No case validates or
// escapes the payload beyond the serialization itself; an encoding failure
// surfaces as an error and is contained by the dispatcher.
func (ctx *context) normalize(result any) error {
	switch v := result.(type) {
	case *Response:
		if v != nil {
			ctx.response = v
		}
	case string:
		ctx.response.SetHeader(consts.HeaderContentType, consts.MIMETextPlain)
		ctx.response.SetBody([]byte(v))
	case []byte:
		ctx.response.SetHeader(consts.HeaderContentType, consts.MIMEOctetStream)
		ctx.response.SetBody(v)
	default:
		body, err := json.Marshal(v)
		if err != nil {
			return serr.Wrap(err, "failed to encode handler result as JSON")
		}
		ctx.response.SetHeader(consts.HeaderContentType, consts.MIMEJSON)
		ctx.response.SetBody(body)
	}

	return nil
}
