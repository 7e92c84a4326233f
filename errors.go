package rmux

import (
	"encoding/json"

	"github.com/rohanthewiz/rmux/consts"
	"github.com/rohanthewiz/serr"
)

// ErrNilRequest is the contained failure produced when Handle receives a
// nil request.
var ErrNilRequest = serr.New("nil request")

// errorBody is the fixed JSON shape every contained failure collapses to.
type errorBody struct {
	Message string `json:"message"`
}

// notFoundResponse builds the fixed plain-text answer for unroutable
// requests.
func notFoundResponse() *Response {
	res := NewResponse()
	res.SetStatus(consts.StatusNotFound)
	res.SetHeader(consts.HeaderContentType, consts.MIMETextPlain)
	res.SetBody([]byte(consts.NotFoundMessage))
	return res
}

// errorResponse builds the standard error response: status 500 and a JSON
// body carrying only the message. Error identity does not cross this
// boundary - callers of Handle see the shape, never the original value.
func errorResponse(message string) *Response {
	body, err := json.Marshal(errorBody{Message: message})
	if err != nil {
		body = []byte(`{"message":"` + consts.FallbackErrorMessage + `"}`)
	}

	res := NewResponse()
	res.SetStatus(consts.StatusInternalServerError)
	res.SetHeader(consts.HeaderContentType, consts.MIMEJSON)
	res.SetBody(body)
	return res
}

// panicMessage extracts a usable message from a recovered panic value.
// Errors and strings carry their own text; any other value gets the fixed
// fallback so arbitrary internals never leak into a response.
func panicMessage(recovered any) string {
	switch v := recovered.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return consts.FallbackErrorMessage
	}
}
