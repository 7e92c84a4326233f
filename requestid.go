package rmux

import (
	"github.com/google/uuid"
	"github.com/rohanthewiz/rmux/consts"
)

// RequestIDKey is the context-data key under which RequestID stores the
// request's ID.
const RequestIDKey = "request_id"

// RequestID returns middleware that tags every request with a unique ID.
// An ID already supplied in the X-Request-ID request header is kept;
// otherwise a fresh UUID is generated. The ID is stored in the context
// data under RequestIDKey and echoed on the response header, so both the
// application and the caller can correlate logs.
func RequestID() Handler {
	return func(ctx Context) (any, error) {
		id := ctx.Request().Header(consts.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		ctx.Set(RequestIDKey, id)
		ctx.SetHeader(consts.HeaderRequestID, id)

		return nil, ctx.Next()
	}
}
