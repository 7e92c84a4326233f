package consts

const (
	MethodGet     = "GET"
	MethodPost    = "POST"
	MethodPut     = "PUT"
	MethodDelete  = "DELETE"
	MethodPatch   = "PATCH"
	MethodOptions = "OPTIONS"
)

const (
	HeaderContentType = "Content-Type"
	HeaderLocation    = "Location"
	HeaderRequestID   = "X-Request-ID"
	HeaderRetryAfter  = "Retry-After"
)

const (
	StatusOK                  = 200
	StatusMovedPermanently    = 301
	StatusFound               = 302
	StatusSeeOther            = 303
	StatusTemporaryRedirect   = 307
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
)

const (
	RuneColon    = ':'
	RuneAsterisk = '*'
	RuneFwdSlash = '/'
	RuneQuestion = '?'

	SchemeSeparator = "://"
	FwdSlash        = "/"
	PatternAll      = "*"
)

// NotFoundMessage is the body of every not-found response.
const NotFoundMessage = "Not Found"

// FallbackErrorMessage is used when a contained failure carries no message.
const FallbackErrorMessage = "internal server error"
