package consts

const (
	MIMETextPlain   = "text/plain; charset=utf-8"
	MIMEOctetStream = "application/octet-stream"
	MIMEJSON        = "application/json"
	MIMEHTML        = "text/html; charset=utf-8"
)
