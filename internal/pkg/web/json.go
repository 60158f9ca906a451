package web

const (
	HeaderContentType = "Content-Type"
	MimeJSON          = "application/json"
	MimeText          = "text/plain; charset=utf-8"
)
