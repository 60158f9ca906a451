package message

const (
	InvalidInput   = "Invalid input."
	InvalidToken   = "Invalid token."
	UnknownField   = "Unknown field in payload."
	RequestTimeout = "Request cancelled or timed out."

	FmtErrStatusCode = "rec.Code = %d, want: %d"
)
