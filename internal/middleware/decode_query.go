package middleware

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/ferdiebergado/regtoken/internal/pkg/web"
)

// QueryBinder is implemented by request types that are filled from a query string.
type QueryBinder[T any] interface {
	*T
	BindQuery(values url.Values)
}

// DecodeQuery binds the request's query string into a T and stores it in the
// request context for ValidateInput and the handler.
func DecodeQuery[T any, PT QueryBinder[T]]() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Debug("Decoding query params...")
			var decoded T
			PT(&decoded).BindQuery(r.URL.Query())

			ctx := web.NewContextWithParams(r.Context(), decoded)
			r = r.WithContext(ctx)
			next.ServeHTTP(w, r)
		})
	}
}
