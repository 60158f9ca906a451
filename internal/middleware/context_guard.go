package middleware

import (
	"net/http"

	"github.com/ferdiebergado/regtoken/internal/pkg/message"
	"github.com/ferdiebergado/regtoken/internal/pkg/web"
)

// ContextGuard stops requests whose context is already done before any
// token work is attempted.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil {
			web.Fail(r.Context(), w, http.StatusRequestTimeout, err, message.RequestTimeout, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
