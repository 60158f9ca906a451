package middleware

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"github.com/ferdiebergado/regtoken/internal/pkg/message"
	"github.com/ferdiebergado/regtoken/internal/pkg/web"
)

// CheckContentType rejects requests with a body unless it is JSON. Media type
// parameters such as charset are allowed.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		slog.Debug("Checking Content-Type...")
		contentType := r.Header.Get(web.HeaderContentType)

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != web.MimeJSON {
			web.Fail(r.Context(), w, http.StatusUnsupportedMediaType, fmt.Errorf("invalid content-type: %q", contentType), message.InvalidInput, nil)
			return
		}

		slog.Debug("Content-Type is valid.")
		next.ServeHTTP(w, r)
	})
}
