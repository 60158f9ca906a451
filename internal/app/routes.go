package app

import (
	"net/http"

	"github.com/ferdiebergado/regtoken/internal/middleware"
	"github.com/ferdiebergado/regtoken/internal/platform/router"
	"github.com/ferdiebergado/regtoken/internal/platform/validation"
	"github.com/ferdiebergado/regtoken/internal/token"
)

func mountTokenRoutes(r router.Router, handler *token.Handler, validator validation.Validator, maxBodySize int64, allowedOrigin string) {
	var groupMiddlewares []func(http.Handler) http.Handler
	if allowedOrigin != "" {
		groupMiddlewares = append(groupMiddlewares, middleware.CORS(allowedOrigin))
	}

	r.Group("/token", func(gr router.Router) {
		gr.Get("/generate", handler.Generate,
			middleware.DecodeQuery[token.RegistrationDetails](),
			middleware.ValidateInput[token.RegistrationDetails](validator))
		gr.Post("/validate", handler.Validate,
			middleware.CheckContentType,
			middleware.DecodePayload[token.ValidateTokenRequest](maxBodySize),
			middleware.ValidateInput[token.ValidateTokenRequest](validator))

		if allowedOrigin != "" {
			gr.Options("/generate", preflight)
			gr.Options("/validate", preflight)
		}
	}, groupMiddlewares...)
}

// preflight is reached only for OPTIONS requests from origins CORS rejected.
func preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
