package token

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/regtoken/internal/pkg/message"
	"github.com/ferdiebergado/regtoken/internal/pkg/web"
)

var errInvalidToken = errors.New("token rejected")

type TokenGenerator interface {
	GenerateToken(ctx context.Context, details RegistrationDetails, ttlSeconds int) (string, bool)
}

type TokenValidator interface {
	ValidateToken(ctx context.Context, raw string) (*TokenDetails, bool)
}

var (
	_ TokenGenerator = (*Generator)(nil)
	_ TokenValidator = (*Validator)(nil)
)

type Handler struct {
	generator  TokenGenerator
	validator  TokenValidator
	ttlSeconds int
}

func NewHandler(generator TokenGenerator, validator TokenValidator, ttlSeconds int) *Handler {
	return &Handler{
		generator:  generator,
		validator:  validator,
		ttlSeconds: ttlSeconds,
	}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	details, err := web.ParamsFromContext[RegistrationDetails](r.Context())
	if err != nil {
		web.Fail(r.Context(), w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	token, ok := h.generator.GenerateToken(r.Context(), details, h.ttlSeconds)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set(web.HeaderContentType, web.MimeText)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(token)); err != nil {
		slog.ErrorContext(r.Context(), "failed to write token", "reason", err)
	}
}

type ValidateTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

func (r *ValidateTokenRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("token", maskChar))
}

const maskChar = "*"

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[ValidateTokenRequest](r.Context())
	if err != nil {
		web.Fail(r.Context(), w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	details, ok := h.validator.ValidateToken(r.Context(), req.Token)
	if !ok {
		web.Fail(r.Context(), w, http.StatusUnauthorized, errInvalidToken, message.InvalidToken, nil)
		return
	}

	web.OK(w, http.StatusOK, nil, details)
}
