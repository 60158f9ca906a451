package provider

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ferdiebergado/regtoken/internal/config"
	"github.com/ferdiebergado/regtoken/internal/platform/jwt"
	"github.com/ferdiebergado/regtoken/internal/platform/router"
	"github.com/ferdiebergado/regtoken/internal/platform/validation"
)

type Provider struct {
	Cfg       *config.Config
	Signature jwt.Signature
	Validator validation.Validator
	Router    router.Router
}

func New(cfg *config.Config) (*Provider, error) {
	if cfg == nil {
		return nil, errors.New("config should not be nil")
	}

	signature, err := newSignature(&cfg.JWT.Signature)
	if err != nil {
		return nil, fmt.Errorf("new signature: %w", err)
	}

	provider := &Provider{
		Cfg:       cfg,
		Signature: signature,
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
	}

	return provider, nil
}

// newSignature returns nil when no secret is configured, which puts the token
// module in unsigned mode.
func newSignature(cfg *config.Signature) (jwt.Signature, error) {
	if !cfg.Enabled() {
		slog.Warn("No signature secret configured, tokens will be issued unsigned.")
		return nil, nil
	}

	signature, err := jwt.NewSecretSignature(cfg.Secret, cfg.Base64, cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	slog.Info("Signature configured.", "signature", signature)
	return signature, nil
}
