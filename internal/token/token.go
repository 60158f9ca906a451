package token

import (
	"net/url"
	"time"

	"github.com/ferdiebergado/regtoken/internal/config"
	"github.com/ferdiebergado/regtoken/internal/platform/jwt"
)

// DefaultIssuer is the "iss" claim used when no application name is configured.
const DefaultIssuer = "regtoken"

const (
	claimSubject   = "sub"
	claimIssuer    = "iss"
	claimIssuedAt  = "iat"
	claimNotBefore = "nbf"
	claimExpires   = "exp"
	claimEmail     = "email"
)

// RegistrationDetails is the input of token generation.
type RegistrationDetails struct {
	Email string `json:"email" validate:"required,email"`
}

// BindQuery fills the details from the query string of a request.
func (d *RegistrationDetails) BindQuery(values url.Values) {
	d.Email = values.Get(claimEmail)
}

// TokenDetails holds the claims of a token that passed validation.
type TokenDetails struct {
	Claims jwt.Claims `json:"claims"`
}

func (d *TokenDetails) Subject() string {
	sub, _ := d.Claims.Subject()
	return sub
}

func (d *TokenDetails) Email() string {
	email, _ := d.Claims[claimEmail].(string)
	return email
}

type Provider struct {
	Cfg       *config.Config
	Signature jwt.Signature
	Clock     func() time.Time
}

type Module struct {
	generator *Generator
	validator *Validator
	handler   *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func (m *Module) Generator() *Generator {
	return m.generator
}

func (m *Module) Validator() *Validator {
	return m.validator
}

func NewModule(provider *Provider) *Module {
	gen := NewGenerator(provider.Signature, provider.Cfg.App.Name, provider.Clock)
	val := NewValidator(provider.Signature, provider.Clock)
	handler := NewHandler(gen, val, provider.Cfg.JWT.ExpirationInSeconds)
	return &Module{
		generator: gen,
		validator: val,
		handler:   handler,
	}
}
