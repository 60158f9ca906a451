package token

import (
	"context"
	"log/slog"
	"time"

	"github.com/ferdiebergado/regtoken/internal/platform/jwt"
)

// Generator issues registration tokens. Tokens are signed when a signature is
// configured and plain otherwise.
type Generator struct {
	signature jwt.Signature
	issuer    string
	now       func() time.Time
}

// NewGenerator creates a Generator. A nil signature selects unsigned tokens.
func NewGenerator(signature jwt.Signature, issuer string, now func() time.Time) *Generator {
	if issuer == "" {
		issuer = DefaultIssuer
	}
	if now == nil {
		now = time.Now
	}
	return &Generator{
		signature: signature,
		issuer:    issuer,
		now:       now,
	}
}

// Claims builds the claim set for the given registration details. The token
// expires ttlSeconds after it was issued.
func (g *Generator) Claims(ctx context.Context, details RegistrationDetails, ttlSeconds int) jwt.Claims {
	// NumericDate claims carry whole seconds.
	now := g.now().Truncate(time.Second)
	exp := now.Add(time.Duration(ttlSeconds) * time.Second)

	claims := jwt.Claims{
		claimSubject:   details.Email,
		claimIssuedAt:  now.Unix(),
		claimNotBefore: now.Unix(),
		claimExpires:   exp.Unix(),
		claimIssuer:    g.issuer,
		claimEmail:     details.Email,
	}

	slog.DebugContext(ctx, "Generated claim set", "claims", claims)
	return claims
}

// Token serializes the claims. It reports false when a signed token could not
// be produced.
func (g *Generator) Token(ctx context.Context, claims jwt.Claims) (string, bool) {
	if g.signature == nil {
		token, err := jwt.Plain(claims)
		if err != nil {
			slog.WarnContext(ctx, "failed to generate plain token", "reason", err)
			return "", false
		}
		return token, true
	}

	token, err := g.signature.Sign(claims)
	if err != nil {
		slog.WarnContext(ctx, "failed to generate signed token", "reason", err)
		return "", false
	}
	return token, true
}

// GenerateToken issues a token for the registration details.
func (g *Generator) GenerateToken(ctx context.Context, details RegistrationDetails, ttlSeconds int) (string, bool) {
	claims := g.Claims(ctx, details, ttlSeconds)
	return g.Token(ctx, claims)
}
