package token

import (
	"context"
	"log/slog"
	"time"

	"github.com/ferdiebergado/regtoken/internal/platform/jwt"
)

// Validator checks presented registration tokens. Rejections are logged at
// debug level and never reported to the caller with a reason.
type Validator struct {
	signature jwt.Signature
	now       func() time.Time
}

// NewValidator creates a Validator. With a nil signature only plain tokens
// are accepted; otherwise only signed tokens are.
func NewValidator(signature jwt.Signature, now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{
		signature: signature,
		now:       now,
	}
}

// ValidateToken returns the token's details and true when the token is
// accepted.
func (v *Validator) ValidateToken(ctx context.Context, raw string) (*TokenDetails, bool) {
	token, err := jwt.Parse(raw)
	if err != nil {
		slog.DebugContext(ctx, "Cannot parse JWT", "reason", err)
		return nil, false
	}

	var ok bool
	if token.Plain {
		ok = v.checkPlain(ctx)
	} else {
		ok = v.checkSigned(ctx, token)
	}

	if !ok {
		return nil, false
	}

	return v.tokenDetails(ctx, token)
}

func (v *Validator) checkPlain(ctx context.Context) bool {
	if v.signature != nil {
		slog.DebugContext(ctx, "A non-signed JWT cannot be accepted as a signature is configured")
		return false
	}

	slog.DebugContext(ctx, "JWT is not signed and no signature is configured")
	return true
}

func (v *Validator) checkSigned(ctx context.Context, token *jwt.Token) bool {
	slog.DebugContext(ctx, "JWT is signed", "alg", token.Algorithm)

	if v.signature == nil {
		slog.DebugContext(ctx, "No signature configured to verify JWT")
		return false
	}

	if !v.signature.Supports(token.Algorithm) {
		slog.DebugContext(ctx, jwt.SupportedAlgorithmsMessage(), "alg", token.Algorithm)
		return false
	}

	slog.DebugContext(ctx, "Using signature configuration", "signature", v.signature)
	verified, err := v.signature.Verify(token)
	if err != nil {
		slog.DebugContext(ctx, "JWT verification error", "reason", err)
		return false
	}

	if !verified {
		slog.DebugContext(ctx, "JWT verification failed")
		return false
	}

	return true
}

func (v *Validator) tokenDetails(ctx context.Context, token *jwt.Token) (*TokenDetails, bool) {
	if _, ok := token.Claims[claimSubject]; !ok {
		slog.DebugContext(ctx, "JWT must contain a subject ('sub' claim)")
		return nil, false
	}

	if _, err := token.Claims.Subject(); err != nil {
		slog.DebugContext(ctx, "JWT has an invalid subject ('sub' claim)", "reason", err)
		return nil, false
	}

	exp, err := token.Claims.ExpirationTime()
	if err != nil {
		slog.DebugContext(ctx, "JWT has an invalid expiration ('exp' claim)", "reason", err)
		return nil, false
	}

	// A token expiring exactly now is still valid.
	if exp != nil && exp.Before(v.now()) {
		slog.DebugContext(ctx, "JWT expired", "exp", *exp)
		return nil, false
	}

	return &TokenDetails{Claims: token.Claims}, true
}
