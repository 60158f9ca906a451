package token_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ferdiebergado/regtoken/internal/platform/jwt"
	"github.com/ferdiebergado/regtoken/internal/token"
)

const (
	testEmail  = "a@b.com"
	testSecret = "mysecret"
)

var fixedNow = time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newSecretSignature(t *testing.T, secret string) jwt.Signature {
	t.Helper()

	sig, err := jwt.NewSecretSignature(secret, false, jwt.AlgHS256)
	if err != nil {
		t.Fatalf("jwt.NewSecretSignature() returned an error: %v", err)
	}
	return sig
}

func TestGenerator_Claims(t *testing.T) {
	t.Parallel()

	const ttl = 60

	// Sub-second precision is dropped from the issued-at time.
	now := fixedNow.Add(500 * time.Millisecond)
	gen := token.NewGenerator(nil, "", fixedClock(now))
	claims := gen.Claims(context.Background(), token.RegistrationDetails{Email: testEmail}, ttl)

	wantUnix := fixedNow.Unix()
	tests := []struct {
		claim string
		want  any
	}{
		{"sub", testEmail},
		{"email", testEmail},
		{"iss", token.DefaultIssuer},
		{"iat", wantUnix},
		{"nbf", wantUnix},
		{"exp", wantUnix + ttl},
	}
	for _, tt := range tests {
		if got := claims[tt.claim]; got != tt.want {
			t.Errorf("claims[%q] = %v, want: %v", tt.claim, got, tt.want)
		}
	}
}

func TestGenerator_ClaimsIssuer(t *testing.T) {
	t.Parallel()

	const issuer = "signup"

	gen := token.NewGenerator(nil, issuer, nil)
	claims := gen.Claims(context.Background(), token.RegistrationDetails{Email: testEmail}, 60)

	if got := claims["iss"]; got != issuer {
		t.Errorf("claims[%q] = %v, want: %v", "iss", got, issuer)
	}
}

func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		signature func(t *testing.T) jwt.Signature
		wantAlg   string
		wantSig   bool
	}{
		{"Unsigned", func(_ *testing.T) jwt.Signature { return nil }, jwt.AlgNone, false},
		{"Signed", func(t *testing.T) jwt.Signature { return newSecretSignature(t, testSecret) }, jwt.AlgHS256, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := token.NewGenerator(tt.signature(t), "", fixedClock(fixedNow))
			raw, ok := gen.GenerateToken(context.Background(), token.RegistrationDetails{Email: testEmail}, 60)
			if !ok {
				t.Fatal("gen.GenerateToken() = false, want: true")
			}

			parts := strings.Split(raw, ".")
			if len(parts) != 3 {
				t.Fatalf("len(parts) = %d, want: %d", len(parts), 3)
			}

			if gotSig := parts[2] != ""; gotSig != tt.wantSig {
				t.Errorf("has signature = %t, want: %t", gotSig, tt.wantSig)
			}

			parsed, err := jwt.Parse(raw)
			if err != nil {
				t.Fatalf("jwt.Parse() returned an error: %v", err)
			}

			if parsed.Algorithm != tt.wantAlg {
				t.Errorf("parsed.Algorithm = %q, want: %q", parsed.Algorithm, tt.wantAlg)
			}

			sub, err := parsed.Claims.Subject()
			if err != nil {
				t.Fatal(err)
			}

			if sub != testEmail {
				t.Errorf("parsed.Claims.Subject() = %q, want: %q", sub, testEmail)
			}
		})
	}
}

func TestGenerator_TokenSigningFailure(t *testing.T) {
	t.Parallel()

	sig := &jwt.StubSignature{
		SignFunc: func(_ jwt.Claims) (string, error) {
			return "", errors.New("signer unavailable")
		},
	}
	gen := token.NewGenerator(sig, "", fixedClock(fixedNow))

	raw, ok := gen.GenerateToken(context.Background(), token.RegistrationDetails{Email: testEmail}, 60)
	if ok {
		t.Errorf("gen.GenerateToken() = %q, true, want: false", raw)
	}

	if raw != "" {
		t.Errorf("gen.GenerateToken() = %q, want: %q", raw, "")
	}
}
