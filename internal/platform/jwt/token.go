package jwt

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// AlgNone is the "alg" header value of an unsigned token.
const AlgNone = "none"

// Token is a decoded, not yet verified, compact-serialized JWT.
type Token struct {
	Raw          string
	Algorithm    string
	Plain        bool
	Claims       Claims
	SigningInput string
	Signature    string
}

var parser = jwt.NewParser()

// Parse decodes the header and claims of a compact-serialized token.
// The signature, if any, is left unchecked.
func Parse(raw string) (*Token, error) {
	parsed, parts, err := parser.ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	alg, ok := parsed.Header["alg"].(string)
	if !ok || alg == "" {
		return nil, fmt.Errorf("%w: missing alg header", ErrMalformed)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unknown claims type: %T", ErrMalformed, parsed.Claims)
	}

	token := &Token{
		Raw:          raw,
		Algorithm:    alg,
		Plain:        alg == AlgNone,
		Claims:       Claims(claims),
		SigningInput: strings.Join(parts[:2], "."),
		Signature:    parts[2],
	}

	if token.Plain && token.Signature != "" {
		return nil, fmt.Errorf("%w: unsigned token carries a signature", ErrMalformed)
	}

	return token, nil
}

// Plain serializes claims as an unsigned token. The result keeps the trailing
// dot of the empty signature segment.
func Plain(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims(claims))
	serialized, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		return "", fmt.Errorf("serialize plain token: %w", err)
	}
	return serialized, nil
}
