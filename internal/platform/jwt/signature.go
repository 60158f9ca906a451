package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed            = errors.New("jwt: malformed token")
	ErrSigning              = errors.New("jwt: signing failed")
	ErrVerification         = errors.New("jwt: verification failed")
	ErrUnsupportedAlgorithm = errors.New("jwt: unsupported algorithm")
)

// Claims is the claim set carried by a token, keyed by claim name.
type Claims map[string]any

// Subject returns the "sub" claim. An absent claim yields an empty string.
func (c Claims) Subject() (string, error) {
	return jwt.MapClaims(c).GetSubject()
}

// ExpirationTime returns the "exp" claim, or nil when the claim is absent.
func (c Claims) ExpirationTime() (*time.Time, error) {
	exp, err := jwt.MapClaims(c).GetExpirationTime()
	if err != nil {
		return nil, err
	}
	if exp == nil {
		return nil, nil
	}
	return &exp.Time, nil
}

// Signature defines methods for signing claim sets and verifying signed tokens.
type Signature interface {
	Algorithm() string
	Supports(alg string) bool
	Sign(claims Claims) (token string, err error)
	Verify(token *Token) (bool, error)
}
