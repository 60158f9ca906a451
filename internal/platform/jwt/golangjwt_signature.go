package jwt

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AlgHS256 = "HS256"
	AlgHS384 = "HS384"
	AlgHS512 = "HS512"
)

var hmacMethods = map[string]*jwt.SigningMethodHMAC{
	AlgHS256: jwt.SigningMethodHS256,
	AlgHS384: jwt.SigningMethodHS384,
	AlgHS512: jwt.SigningMethodHS512,
}

// SupportedAlgorithmsMessage explains which algorithms a SecretSignature accepts.
func SupportedAlgorithmsMessage() string {
	return "Only the HS256, HS384 and HS512 algorithms are supported for HMAC signature"
}

// SecretSignature implements the Signature interface with a shared HMAC secret
// using the golang-jwt library. It is immutable once constructed.
type SecretSignature struct {
	secret []byte
	method *jwt.SigningMethodHMAC
}

var _ Signature = (*SecretSignature)(nil)

// NewSecretSignature creates a SecretSignature from the configured secret.
// When isBase64 is set the secret is decoded from standard base64, otherwise
// its UTF-8 bytes are used as is. An empty algorithm selects HS256.
func NewSecretSignature(secret string, isBase64 bool, algorithm string) (*SecretSignature, error) {
	if secret == "" {
		return nil, errors.New("secret signature: secret is empty")
	}

	if algorithm == "" {
		algorithm = AlgHS256
	}

	method, ok := hmacMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("secret signature: %w: %s", ErrUnsupportedAlgorithm, algorithm)
	}

	key := []byte(secret)
	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(secret)
		if err != nil {
			return nil, fmt.Errorf("secret signature: decode base64 secret: %w", err)
		}
		key = decoded
	}

	return &SecretSignature{
		secret: key,
		method: method,
	}, nil
}

func (s *SecretSignature) Algorithm() string {
	return s.method.Alg()
}

// Supports reports whether alg belongs to the HMAC-SHA family.
func (s *SecretSignature) Supports(alg string) bool {
	_, ok := hmacMethods[alg]
	return ok
}

// Sign serializes claims as a token signed with the configured algorithm.
func (s *SecretSignature) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(s.method, jwt.MapClaims(claims))
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSigning, err)
	}
	return signed, nil
}

// Verify recomputes the MAC of the token's signing input using the algorithm
// named in its header. A mismatch reports false without an error; an error is
// returned only when the token cannot be checked at all.
func (s *SecretSignature) Verify(token *Token) (bool, error) {
	if token == nil || token.Plain {
		return false, fmt.Errorf("%w: token is not signed", ErrVerification)
	}

	method, ok := hmacMethods[token.Algorithm]
	if !ok {
		return false, fmt.Errorf("%w: %w: %s", ErrVerification, ErrUnsupportedAlgorithm, token.Algorithm)
	}

	sig, err := parser.DecodeSegment(token.Signature)
	if err != nil {
		return false, fmt.Errorf("%w: decode signature: %w", ErrVerification, err)
	}

	if err := method.Verify(token.SigningInput, sig, s.secret); err != nil {
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %w", ErrVerification, err)
	}

	return true, nil
}

func (s *SecretSignature) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("algorithm", s.method.Alg()),
		slog.Int("key_length", len(s.secret)),
	)
}
