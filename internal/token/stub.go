package token

import (
	"context"
)

type StubGenerator struct {
	GenerateTokenFunc func(ctx context.Context, details RegistrationDetails, ttlSeconds int) (string, bool)
}

var _ TokenGenerator = (*StubGenerator)(nil)

func (s *StubGenerator) GenerateToken(ctx context.Context, details RegistrationDetails, ttlSeconds int) (string, bool) {
	if s.GenerateTokenFunc == nil {
		panic("GenerateToken() not implemented by stub")
	}
	return s.GenerateTokenFunc(ctx, details, ttlSeconds)
}

type StubValidator struct {
	ValidateTokenFunc func(ctx context.Context, raw string) (*TokenDetails, bool)
}

var _ TokenValidator = (*StubValidator)(nil)

func (s *StubValidator) ValidateToken(ctx context.Context, raw string) (*TokenDetails, bool) {
	if s.ValidateTokenFunc == nil {
		panic("ValidateToken() not implemented by stub")
	}
	return s.ValidateTokenFunc(ctx, raw)
}
