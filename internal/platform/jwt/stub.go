package jwt

import "errors"

type StubSignature struct {
	AlgorithmFunc func() string
	SupportsFunc  func(alg string) bool
	SignFunc      func(claims Claims) (string, error)
	VerifyFunc    func(token *Token) (bool, error)
}

var _ Signature = (*StubSignature)(nil)

func (s *StubSignature) Algorithm() string {
	if s.AlgorithmFunc == nil {
		return AlgHS256
	}
	return s.AlgorithmFunc()
}

func (s *StubSignature) Supports(alg string) bool {
	if s.SupportsFunc == nil {
		panic("Supports() not implemented by stub")
	}
	return s.SupportsFunc(alg)
}

func (s *StubSignature) Sign(claims Claims) (string, error) {
	if s.SignFunc == nil {
		return "", errors.New("Sign() not implemented by stub")
	}
	return s.SignFunc(claims)
}

func (s *StubSignature) Verify(token *Token) (bool, error) {
	if s.VerifyFunc == nil {
		return false, errors.New("Verify() not implemented by stub")
	}
	return s.VerifyFunc(token)
}
