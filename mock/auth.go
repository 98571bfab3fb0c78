package mock

import "github.com/fwojciec/devhub"

var _ devhub.TokenService = (*TokenService)(nil)

// TokenService is a mock implementation of devhub.TokenService.
type TokenService struct {
	IssueFn  func(claims devhub.Claims) (string, error)
	VerifyFn func(token string) (*devhub.Claims, error)
}

func (s *TokenService) Issue(claims devhub.Claims) (string, error) {
	return s.IssueFn(claims)
}

func (s *TokenService) Verify(token string) (*devhub.Claims, error) {
	return s.VerifyFn(token)
}
