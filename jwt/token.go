// Package jwt implements devhub.TokenService with HMAC-signed JSON Web Tokens.
package jwt

import (
	"errors"
	"time"

	"github.com/fwojciec/devhub"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the lifetime of issued tokens that carry no expiry.
const DefaultTTL = 24 * time.Hour

// Ensure TokenService implements devhub.TokenService at compile time.
var _ devhub.TokenService = (*TokenService)(nil)

// Option configures a TokenService.
type Option func(*TokenService)

// WithNow sets the clock used for issuing and validating tokens.
func WithNow(now func() time.Time) Option {
	return func(s *TokenService) {
		s.now = now
	}
}

// WithTTL sets the lifetime of tokens issued without an explicit expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *TokenService) {
		s.ttl = ttl
	}
}

// TokenService signs and verifies HS256 tokens with a shared secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService using secret as the HMAC key.
func NewTokenService(secret string, opts ...Option) *TokenService {
	s := &TokenService{
		secret: []byte(secret),
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type tokenClaims struct {
	Email string      `json:"email,omitempty"`
	Role  devhub.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs claims into a token. A zero ExpiresAt gets the default TTL.
func (s *TokenService) Issue(claims devhub.Claims) (string, error) {
	if len(s.secret) == 0 {
		return "", devhub.Errorf(devhub.EINVALID, "token secret required")
	}
	if claims.Subject == "" {
		return "", devhub.Errorf(devhub.EINVALID, "token subject required")
	}
	if !claims.Role.Valid() {
		return "", devhub.Errorf(devhub.EINVALID, "unknown role %q", claims.Role)
	}

	now := s.now()
	exp := claims.ExpiresAt
	if exp.IsZero() {
		exp = now.Add(s.ttl)
	}

	tc := tokenClaims{
		Email: claims.Email,
		Role:  claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString(s.secret)
}

// Verify decodes and validates a token.
func (s *TokenService) Verify(token string) (*devhub.Claims, error) {
	if token == "" {
		return nil, devhub.Errorf(devhub.EUNAUTHORIZED, "authentication required")
	}
	if len(s.secret) == 0 {
		return nil, devhub.Errorf(devhub.EUNAUTHORIZED, "invalid token")
	}

	var tc tokenClaims
	_, err := jwt.ParseWithClaims(token, &tc, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, devhub.Errorf(devhub.EUNAUTHORIZED, devhub.TokenExpiredMessage)
	case err != nil:
		return nil, devhub.Errorf(devhub.EUNAUTHORIZED, "invalid token")
	}

	if !tc.Role.Valid() {
		return nil, devhub.Errorf(devhub.EUNAUTHORIZED, "invalid token")
	}

	claims := &devhub.Claims{
		Subject: tc.Subject,
		Email:   tc.Email,
		Role:    tc.Role,
	}
	if tc.ExpiresAt != nil {
		claims.ExpiresAt = tc.ExpiresAt.Time
	}
	return claims, nil
}
