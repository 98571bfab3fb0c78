package devhub

import (
	"context"
	"time"
)

// Role is the authorization level carried by a token.
type Role string

// Role constants.
const (
	RoleRegular Role = "regular"
	RolePaid    Role = "paid"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleRegular, RolePaid, RoleAdmin:
		return true
	}
	return false
}

// TokenExpiredMessage is the EUNAUTHORIZED message for an expired token.
// Callers use it to tell an expired session apart from a bad token.
const TokenExpiredMessage = "token expired"

// Claims are the verified contents of a bearer token.
type Claims struct {
	Subject   string
	Email     string
	Role      Role
	ExpiresAt time.Time
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	// Issue signs claims into a token.
	Issue(claims Claims) (string, error)

	// Verify decodes and validates a token.
	// Returns EUNAUTHORIZED if the token is missing, malformed or expired.
	Verify(token string) (*Claims, error)
}

// Authorize returns nil if claims carry the required role.
// Returns EUNAUTHORIZED for nil claims and EFORBIDDEN for any other role.
func Authorize(claims *Claims, role Role) error {
	if claims == nil {
		return Errorf(EUNAUTHORIZED, "authentication required")
	}
	if claims.Role != role {
		return Errorf(EFORBIDDEN, "role %q is not permitted to perform this action", claims.Role)
	}
	return nil
}

type claimsContextKey struct{}

// NewContextWithClaims returns a copy of ctx carrying the verified claims.
func NewContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// ClaimsFromContext returns the claims stored in ctx, or nil.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsContextKey{}).(*Claims)
	return claims
}
