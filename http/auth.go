package http

import (
	"net/http"
	"strings"

	"github.com/fwojciec/devhub"
)

// ReadOnlyMessage is returned for every mutation on a read-only deployment.
const ReadOnlyMessage = "Dev Hub is read-only"

// mutation guards a state-changing handler: read-only deployments reject it
// outright, otherwise an admin token is required.
func (s *Server) mutation(next http.HandlerFunc) http.Handler {
	return s.rejectReadOnly(s.RequireRole(devhub.RoleAdmin, next))
}

func (s *Server) rejectReadOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.ReadOnly {
			s.Error(w, r, devhub.Errorf(devhub.EFORBIDDEN, ReadOnlyMessage))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole returns middleware that verifies the bearer token and
// requires the given role. Verified claims are stored in the request context.
func (s *Server) RequireRole(role devhub.Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.TokenService == nil {
			s.Error(w, r, devhub.Errorf(devhub.EUNAUTHORIZED, "authentication is not configured"))
			return
		}

		claims, err := s.TokenService.Verify(bearerToken(r))
		if err != nil {
			s.Error(w, r, err)
			return
		}
		if err := devhub.Authorize(claims, role); err != nil {
			s.Error(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(devhub.NewContextWithClaims(r.Context(), claims)))
	})
}

// bearerToken returns the token from an "Authorization: Bearer" header.
func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
