package jwt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/devhub"
	"github.com/fwojciec/devhub/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenService_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := jwt.NewTokenService("s3cret", jwt.WithNow(clock(fixedNow)))

	token, err := svc.Issue(devhub.Claims{Subject: "u1", Email: "a@example.com", Role: devhub.RoleAdmin})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, devhub.RoleAdmin, claims.Role)
	assert.True(t, claims.ExpiresAt.Equal(fixedNow.Add(jwt.DefaultTTL)))
}

func TestTokenService_VerifyExpired(t *testing.T) {
	t.Parallel()

	issuer := jwt.NewTokenService("s3cret", jwt.WithNow(clock(fixedNow)), jwt.WithTTL(time.Hour))
	token, err := issuer.Issue(devhub.Claims{Subject: "u1", Role: devhub.RoleRegular})
	require.NoError(t, err)

	verifier := jwt.NewTokenService("s3cret", jwt.WithNow(clock(fixedNow.Add(2*time.Hour))))
	_, err = verifier.Verify(token)

	assert.Equal(t, devhub.EUNAUTHORIZED, devhub.ErrorCode(err))
	assert.Equal(t, devhub.TokenExpiredMessage, devhub.ErrorMessage(err))
}

func TestTokenService_VerifyRejects(t *testing.T) {
	t.Parallel()

	svc := jwt.NewTokenService("s3cret", jwt.WithNow(clock(fixedNow)))
	valid, err := svc.Issue(devhub.Claims{Subject: "u1", Role: devhub.RolePaid})
	require.NoError(t, err)

	other, err := jwt.NewTokenService("other", jwt.WithNow(clock(fixedNow))).
		Issue(devhub.Claims{Subject: "u1", Role: devhub.RoleAdmin})
	require.NoError(t, err)

	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA"

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"malformed", "not-a-token"},
		{"wrong secret", other},
		{"bad signature", tampered},
		// {"alg":"none"} header with an admin payload.
		{"unsigned", "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJ1MSIsInJvbGUiOiJhZG1pbiJ9."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Verify(tt.token)

			assert.Equal(t, devhub.EUNAUTHORIZED, devhub.ErrorCode(err))
			assert.NotEqual(t, devhub.TokenExpiredMessage, devhub.ErrorMessage(err))
		})
	}
}

func TestTokenService_IssueValidates(t *testing.T) {
	t.Parallel()

	svc := jwt.NewTokenService("s3cret")

	_, err := svc.Issue(devhub.Claims{Role: devhub.RoleAdmin})
	assert.Equal(t, devhub.EINVALID, devhub.ErrorCode(err))

	_, err = svc.Issue(devhub.Claims{Subject: "u1", Role: "root"})
	assert.Equal(t, devhub.EINVALID, devhub.ErrorCode(err))

	_, err = jwt.NewTokenService("").Issue(devhub.Claims{Subject: "u1", Role: devhub.RoleAdmin})
	assert.Equal(t, devhub.EINVALID, devhub.ErrorCode(err))
}
