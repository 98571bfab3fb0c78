package devhub_test

import (
	"context"
	"testing"

	"github.com/fwojciec/devhub"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		claims *devhub.Claims
		want   string
	}{
		{"admin passes", &devhub.Claims{Subject: "u1", Role: devhub.RoleAdmin}, ""},
		{"regular is forbidden", &devhub.Claims{Subject: "u2", Role: devhub.RoleRegular}, devhub.EFORBIDDEN},
		{"paid is forbidden", &devhub.Claims{Subject: "u3", Role: devhub.RolePaid}, devhub.EFORBIDDEN},
		{"missing claims are unauthorized", nil, devhub.EUNAUTHORIZED},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, devhub.ErrorCode(devhub.Authorize(tt.claims, devhub.RoleAdmin)))
		})
	}
}

func TestRole_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, devhub.RoleAdmin.Valid())
	assert.True(t, devhub.RoleRegular.Valid())
	assert.False(t, devhub.Role("root").Valid())
}

func TestClaimsContext(t *testing.T) {
	t.Parallel()

	assert.Nil(t, devhub.ClaimsFromContext(context.Background()))

	claims := &devhub.Claims{Subject: "u1", Role: devhub.RoleAdmin}
	ctx := devhub.NewContextWithClaims(context.Background(), claims)

	assert.Same(t, claims, devhub.ClaimsFromContext(ctx))
}
