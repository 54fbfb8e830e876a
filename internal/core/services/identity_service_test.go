package services

import (
	"testing"

	"pawsitter/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMissingHeader(t *testing.T) {
	svc := NewIdentityService(newTestCodec())

	_, err := svc.Resolve("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolveMalformedPrefix(t *testing.T) {
	codec := newTestCodec()
	svc := NewIdentityService(codec)

	token, err := codec.IssueAccess(1, "owner@example.com", []string{domain.RoleOwner})
	require.NoError(t, err)

	for _, header := range []string{
		token,              // bare token, no scheme
		"bearer " + token,  // lowercase scheme
		"Bearer" + token,   // missing space
		"Basic " + token,   // wrong scheme
	} {
		_, err := svc.Resolve(header)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "header %q", header)
	}
}

func TestResolveInvalidToken(t *testing.T) {
	svc := NewIdentityService(newTestCodec())

	_, err := svc.Resolve("Bearer not.a.token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolveRefreshTokenRejected(t *testing.T) {
	codec := newTestCodec()
	svc := NewIdentityService(codec)

	refreshToken, err := codec.IssueRefresh(1, "owner@example.com")
	require.NoError(t, err)

	_, err = svc.Resolve("Bearer " + refreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestResolveReturnsPrincipalFromClaims(t *testing.T) {
	codec := newTestCodec()
	svc := NewIdentityService(codec)

	token, err := codec.IssueAccess(42, "owner@example.com", []string{domain.RoleOwner, domain.RoleAdmin})
	require.NoError(t, err)

	principal, err := svc.Resolve("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), principal.UserID)
	assert.Equal(t, "owner@example.com", principal.Email)
	assert.True(t, principal.HasRole(domain.RoleOwner))
	assert.True(t, principal.IsAdmin())
	assert.False(t, principal.HasRole("MODERATOR"))
}
