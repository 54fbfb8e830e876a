package services

import (
	"context"
	"testing"

	"pawsitter/internal/core/domain"
	"pawsitter/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec() *jwt.Codec {
	return jwt.NewCodec("test-access-secret", "test-refresh-secret", 15, 7)
}

func registerTestUser(t *testing.T, svc *AuthService, email string) {
	t.Helper()
	_, err := svc.Register(context.Background(), &RegisterInput{
		Email:       email,
		Password:    "password123",
		DisplayName: "Test User",
		City:        "Tallinn",
		Country:     "Estonia",
	})
	require.NoError(t, err)
}

func TestRegisterAssignsOwnerRole(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, newTestCodec())

	resp, err := svc.Register(context.Background(), &RegisterInput{
		Email:    "owner@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", resp.Email)
	assert.Equal(t, []string{domain.RoleOwner}, resp.Roles)
	assert.NotZero(t, resp.ID)
}

func TestRegisterRejectsTakenEmailCaseInsensitively(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, newTestCodec())
	registerTestUser(t, svc, "owner@example.com")

	_, err := svc.Register(context.Background(), &RegisterInput{
		Email:    "OWNER@Example.COM",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestRegisterDoesNotStorePlaintextPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, newTestCodec())
	registerTestUser(t, svc, "owner@example.com")

	user, err := userRepo.GetByEmail(context.Background(), "owner@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestLoginIssuesVerifiableTokenPair(t *testing.T) {
	userRepo := newFakeUserRepo()
	codec := newTestCodec()
	svc := NewAuthService(userRepo, codec)
	registerTestUser(t, svc, "owner@example.com")

	resp, err := svc.Login(context.Background(), &LoginInput{
		Email:    "owner@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{domain.RoleOwner}, resp.Roles)
	assert.EqualValues(t, 15*60, resp.ExpiresIn)

	claims, err := codec.VerifyAccess(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.UserID)
	assert.Equal(t, []string{domain.RoleOwner}, claims.Roles)

	refreshClaims, err := codec.VerifyRefresh(resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, refreshClaims.UserID)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newTestCodec())

	_, err := svc.Login(context.Background(), &LoginInput{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, newTestCodec())
	registerTestUser(t, svc, "owner@example.com")

	_, err := svc.Login(context.Background(), &LoginInput{
		Email:    "owner@example.com",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRefreshReissuesTokensWithCurrentRoles(t *testing.T) {
	userRepo := newFakeUserRepo()
	codec := newTestCodec()
	svc := NewAuthService(userRepo, codec)
	registerTestUser(t, svc, "owner@example.com")

	login, err := svc.Login(context.Background(), &LoginInput{
		Email:    "owner@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// Role widened after login: only the refreshed access token sees it
	user, err := userRepo.GetByEmail(context.Background(), "owner@example.com")
	require.NoError(t, err)
	user.Roles = append(user.Roles, domain.RoleAdmin)
	require.NoError(t, userRepo.Update(context.Background(), user))

	staleClaims, err := codec.VerifyAccess(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.RoleOwner}, staleClaims.Roles)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{domain.RoleOwner, domain.RoleAdmin}, refreshed.Roles)

	freshClaims, err := codec.VerifyAccess(refreshed.AccessToken)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{domain.RoleOwner, domain.RoleAdmin}, freshClaims.Roles)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	codec := newTestCodec()
	svc := NewAuthService(userRepo, codec)
	registerTestUser(t, svc, "owner@example.com")

	login, err := svc.Login(context.Background(), &LoginInput{
		Email:    "owner@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newTestCodec())

	_, err := svc.Refresh(context.Background(), "garbage")
	assert.ErrorIs(t, err, domain.ErrInvalidRefreshToken)
}

func TestRefreshFailsWhenUserGone(t *testing.T) {
	codec := newTestCodec()
	svc := NewAuthService(newFakeUserRepo(), codec)

	// Token refers to a user the store has never seen
	token, err := codec.IssueRefresh(99, "ghost@example.com")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestProfileReturnsStoredUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := NewAuthService(userRepo, newTestCodec())
	registerTestUser(t, svc, "owner@example.com")

	user, err := userRepo.GetByEmail(context.Background(), "owner@example.com")
	require.NoError(t, err)

	profile, err := svc.Profile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", profile.Email)
	assert.Equal(t, "Test User", profile.DisplayName)
	assert.Equal(t, "Tallinn", profile.City)
	assert.Equal(t, "Estonia", profile.Country)
}

func TestProfileUnknownUser(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newTestCodec())

	_, err := svc.Profile(context.Background(), 12345)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
