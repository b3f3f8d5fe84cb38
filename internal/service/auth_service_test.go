package service

import (
	"context"
	"testing"
	"time"

	"leafscan/internal/dto"
	"leafscan/internal/repository/memrepo"
	"leafscan/pkg/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService() (*AuthService, *auth.JWTManager) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(memrepo.NewUserStore(), jwtManager, zap.NewNop()), jwtManager
}

func register(t *testing.T, svc *AuthService) *dto.AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "farmer_ana",
		Email:    "Ana@Example.com",
		Password: "s3cret-pass",
		FullName: "Ana Silva",
	})
	require.NoError(t, err)
	return resp
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, jwtManager := newTestAuthService()

	resp := register(t, svc)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "ana@example.com", resp.User.Email)
	assert.Equal(t, "Ana Silva", resp.User.FullName)

	claims, err := jwtManager.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RegisterConflicts(t *testing.T) {
	svc, _ := newTestAuthService()
	register(t, svc)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{Username: "other", Email: "ana@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, ErrUserExists)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{Username: "farmer_ana", Email: "new@example.com", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc, _ := newTestAuthService()

	cases := []dto.RegisterRequest{
		{Username: "", Email: "a@example.com", Password: "s3cret-pass"},
		{Username: "a", Email: "not-an-email", Password: "s3cret-pass"},
		{Username: "a", Email: "a@example.com", Password: "123"},
	}
	for _, req := range cases {
		_, err := svc.Register(context.Background(), &req)
		assert.ErrorIs(t, err, ErrInvalidRegistration)
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, _ := newTestAuthService()
	resp := register(t, svc)

	refreshed, err := svc.RefreshToken(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, refreshed.User.ID)

	// access tokens are not accepted as refresh tokens
	_, err = svc.RefreshToken(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_MeAndUpdateProfile(t *testing.T) {
	svc, _ := newTestAuthService()
	resp := register(t, svc)
	userID := uuid.MustParse(resp.User.ID)

	bio := "  Smallholder, 2 ha of maize  "
	location := "Nakuru"
	updated, err := svc.UpdateProfile(context.Background(), userID, &dto.UpdateProfileRequest{Bio: &bio, Location: &location})
	require.NoError(t, err)
	assert.Equal(t, "Smallholder, 2 ha of maize", updated.Bio)
	assert.Equal(t, "Nakuru", updated.Location)
	assert.Equal(t, "Ana Silva", updated.FullName)

	me, err := svc.Me(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Nakuru", me.Location)

	_, err = svc.Me(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
