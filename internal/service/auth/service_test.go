package auth

import (
	"context"
	"testing"

	"github.com/sitebook/sitebook-backend/internal/domain/auth"
	"github.com/sitebook/sitebook-backend/internal/domain/user"
	"github.com/sitebook/sitebook-backend/internal/pkg/jwt"
	"github.com/sitebook/sitebook-backend/internal/pkg/validator"
	"github.com/sitebook/sitebook-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessExp = "1h"
	testSecret    = "test-secret-key-for-jwt"
)

func newTestAuthService(t *testing.T) (auth.AuthService, jwt.Service) {
	t.Helper()
	jwtService, err := jwt.NewJWTService(testSecret, testAccessExp)
	require.NoError(t, err)
	return NewAuthService(memory.NewUserRepository(memory.NewDB()), jwtService), jwtService
}

func TestRegisterAndLogin(t *testing.T) {
	svc, jwtService := newTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, auth.RegisterRequest{
		Email:           "Owner@Example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", registered.Email)
	assert.NotEmpty(t, registered.AccessToken)

	loggedIn, err := svc.Login(ctx, auth.LoginRequest{Email: "owner@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, loggedIn.UserID)

	token, err := jwtService.JWTAuth().Decode(loggedIn.AccessToken)
	require.NoError(t, err)
	sub, _ := token.Get(jwt.ClaimUserID)
	assert.Equal(t, registered.UserID, sub)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	req := auth.RegisterRequest{Email: "owner@example.com", Password: "password123", ConfirmPassword: "password123"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestAuthService(t)

	cases := []auth.RegisterRequest{
		{Email: "not-an-email", Password: "password123", ConfirmPassword: "password123"},
		{Email: "owner@example.com", Password: "short", ConfirmPassword: "short"},
		{Email: "owner@example.com", Password: "password123", ConfirmPassword: "password124"},
	}
	for _, req := range cases {
		_, err := svc.Register(context.Background(), req)
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs, req.Email)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, auth.RegisterRequest{Email: "owner@example.com", Password: "password123", ConfirmPassword: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "owner@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
