package auth

import "context"

type AuthService interface {
	// Register creates an owner account and signs it in.
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)

	// Login checks the password and issues an access token.
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
}
