package auth

import (
	"context"
	"net/http"
)

// AuthService defines farmer account and session logic. The refresh token
// travels as an http-only cookie built by the service.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, *http.Cookie, error)

	Login(ctx context.Context, req LoginRequest) (TokenResponse, *http.Cookie, error)

	// Refresh exchanges a valid refresh token for a fresh access token and a
	// rotated refresh token.
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, *http.Cookie, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
