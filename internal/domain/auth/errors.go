package auth

import "errors"

var (
	ErrFarmerNotFound     = errors.New("farmer not found")
	ErrEmailAlreadyInUse  = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
