package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/agrilabs/wms-backend-go/internal/domain/auth"
	"github.com/agrilabs/wms-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	farmerRepo auth.FarmerRepository
	jwtService jwt.Service
}

func NewAuthService(farmerRepo auth.FarmerRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		farmerRepo: farmerRepo,
		jwtService: jwtService,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, *http.Cookie, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, nil, err
	}

	if _, err := s.farmerRepo.GetByEmail(ctx, req.Email); err == nil {
		return auth.TokenResponse{}, nil, auth.ErrEmailAlreadyInUse
	} else if !errors.Is(err, auth.ErrFarmerNotFound) {
		return auth.TokenResponse{}, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	farmer, err := s.farmerRepo.Create(ctx, auth.Farmer{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return auth.TokenResponse{}, nil, fmt.Errorf("failed to create farmer: %w", err)
	}

	return s.issueTokens(farmer)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, *http.Cookie, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, nil, err
	}

	farmer, err := s.farmerRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrFarmerNotFound) {
			return auth.TokenResponse{}, nil, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(farmer.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, nil, auth.ErrInvalidCredentials
	}

	return s.issueTokens(farmer)
}

func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, *http.Cookie, error) {
	farmerID, err := s.validateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, nil, err
	}

	farmer, err := s.farmerRepo.GetByID(ctx, farmerID)
	if err != nil {
		if errors.Is(err, auth.ErrFarmerNotFound) {
			return auth.TokenResponse{}, nil, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, nil, err
	}

	// rotate: the old token is dead as soon as a new pair exists
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(farmer)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.validateRefreshToken(refreshToken); err != nil {
		return err
	}

	s.jwtService.RevokeToken(refreshToken)
	return nil
}

func (s *AuthServiceImpl) issueTokens(farmer auth.Farmer) (auth.TokenResponse, *http.Cookie, error) {
	accessToken, _, err := s.jwtService.GenerateAccessToken(farmer.ID, farmer.Email)
	if err != nil {
		return auth.TokenResponse{}, nil, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(farmer.ID)
	if err != nil {
		return auth.TokenResponse{}, nil, fmt.Errorf("failed to create refresh token: %w", err)
	}

	response := auth.TokenResponse{
		AccessToken: accessToken,
		Farmer: auth.FarmerResponse{
			ID:    farmer.ID,
			Name:  farmer.Name,
			Email: farmer.Email,
		},
	}

	return response, s.jwtService.RefreshTokenCookie(refreshToken, refreshExpiresAt), nil
}

func (s *AuthServiceImpl) validateRefreshToken(refreshToken string) (farmerID string, err error) {
	if refreshToken == "" || s.jwtService.IsTokenRevoked(refreshToken) {
		return "", auth.ErrInvalidToken
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	claims, err := token.AsMap(context.Background())
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return "", auth.ErrInvalidToken
	}
	farmerID, _ = claims["farmer_id"].(string)
	if farmerID == "" {
		return "", auth.ErrInvalidToken
	}

	return farmerID, nil
}
