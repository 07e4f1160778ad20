package http

import (
	"context"

	"github.com/agrilabs/wms-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// farmerIDFromContext reads the authenticated farmer id from the verified
// token claims.
func farmerIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	farmerID, ok := claims["farmer_id"].(string)
	if !ok || farmerID == "" {
		return "", auth.ErrInvalidToken
	}

	return farmerID, nil
}
