package usecase

import (
	"retrack/internal/domain/auth"
	"retrack/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (auth.Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (auth.Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return auth.Identity{}, err
	}

	identity, err := auth.NewIdentity(claims.Subject, claims.Email, claims.Role)
	if err != nil {
		return auth.Identity{}, jwt.ErrInvalidToken
	}
	return identity, nil
}
