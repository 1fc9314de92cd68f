// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bazaar/config"
	"bazaar/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Token issuance lives in the auth collaborator; this side only verifies
// access tokens and extracts the caller identity.
type jwtService struct {
	accessSecret string // Secret key shared with the auth collaborator.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
	}, nil
}

// ValidateToken checks the validity of an access token and returns the
// identity it carries.
func (s *jwtService) ValidateToken(tokenString string) (*service.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, jwt.ErrTokenInvalidSubject
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	userType, _ := claims["user_type"].(string)
	if userType != service.UserTypeBuyer && userType != service.UserTypeSeller {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &service.Identity{
		UserID:   userID,
		UserType: userType,
	}, nil
}

// signAccessToken creates an access token the way the auth collaborator
// does. Kept here for tests and local development tooling.
func (s *jwtService) signAccessToken(userID uuid.UUID, userType string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":       userID.String(),
		"user_type": userType,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.accessSecret))
}
