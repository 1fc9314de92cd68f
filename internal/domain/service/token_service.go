package service

import (
	"github.com/google/uuid"
)

// Identity is the caller identity resolved by the external auth
// collaborator: who the user is and whether they act as buyer or seller.
type Identity struct {
	UserID   uuid.UUID
	UserType string
}

// UserType values carried in access tokens.
const (
	UserTypeBuyer  = "buyer"
	UserTypeSeller = "seller"
)

// TokenService defines the interface for verifying access tokens issued
// by the auth collaborator. Token issuance and session management are
// out of scope for this core.
type TokenService interface {
	// ValidateToken checks the validity of a token string and returns the
	// identity it carries.
	ValidateToken(tokenString string) (*Identity, error)
}
