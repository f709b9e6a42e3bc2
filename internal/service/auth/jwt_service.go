// Package auth provides token issuance and password verification.
//
// Access tokens are HMAC-signed JWTs whose jti is also persisted server-side
// (see store.TokenStore), so a token is only accepted while both the
// signature verifies and the record still exists. Deleting the record at
// logout revokes the token immediately.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the user.
	// Returns the token string together with its claims so the caller can
	// persist the token record (jti, expiry).
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, *Claims, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns an error if validation fails (expired, invalid
	// signature, malformed, etc.). Revocation is checked separately against
	// the token store; this method only verifies the token itself.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the JWT tokens.
// It extends standard JWT registered claims with application-specific fields.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`

	// ID is the token's jti claim and the primary key of its server-side
	// record.
	ID uuid.UUID `json:"jti,omitempty"`
}
