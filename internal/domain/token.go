package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for AuthToken
var (
	ErrEmptyTokenID     = fmt.Errorf("%w: token ID cannot be empty", ErrValidation)
	ErrEmptyTokenUserID = fmt.Errorf("%w: token user ID cannot be empty", ErrValidation)
	ErrZeroTokenExpiry  = fmt.Errorf("%w: token expiry cannot be zero", ErrValidation)
)

// AuthToken is the server-side record of an issued access token.
// The ID mirrors the token's jti claim; deleting the record revokes the
// token even though its signature would still verify. This is what makes
// logout effective.
type AuthToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAuthToken creates the persistence record for a freshly issued token.
func NewAuthToken(id, userID uuid.UUID, expiresAt time.Time) (*AuthToken, error) {
	token := &AuthToken{
		ID:        id,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}

	if err := token.Validate(); err != nil {
		return nil, err
	}

	return token, nil
}

// Validate checks if the AuthToken has valid data.
func (t *AuthToken) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTokenID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTokenUserID
	}

	if t.ExpiresAt.IsZero() {
		return ErrZeroTokenExpiry
	}

	return nil
}
