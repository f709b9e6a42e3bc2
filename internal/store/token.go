package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskward/taskward-api/internal/domain"
)

// TokenStore defines the interface for auth token record persistence.
// A token is live while its record exists; deleting the record revokes it.
type TokenStore interface {
	// Create saves the record for a newly issued token.
	Create(ctx context.Context, token *domain.AuthToken) error

	// GetByID retrieves a token record by its ID (the token's jti claim).
	// Returns ErrTokenNotFound if the record does not exist or was revoked.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AuthToken, error)

	// Delete removes a token record, revoking the token.
	// Returns ErrTokenNotFound if the record does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes records whose expiry has passed. Expired tokens
	// already fail signature validation, so this is purely housekeeping.
	// Returns the number of records removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
