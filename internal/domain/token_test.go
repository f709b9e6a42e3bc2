package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskward/taskward-api/internal/domain"
)

func TestNewAuthToken(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	userID := uuid.New()
	expiry := time.Now().UTC().Add(time.Hour)

	token, err := domain.NewAuthToken(id, userID, expiry)
	require.NoError(t, err)

	assert.Equal(t, id, token.ID)
	assert.Equal(t, userID, token.UserID)
	assert.Equal(t, expiry, token.ExpiresAt)
	assert.False(t, token.CreatedAt.IsZero())
}

func TestNewAuthTokenValidation(t *testing.T) {
	t.Parallel()

	expiry := time.Now().UTC().Add(time.Hour)

	tests := []struct {
		name    string
		id      uuid.UUID
		userID  uuid.UUID
		expiry  time.Time
		wantErr error
	}{
		{"nil id", uuid.Nil, uuid.New(), expiry, domain.ErrEmptyTokenID},
		{"nil user id", uuid.New(), uuid.Nil, expiry, domain.ErrEmptyTokenUserID},
		{"zero expiry", uuid.New(), uuid.New(), time.Time{}, domain.ErrZeroTokenExpiry},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, err := domain.NewAuthToken(tc.id, tc.userID, tc.expiry)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, token)
		})
	}
}
