package domain_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskward/taskward-api/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("Alice", "Alice@Example.COM ", "password123")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email, "emails are normalized to lowercase")
	assert.Equal(t, "password123", user.Password)
	assert.Empty(t, user.HashedPassword)
}

func TestNewUserValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{"empty name", "", "a@example.com", "password123", domain.ErrEmptyUserName},
		{"empty email", "Alice", "", "password123", domain.ErrEmptyEmail},
		{"email without at", "Alice", "example.com", "password123", domain.ErrInvalidEmail},
		{"email without domain dot", "Alice", "a@example", "password123", domain.ErrInvalidEmail},
		{"email with trailing at", "Alice", "a@", "password123", domain.ErrInvalidEmail},
		{"empty password", "Alice", "a@example.com", "", domain.ErrEmptyPassword},
		{"short password", "Alice", "a@example.com", "1234567", domain.ErrPasswordTooShort},
		{"long password", "Alice", "a@example.com", strings.Repeat("p", 73), domain.ErrPasswordTooLong},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user, err := domain.NewUser(tc.userName, tc.email, tc.password)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, user)
		})
	}
}

func TestUserValidateStoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the store has no plaintext password, only the hash.
	user := &domain.User{
		ID:             uuid.New(),
		Name:           "Alice",
		Email:          "alice@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), domain.ErrEmptyPassword)
}

func TestUserJSONHidesCredentials(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	user.HashedPassword = "some-hash"

	// The json tags on both credential fields are "-".
	assert.NotContains(t, jsonString(t, user), "password123")
	assert.NotContains(t, jsonString(t, user), "some-hash")
}

func jsonString(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
