package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authPayload mirrors the auth response shape. Unlike the task endpoints,
// auth responses are not wrapped in a data envelope: access_token and user
// sit at the top level.
type authPayload struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

func decodeAuth(t *testing.T, rec *httptest.ResponseRecorder) authPayload {
	t.Helper()

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	require.Contains(t, raw, "access_token", "access_token must be a top-level key")
	require.Contains(t, raw, "user", "user must be a top-level key")
	require.NotContains(t, raw, "data", "auth responses are not enveloped")

	var payload authPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestRegister(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.doRequest(t, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"password123","password_confirmation":"password123"}`, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	payload := decodeAuth(t, rec)
	assert.NotEmpty(t, payload.AccessToken)
	assert.Equal(t, "Alice", payload.User.Name)
	assert.Equal(t, "alice@example.com", payload.User.Email)
	assert.NotContains(t, rec.Body.String(), "password123",
		"responses must never carry the plaintext password")

	stored, ok := env.users.Users["alice@example.com"]
	require.True(t, ok)
	assert.NotEqual(t, "password123", stored.HashedPassword)

	// The issued token works immediately.
	rec = env.doRequest(t, http.MethodGet, "/api/user", "", payload.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.createUser(t, "alice@example.com", "password123")

	rec := env.doRequest(t, http.MethodPost, "/api/auth/register",
		`{"name":"Imposter","email":"alice@example.com","password":"different12","password_confirmation":"different12"}`, "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	payload := decodeValidation(t, rec)
	assert.Equal(t, []string{"The email has already been taken."}, payload.Errors["email"])
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "missing email",
			body:  `{"name":"A","password":"password123","password_confirmation":"password123"}`,
			field: "email",
		},
		{
			name:  "invalid email",
			body:  `{"name":"A","email":"not-an-email","password":"password123","password_confirmation":"password123"}`,
			field: "email",
		},
		{
			name:  "short password",
			body:  `{"name":"A","email":"a@example.com","password":"short","password_confirmation":"short"}`,
			field: "password",
		},
		{
			name:  "confirmation mismatch",
			body:  `{"name":"A","email":"a@example.com","password":"password123","password_confirmation":"password456"}`,
			field: "password",
		},
		{
			name:  "missing name",
			body:  `{"email":"a@example.com","password":"password123","password_confirmation":"password123"}`,
			field: "name",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.doRequest(t, http.MethodPost, "/api/auth/register", tc.body, "")
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			payload := decodeValidation(t, rec)
			assert.Contains(t, payload.Errors, tc.field)
		})
	}

	assert.Empty(t, env.users.Users, "no user may be created from an invalid payload")
}

func TestLogin(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	user, _ := env.createUser(t, "alice@example.com", "password123")

	rec := env.doRequest(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"password123"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	payload := decodeAuth(t, rec)
	assert.NotEmpty(t, payload.AccessToken)
	assert.Equal(t, user.ID.String(), payload.User.ID)

	rec = env.doRequest(t, http.MethodGet, "/api/user", "", payload.AccessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	env.createUser(t, "alice@example.com", "password123")

	rec := env.doRequest(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrongpassword"}`, "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	payload := decodeValidation(t, rec)
	assert.Equal(t, []string{"These credentials do not match our records."}, payload.Errors["email"])
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.doRequest(t, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"password123"}`, "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	payload := decodeValidation(t, rec)
	assert.Equal(t, []string{"These credentials do not match our records."}, payload.Errors["email"],
		"unknown email and wrong password must be indistinguishable")
}

func TestLogoutRevokesToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	_, token := env.createUser(t, "alice@example.com", "password123")

	// Token works before logout.
	rec := env.doRequest(t, http.MethodGet, "/api/user", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doRequest(t, http.MethodPost, "/api/auth/logout", "", token)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The signature is still valid but the record is gone.
	rec = env.doRequest(t, http.MethodGet, "/api/user", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.doRequest(t, http.MethodPost, "/api/auth/logout", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRequiresAuthentication(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.doRequest(t, http.MethodPost, "/api/auth/logout", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCurrentUser(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	user, token := env.createUser(t, "alice@example.com", "password123")

	rec := env.doRequest(t, http.MethodGet, "/api/user", "", token)

	require.Equal(t, http.StatusOK, rec.Code)
	var identity struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &identity))
	assert.Equal(t, user.ID.String(), identity.ID)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.NotContains(t, rec.Body.String(), `"data"`,
		"the identity is serialized at the top level, not enveloped")
	assert.NotContains(t, rec.Body.String(), user.HashedPassword)
}

func TestCurrentUserUnauthenticated(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	rec := env.doRequest(t, http.MethodGet, "/api/user", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
