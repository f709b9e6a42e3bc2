package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/taskward/taskward-api/internal/api/shared"
	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/platform/logger"
	"github.com/taskward/taskward-api/internal/service/auth"
	"github.com/taskward/taskward-api/internal/store"
)

// AuthHandler handles authentication-related HTTP requests: registration,
// login, logout, and the current-user lookup.
type AuthHandler struct {
	users      store.UserStore
	tokens     store.TokenStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	users store.UserStore,
	tokens store.TokenStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) *AuthHandler {
	if users == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("user store cannot be nil for AuthHandler")
	}
	if tokens == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("token store cannot be nil for AuthHandler")
	}
	if jwtService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("JWT service cannot be nil for AuthHandler")
	}
	if hasher == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("password hasher cannot be nil for AuthHandler")
	}
	if verifier == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("password verifier cannot be nil for AuthHandler")
	}
	if log == nil {
		log = slog.Default()
	}

	return &AuthHandler{
		users:      users,
		tokens:     tokens,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
		logger:     log.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /auth/register requests. A successful registration
// immediately issues an access token, so the new user is logged in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	var req RegisterRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	user, err := domain.NewUser(req.Name, req.Email, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Invalid registration data", err)
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to register user", err)
		return
	}
	user.HashedPassword = hashed

	if err := h.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithValidationError(w, r, map[string][]string{
				"email": {"The email has already been taken."},
			})
			return
		}
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to register user", err)
		return
	}

	tokenString, err := h.issueToken(ctx, user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))

	// Auth responses carry access_token and user at the top level, without
	// the data envelope the task endpoints use.
	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		AccessToken: tokenString,
		User:        userToResponse(user),
	})
}

// Login handles POST /auth/login requests. An unknown email and a wrong
// password produce the same response, so the endpoint does not reveal which
// accounts exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	var req LoginRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	user, err := h.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			h.respondInvalidCredentials(w, r)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to log in", err)
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.Password); err != nil {
		log.Debug("password mismatch", slog.String("user_id", user.ID.String()))
		h.respondInvalidCredentials(w, r)
		return
	}

	tokenString, err := h.issueToken(ctx, user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to issue token", err)
		return
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		AccessToken: tokenString,
		User:        userToResponse(user),
	})
}

// Logout handles POST /auth/logout requests. Deleting the token record
// revokes the presented token; the signature stays valid but the middleware
// will no longer find the record.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	tokenID, ok := shared.TokenIDFromContext(ctx)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	if err := h.tokens.Delete(ctx, tokenID); err != nil && !errors.Is(err, store.ErrTokenNotFound) {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to log out", err)
		return
	}

	log.Info("user logged out", slog.String("token_id", tokenID.String()))

	w.WriteHeader(http.StatusNoContent)
}

// CurrentUser handles GET /user requests.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := shared.UserIDFromContext(ctx)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// issueToken generates a signed access token for the user and persists its
// record so it can later be revoked.
func (h *AuthHandler) issueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	tokenString, claims, err := h.jwtService.GenerateToken(ctx, userID)
	if err != nil {
		return "", err
	}

	record, err := domain.NewAuthToken(claims.ID, userID, claims.ExpiresAt)
	if err != nil {
		return "", err
	}
	if err := h.tokens.Create(ctx, record); err != nil {
		return "", err
	}

	return tokenString, nil
}

// respondInvalidCredentials writes the failed-login response. The failure is
// attributed to the email field regardless of which credential was wrong.
func (h *AuthHandler) respondInvalidCredentials(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithValidationError(w, r, map[string][]string{
		"email": {"These credentials do not match our records."},
	})
}
