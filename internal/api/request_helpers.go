package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/taskward/taskward-api/internal/api/shared"
	"github.com/taskward/taskward-api/internal/platform/logger"
	"github.com/taskward/taskward-api/internal/service/task"
)

// scopeFromRequest derives the ownership scope for a task operation from the
// request context. Requests that passed the authentication middleware carry
// a user ID and get an owner-bound scope; everything else is unscoped.
func scopeFromRequest(r *http.Request) task.Scope {
	if userID, ok := shared.UserIDFromContext(r.Context()); ok {
		return task.ScopedToOwner(userID)
	}
	return task.Unscoped()
}

// pathTaskID extracts and parses the task ID from the URL path.
// An unparseable ID is indistinguishable from a missing task: no task can
// have it, so callers should answer 404.
func pathTaskID(r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// decodeAndValidate decodes the JSON body into req and runs struct
// validation, writing the error response itself on failure. Returns true
// when the request may proceed.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}, fallback *slog.Logger) bool {
	log := logger.FromContextOrDefault(r.Context(), fallback)

	if err := shared.DecodeJSON(r, req); err != nil {
		if fieldErrs, ok := FieldErrors(err); ok {
			shared.RespondWithValidationError(w, r, fieldErrs)
			return false
		}
		log.Debug("invalid request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}

	if err := shared.Validate.Struct(req); err != nil {
		if fieldErrs, ok := FieldErrors(err); ok {
			shared.RespondWithValidationError(w, r, fieldErrs)
			return false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Validation error", err)
		return false
	}

	return true
}
