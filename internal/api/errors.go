package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/service/auth"
	"github.com/taskward/taskward-api/internal/service/task"
	"github.com/taskward/taskward-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// This prevents leaking internal error types or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, task.ErrNotOwned),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Validation errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusUnprocessableEntity

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the error.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"
	case errors.Is(err, task.ErrNotOwned), errors.Is(err, domain.ErrUnauthorized):
		return "This action is unauthorized."
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found."
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found."
	case store.IsNotFoundError(err):
		return "Resource not found."
	case store.IsDuplicateError(err):
		return "Resource already exists."
	default:
		return "An unexpected error occurred"
	}
}

// FieldErrors converts a request decode/validation error into per-field
// messages for a 422 response. The second return value reports whether the
// error was a recognized validation failure; anything else (malformed JSON,
// read errors) should be handled as a plain bad request.
func FieldErrors(err error) (map[string][]string, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			field := fe.Field()
			out[field] = append(out[field], fieldMessage(field, fe))
		}
		return out, true
	}

	// A JSON value of the wrong type for a typed field, e.g. "yes" for a
	// *bool. The offending field name comes from the decoder.
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return map[string][]string{
			typeErr.Field: {typeMessage(typeErr)},
		}, true
	}

	return nil, false
}

// fieldMessage renders one validator failure as a client-facing message.
func fieldMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", field, fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("The %s field confirmation does not match.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

// typeMessage renders a JSON type mismatch as a client-facing message.
func typeMessage(typeErr *json.UnmarshalTypeError) string {
	if typeErr.Type != nil && typeErr.Type.Kind().String() == "bool" {
		return fmt.Sprintf("The %s field must be true or false.", typeErr.Field)
	}
	return fmt.Sprintf("The %s field is invalid.", typeErr.Field)
}
