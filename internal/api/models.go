package api

import (
	"github.com/google/uuid"

	"github.com/taskward/taskward-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Name                 string `json:"name"                  validate:"required"`
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required,min=8,max=72,eqfield=PasswordConfirmation"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse defines the serialized identity: never the password, never
// the hash.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// CreateTaskRequest defines the payload for task creation.
// IsCompleted is a *bool so that a non-boolean JSON value is a decode-time
// type error (422) rather than a silent coercion.
type CreateTaskRequest struct {
	Name        string `json:"name" validate:"required"`
	IsCompleted *bool  `json:"is_completed"`
}

// UpdateTaskRequest defines the payload for a full task update.
type UpdateTaskRequest struct {
	Name        string `json:"name" validate:"required"`
	IsCompleted *bool  `json:"is_completed"`
}

// CompleteTaskRequest defines the payload for the completion endpoint.
// The field must be present and strictly boolean.
type CompleteTaskRequest struct {
	IsCompleted *bool `json:"is_completed" validate:"required"`
}

// TaskResponse defines the serialized task shape.
type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	IsCompleted bool      `json:"is_completed"`
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Name:        task.Name,
		IsCompleted: task.IsCompleted,
	}
}

// tasksToResponse converts a slice of tasks, returning an empty (not nil)
// slice so the JSON "data" key is always an array.
func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskToResponse(task))
	}
	return out
}

// userToResponse converts a domain.User to a UserResponse.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
