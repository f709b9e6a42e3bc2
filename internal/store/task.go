package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/taskward/taskward-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// Listing methods return tasks in creation order. Mutations are single-row
// writes; concurrent writers are not reconciled beyond the row-level
// atomicity the database provides (last write wins).
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	// Returns ErrInvalidEntity if the owner references a missing user.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ListAll retrieves every task regardless of ownership, in creation order.
	ListAll(ctx context.Context) ([]*domain.Task, error)

	// ListByOwner retrieves the tasks owned by the given user, in creation
	// order. Ownerless tasks are never included.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)

	// Update saves the task's mutable fields (name, completion flag,
	// updated_at). The owner column is never written after creation.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
