package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID   = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
	ErrEmptyTaskName = fmt.Errorf("%w: task name cannot be empty", ErrValidation)
)

// Task represents one unit of work belonging to at most one user.
// OwnerID is nullable: tasks created through the unscoped API tier have no
// owner. Once set, the owner never changes; there is no setter for it.
type Task struct {
	ID          uuid.UUID     `json:"id"`
	OwnerID     uuid.NullUUID `json:"owner_id"`
	Name        string        `json:"name"`
	IsCompleted bool          `json:"is_completed"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewTask creates an ownerless Task with the given name.
// It generates a new UUID for the task ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewTask(name string) (*Task, error) {
	task := &Task{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// NewOwnedTask creates a Task owned by the given user.
// Ownership is established here, exactly once.
func NewOwnedTask(ownerID uuid.UUID, name string) (*Task, error) {
	task, err := NewTask(name)
	if err != nil {
		return nil, err
	}

	if ownerID == uuid.Nil {
		return nil, ErrEmptyUserID
	}
	task.OwnerID = uuid.NullUUID{UUID: ownerID, Valid: true}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.Name == "" {
		return ErrEmptyTaskName
	}

	return nil
}

// Rename replaces the task name and updates the UpdatedAt timestamp.
// Returns ErrEmptyTaskName if the new name is blank.
func (t *Task) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyTaskName
	}

	t.Name = name
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// SetCompleted sets the completion flag and updates the UpdatedAt timestamp.
func (t *Task) SetCompleted(completed bool) {
	t.IsCompleted = completed
	t.UpdatedAt = time.Now().UTC()
}

// IsOwnedBy reports whether the task is owned by the given user.
// An ownerless task is owned by nobody.
func (t *Task) IsOwnedBy(userID uuid.UUID) bool {
	return t.OwnerID.Valid && t.OwnerID.UUID == userID
}
