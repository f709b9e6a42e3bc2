// Package task implements the task lifecycle controller.
//
// One controller serves both API tiers; the difference between them is
// carried entirely by the Scope argument. Every operation is a pure function
// of (scope, payload, store): no ambient request state is consulted.
package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taskward/taskward-api/internal/authz"
	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/platform/logger"
	"github.com/taskward/taskward-api/internal/store"
)

// CreateInput carries the validated payload for task creation.
type CreateInput struct {
	Name        string
	IsCompleted bool
}

// UpdateInput carries the validated payload for a full task update.
// A nil IsCompleted leaves the stored completion flag unchanged.
type UpdateInput struct {
	Name        string
	IsCompleted *bool
}

// Service orchestrates validation, authorization, and persistence for every
// task operation.
type Service struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewService creates a task Service backed by the given store.
// If log is nil, the default logger is used.
func NewService(tasks store.TaskStore, log *slog.Logger) *Service {
	if tasks == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("task store cannot be nil for task.Service")
	}

	if log == nil {
		log = slog.Default()
	}

	return &Service{
		tasks:  tasks,
		logger: log.With(slog.String("component", "task_service")),
	}
}

// List returns tasks in creation order: all tasks under the unscoped
// variant, or only the bound identity's tasks under the owner scope.
func (s *Service) List(ctx context.Context, scope Scope) ([]*domain.Task, error) {
	if ownerID, ok := scope.OwnerID(); ok {
		return s.tasks.ListByOwner(ctx, ownerID)
	}
	return s.tasks.ListAll(ctx)
}

// Create validates and persists a new task. Under the owner scope the task
// is created with the identity as its owner; unscoped tasks have no owner.
func (s *Service) Create(ctx context.Context, scope Scope, input CreateInput) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var task *domain.Task
	var err error
	if ownerID, ok := scope.OwnerID(); ok {
		task, err = domain.NewOwnedTask(ownerID, input.Name)
	} else {
		task, err = domain.NewTask(input.Name)
	}
	if err != nil {
		return nil, err
	}

	if input.IsCompleted {
		task.SetCompleted(true)
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return nil, err
	}

	log.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.Bool("owned", task.OwnerID.Valid))
	return task, nil
}

// Get returns the task with the given ID, subject to the scope's view policy.
func (s *Service) Get(ctx context.Context, scope Scope, id uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, scope, task, authz.CanView); err != nil {
		return nil, err
	}

	return task, nil
}

// Update applies full-replacement semantics: the name is replaced, and the
// completion flag is replaced when provided.
func (s *Service) Update(ctx context.Context, scope Scope, id uuid.UUID, input UpdateInput) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, scope, task, authz.CanMutate); err != nil {
		return nil, err
	}

	if err := task.Rename(input.Name); err != nil {
		return nil, err
	}
	if input.IsCompleted != nil {
		task.SetCompleted(*input.IsCompleted)
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// SetCompletion sets only the completion flag.
func (s *Service) SetCompletion(ctx context.Context, scope Scope, id uuid.UUID, completed bool) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, scope, task, authz.CanMutate); err != nil {
		return nil, err
	}

	task.SetCompleted(completed)

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Delete removes the task, subject to the scope's mutation policy.
func (s *Service) Delete(ctx context.Context, scope Scope, id uuid.UUID) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.authorize(ctx, scope, task, authz.CanMutate); err != nil {
		return err
	}

	return s.tasks.Delete(ctx, task.ID)
}

// authorize runs the given policy check for owner-bound scopes. The unscoped
// variant performs no ownership checks at all; that tier's lack of
// enforcement is preserved behavior, not an oversight to correct here.
func (s *Service) authorize(
	ctx context.Context,
	scope Scope,
	task *domain.Task,
	check func(*authz.Identity, *domain.Task) authz.Decision,
) error {
	identity := scope.identity()
	if identity == nil {
		return nil
	}

	if decision := check(identity, task); !decision.Allowed() {
		log := logger.FromContextOrDefault(ctx, s.logger)
		log.Debug("task access denied",
			slog.String("task_id", task.ID.String()),
			slog.String("user_id", identity.UserID.String()),
			slog.String("decision", decision.String()))
		return ErrNotOwned
	}

	return nil
}
