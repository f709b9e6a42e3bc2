package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/taskward/taskward-api/internal/api/shared"
	"github.com/taskward/taskward-api/internal/domain"
	"github.com/taskward/taskward-api/internal/service/task"
)

// TaskHandler handles task-related HTTP requests for both API tiers. The
// tier difference is carried entirely by the scope derived per request; the
// handler methods themselves are identical for v1 and v2 routes.
type TaskHandler struct {
	service *task.Service
	logger  *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(service *task.Service, log *slog.Logger) *TaskHandler {
	if service == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("task service cannot be nil for TaskHandler")
	}
	if log == nil {
		log = slog.Default()
	}

	return &TaskHandler{
		service: service,
		logger:  log.With(slog.String("component", "task_handler")),
	}
}

// List handles GET /tasks requests.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.List(r.Context(), scopeFromRequest(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, tasksToResponse(tasks))
}

// Create handles POST /tasks requests.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	input := task.CreateInput{Name: req.Name}
	if req.IsCompleted != nil {
		input.IsCompleted = *req.IsCompleted
	}

	created, err := h.service.Create(r.Context(), scopeFromRequest(r), input)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, taskToResponse(created))
}

// Get handles GET /tasks/{id} requests.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathTaskID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found.")
		return
	}

	found, err := h.service.Get(r.Context(), scopeFromRequest(r), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, taskToResponse(found))
}

// Update handles PUT /tasks/{id} requests.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathTaskID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found.")
		return
	}

	var req UpdateTaskRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	updated, err := h.service.Update(r.Context(), scopeFromRequest(r), id, task.UpdateInput{
		Name:        req.Name,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, taskToResponse(updated))
}

// Complete handles PATCH /tasks/{id}/complete requests.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathTaskID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found.")
		return
	}

	var req CompleteTaskRequest
	if !decodeAndValidate(w, r, &req, h.logger) {
		return
	}

	updated, err := h.service.SetCompletion(r.Context(), scopeFromRequest(r), id, *req.IsCompleted)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, taskToResponse(updated))
}

// Delete handles DELETE /tasks/{id} requests.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathTaskID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found.")
		return
	}

	if err := h.service.Delete(r.Context(), scopeFromRequest(r), id); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respondServiceError maps a task service error onto the wire. Denials are a
// bare 403 carrying no task fields; a name rejected by the domain after
// decode (whitespace-only) surfaces as the same 422 the validator produces.
func (h *TaskHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrEmptyTaskName) {
		shared.RespondWithValidationError(w, r, map[string][]string{
			"name": {"The name field is required."},
		})
		return
	}

	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
