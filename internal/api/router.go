package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	custommiddleware "github.com/taskward/taskward-api/internal/api/middleware"
	"github.com/taskward/taskward-api/internal/api/shared"
)

// NewRouter assembles the full route table.
//
// Two task tiers share one handler: /api/v1 routes are open and operate
// unscoped, /api/v2 routes sit behind bearer authentication and operate
// scoped to the authenticated owner. Auth endpoints live under /api/auth.
func NewRouter(
	taskHandler *TaskHandler,
	authHandler *AuthHandler,
	authMiddleware *custommiddleware.AuthMiddleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(custommiddleware.TraceMiddleware)
	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Open task tier: no identity, no ownership checks
		r.Get("/v1/tasks", taskHandler.List)
		r.Post("/v1/tasks", taskHandler.Create)
		r.Get("/v1/tasks/{id}", taskHandler.Get)
		r.Put("/v1/tasks/{id}", taskHandler.Update)
		r.Patch("/v1/tasks/{id}/complete", taskHandler.Complete)
		r.Delete("/v1/tasks/{id}", taskHandler.Delete)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/user", authHandler.CurrentUser)

			// Owner-scoped task tier
			r.Get("/v2/tasks", taskHandler.List)
			r.Post("/v2/tasks", taskHandler.Create)
			r.Get("/v2/tasks/{id}", taskHandler.Get)
			r.Put("/v2/tasks/{id}", taskHandler.Update)
			r.Patch("/v2/tasks/{id}/complete", taskHandler.Complete)
			r.Delete("/v2/tasks/{id}", taskHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
