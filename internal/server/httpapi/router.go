package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ishwarya-18/todo-app/internal/server/models"
)

func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.metricsMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeBadRequest, "Method not allowed")
	})

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", s.metrics.handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
	})

	r.Route("/todos", func(r chi.Router) {
		r.Use(s.authenticate, s.requireRole(models.RoleUser))
		r.Get("/", s.handleListTodos)
		r.Post("/", s.handleCreateTodo)
		r.Patch("/{id}", s.handleUpdateTodo)
		r.Delete("/{id}", s.handleDeleteTodo)
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(s.authenticate, s.requireRole(models.RoleAdmin))
		r.Get("/", s.handleListUsers)
		r.Delete("/{id}", s.handleDeleteUser)
		r.Put("/{id}/promote", s.handlePromoteUser)
	})

	return r
}
