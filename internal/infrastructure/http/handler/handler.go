// Package handler adapts HTTP requests to application service calls.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/innkeep/backoffice/internal/application/directory"
	"github.com/innkeep/backoffice/internal/application/housekeeping"
)

// Handler carries the application services behind the REST API.
type Handler struct {
	tasks     *housekeeping.Service
	directory *directory.Service
}

// New creates the API handler.
func New(tasks *housekeeping.Service, dir *directory.Service) *Handler {
	return &Handler{tasks: tasks, directory: dir}
}

// NewRouter mounts all API routes on a fresh chi router. Both production code
// and tests go through this function so they exercise identical routing.
func NewRouter(tasks *housekeeping.Service, dir *directory.Service) http.Handler {
	h := New(tasks, dir)

	r := chi.NewRouter()

	r.Route("/housekeeping-tasks", func(r chi.Router) {
		r.Get("/", h.ListTasks)
		r.Post("/", h.CreateTask)
		r.Get("/{id}", h.GetTask)
		r.Put("/{id}", h.UpdateTask)
		r.Delete("/{id}", h.DeleteTask)
	})

	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", h.ListRooms)
		r.Post("/", h.CreateRoom)
		r.Put("/{id}", h.UpdateRoom)
		r.Delete("/{id}", h.DeleteRoom)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Put("/{id}", h.UpdateUser)
		r.Delete("/{id}", h.DeleteUser)
	})

	return r
}
