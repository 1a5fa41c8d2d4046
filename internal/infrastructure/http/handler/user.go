package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/innkeep/backoffice/internal/domain"
	"github.com/innkeep/backoffice/internal/infrastructure/http/response"
)

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// ListUsers handles GET /users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.directory.FindUsers(r.Context())
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, map[string]any{"users": mapUsersToDTO(users)})
}

// CreateUser handles POST /users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	created, err := h.directory.CreateUser(r.Context(), &domain.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.Created(w, mapUserToDTO(created))
}

// UpdateUser handles PUT /users/{id}.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	updated, err := h.directory.UpdateUser(r.Context(), domain.UpdateUserParams{
		UserID: chi.URLParam(r, "id"),
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
	})
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.OK(w, mapUserToDTO(updated))
}

// DeleteUser handles DELETE /users/{id}. Rejected with 409 while tasks still
// reference the user.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.directory.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.NoContent(w)
}
