package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/innkeep/backoffice/internal/domain"
	"github.com/innkeep/backoffice/internal/infrastructure/http/response"
)

type createRoomRequest struct {
	Number   string `json:"number"`
	Floor    int    `json:"floor"`
	RoomType string `json:"roomType"`
	Status   string `json:"status"`
}

type updateRoomRequest struct {
	Number   *string `json:"number"`
	Floor    *int    `json:"floor"`
	RoomType *string `json:"roomType"`
	Status   *string `json:"status"`
}

// ListRooms handles GET /rooms.
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.directory.FindRooms(r.Context())
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, map[string]any{"rooms": mapRoomsToDTO(rooms)})
}

// CreateRoom handles POST /rooms.
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	room := &domain.Room{
		Number:   req.Number,
		Floor:    req.Floor,
		RoomType: req.RoomType,
		Status:   req.Status,
	}

	created, err := h.directory.CreateRoom(r.Context(), room)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.Created(w, mapRoomToDTO(created))
}

// UpdateRoom handles PUT /rooms/{id}.
func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req updateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	updated, err := h.directory.UpdateRoom(r.Context(), domain.UpdateRoomParams{
		RoomID:   chi.URLParam(r, "id"),
		Number:   req.Number,
		Floor:    req.Floor,
		RoomType: req.RoomType,
		Status:   req.Status,
	})
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.OK(w, mapRoomToDTO(updated))
}

// DeleteRoom handles DELETE /rooms/{id}. The room's tasks are cascade-deleted.
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := h.directory.DeleteRoom(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.NoContent(w)
}
