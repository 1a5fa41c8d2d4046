package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/innkeep/backoffice/internal/domain"
	"github.com/innkeep/backoffice/internal/infrastructure/http/response"
	"github.com/innkeep/backoffice/internal/ptr"
)

// createTaskRequest is the POST /housekeeping-tasks body: task fields minus id.
type createTaskRequest struct {
	RoomID         string  `json:"roomId"`
	AssignedUserID string  `json:"assignedUserId"`
	TaskDate       string  `json:"taskDate"`
	TaskType       string  `json:"taskType"`
	Priority       string  `json:"priority"`
	Status         string  `json:"status"`
	Notes          *string `json:"notes"`
}

// updateTaskRequest is the PUT /housekeeping-tasks/{id} body. Absent fields
// are left untouched, so status-only and date-only patches work.
type updateTaskRequest struct {
	RoomID         *string `json:"roomId"`
	AssignedUserID *string `json:"assignedUserId"`
	TaskDate       *string `json:"taskDate"`
	TaskType       *string `json:"taskType"`
	Priority       *string `json:"priority"`
	Status         *string `json:"status"`
	Notes          *string `json:"notes"`
}

// ListTasks handles GET /housekeeping-tasks?date=&status=&userId=.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	var params domain.ListTasksParams

	query := r.URL.Query()
	if v := query.Get("date"); v != "" {
		date, err := domain.NewDate(v)
		if err != nil {
			response.FromDomainError(w, r, err)
			return
		}
		params.Date = &date
	}
	if v := query.Get("status"); v != "" {
		status, err := domain.NewTaskStatus(v)
		if err != nil {
			response.FromDomainError(w, r, err)
			return
		}
		params.Status = &status
	}
	if v := query.Get("userId"); v != "" {
		params.AssignedUserID = &v
	}

	tasks, err := h.tasks.FindTasks(r.Context(), params)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.OK(w, map[string]any{"tasks": mapTasksToDTO(tasks)})
}

// GetTask handles GET /housekeeping-tasks/{id}.
func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.tasks.GetTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.OK(w, mapTaskToDTO(task))
}

// CreateTask handles POST /housekeeping-tasks.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	task := &domain.Task{
		RoomID:         req.RoomID,
		AssignedUserID: req.AssignedUserID,
		TaskType:       domain.TaskType(req.TaskType),
		Priority:       domain.TaskPriority(req.Priority),
		Status:         domain.TaskStatus(req.Status),
		Notes:          req.Notes,
	}

	if req.TaskDate != "" {
		date, err := domain.NewDate(req.TaskDate)
		if err != nil {
			response.FromDomainError(w, r, err)
			return
		}
		task.TaskDate = date
	}

	created, err := h.tasks.CreateTask(r.Context(), task)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.Created(w, mapTaskToDTO(created))
}

// UpdateTask handles PUT /housekeeping-tasks/{id}.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON")
		return
	}

	params := domain.UpdateTaskParams{
		TaskID:         chi.URLParam(r, "id"),
		RoomID:         req.RoomID,
		AssignedUserID: req.AssignedUserID,
		Notes:          req.Notes,
	}

	if req.TaskDate != nil {
		date, err := domain.NewDate(*req.TaskDate)
		if err != nil {
			response.FromDomainError(w, r, err)
			return
		}
		params.TaskDate = &date
	}
	if req.TaskType != nil {
		params.TaskType = ptr.To(domain.TaskType(*req.TaskType))
	}
	if req.Priority != nil {
		params.Priority = ptr.To(domain.TaskPriority(*req.Priority))
	}
	if req.Status != nil {
		params.Status = ptr.To(domain.TaskStatus(*req.Status))
	}

	updated, err := h.tasks.UpdateTask(r.Context(), params)
	if err != nil {
		response.FromDomainError(w, r, err)
		return
	}

	response.OK(w, mapTaskToDTO(updated))
}

// DeleteTask handles DELETE /housekeeping-tasks/{id}.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.tasks.DeleteTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.FromDomainError(w, r, err)
		return
	}
	response.NoContent(w)
}
