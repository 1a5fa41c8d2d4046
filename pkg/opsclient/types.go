package opsclient

import (
	"fmt"
	"time"

	"github.com/innkeep/backoffice/internal/domain"
)

// APIError is a non-2xx response decoded from the store's standard error
// envelope: {"error": {"code": ..., "message": ...}}.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// CreateTaskParams are the fields of a new housekeeping task (everything but
// the server-assigned id and timestamps).
type CreateTaskParams struct {
	RoomID         string
	AssignedUserID string
	TaskDate       domain.Date
	TaskType       domain.TaskType
	Priority       domain.TaskPriority
	Notes          *string
}

// TaskPatch is a partial task update. Nil fields are omitted from the request
// body, so a date-only reschedule or a status-only transition sends exactly
// one field.
type TaskPatch struct {
	RoomID         *string              `json:"roomId,omitempty"`
	AssignedUserID *string              `json:"assignedUserId,omitempty"`
	TaskDate       *domain.Date         `json:"taskDate,omitempty"`
	TaskType       *domain.TaskType     `json:"taskType,omitempty"`
	Priority       *domain.TaskPriority `json:"priority,omitempty"`
	Status         *domain.TaskStatus   `json:"status,omitempty"`
	Notes          *string              `json:"notes,omitempty"`
}

// CreateUserParams are the fields of a new staff account.
type CreateUserParams struct {
	Name  string
	Email string
	Role  string
}

// UserPatch is a partial user update.
type UserPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// Wire representations. The client maps these to domain types so callers only
// ever see one model.

type taskJSON struct {
	ID             string      `json:"id"`
	RoomID         string      `json:"roomId"`
	AssignedUserID string      `json:"assignedUserId"`
	TaskDate       domain.Date `json:"taskDate"`
	TaskType       string      `json:"taskType"`
	Priority       string      `json:"priority"`
	Status         string      `json:"status"`
	Notes          *string     `json:"notes,omitempty"`
	StartedAt      *time.Time  `json:"startedAt,omitempty"`
	CompletedAt    *time.Time  `json:"completedAt,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

type roomJSON struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Floor     int       `json:"floor"`
	RoomType  string    `json:"roomType"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type userJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type createTaskJSON struct {
	RoomID         string      `json:"roomId"`
	AssignedUserID string      `json:"assignedUserId"`
	TaskDate       domain.Date `json:"taskDate"`
	TaskType       string      `json:"taskType"`
	Priority       string      `json:"priority"`
	Notes          *string     `json:"notes,omitempty"`
}

type createUserJSON struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (t taskJSON) toDomain() domain.Task {
	return domain.Task{
		ID:             t.ID,
		RoomID:         t.RoomID,
		AssignedUserID: t.AssignedUserID,
		TaskDate:       t.TaskDate,
		TaskType:       domain.TaskType(t.TaskType),
		Priority:       domain.TaskPriority(t.Priority),
		Status:         domain.TaskStatus(t.Status),
		Notes:          t.Notes,
		StartedAt:      t.StartedAt,
		CompletedAt:    t.CompletedAt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func (r roomJSON) toDomain() domain.Room {
	return domain.Room{
		ID:        r.ID,
		Number:    r.Number,
		Floor:     r.Floor,
		RoomType:  r.RoomType,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (u userJSON) toDomain() domain.User {
	return domain.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
