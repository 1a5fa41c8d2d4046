package handler

import (
	"time"

	"github.com/innkeep/backoffice/internal/domain"
)

// Wire DTOs. Field names follow the REST contract the admin UI consumes
// (camelCase, dates as YYYY-MM-DD strings).

// TaskDTO is the wire representation of a housekeeping task.
type TaskDTO struct {
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

// RoomDTO is the wire representation of a room directory entry.
type RoomDTO struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Floor     int       `json:"floor"`
	RoomType  string    `json:"roomType"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserDTO is the wire representation of a staff directory entry.
type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func mapTaskToDTO(task *domain.Task) TaskDTO {
	return TaskDTO{
		ID:             task.ID,
		RoomID:         task.RoomID,
		AssignedUserID: task.AssignedUserID,
		TaskDate:       task.TaskDate,
		TaskType:       string(task.TaskType),
		Priority:       string(task.Priority),
		Status:         string(task.Status),
		Notes:          task.Notes,
		StartedAt:      task.StartedAt,
		CompletedAt:    task.CompletedAt,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
	}
}

func mapTasksToDTO(tasks []*domain.Task) []TaskDTO {
	dtos := make([]TaskDTO, 0, len(tasks))
	for _, task := range tasks {
		dtos = append(dtos, mapTaskToDTO(task))
	}
	return dtos
}

func mapRoomToDTO(room *domain.Room) RoomDTO {
	return RoomDTO{
		ID:        room.ID,
		Number:    room.Number,
		Floor:     room.Floor,
		RoomType:  room.RoomType,
		Status:    room.Status,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}

func mapRoomsToDTO(rooms []*domain.Room) []RoomDTO {
	dtos := make([]RoomDTO, 0, len(rooms))
	for _, room := range rooms {
		dtos = append(dtos, mapRoomToDTO(room))
	}
	return dtos
}

func mapUserToDTO(user *domain.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func mapUsersToDTO(users []*domain.User) []UserDTO {
	dtos := make([]UserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, mapUserToDTO(user))
	}
	return dtos
}
