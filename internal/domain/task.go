package domain

import (
	"fmt"
	"strings"
	"time"
)

// TaskType classifies the kind of housekeeping work a task represents.
type TaskType string

const (
	TaskTypeCleaning    TaskType = "cleaning"
	TaskTypeMaintenance TaskType = "maintenance"
	TaskTypeInspection  TaskType = "inspection"
	TaskTypeTurndown    TaskType = "turndown"
)

// NewTaskType validates and creates a TaskType.
func NewTaskType(s string) (TaskType, error) {
	taskType := TaskType(strings.ToLower(s))

	switch taskType {
	case TaskTypeCleaning, TaskTypeMaintenance, TaskTypeInspection, TaskTypeTurndown:
		return taskType, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidTaskType, s)
	}
}

// TaskPriority ranks how urgently a task should be handled.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// NewTaskPriority validates and creates a TaskPriority.
// An empty value defaults to medium.
func NewTaskPriority(s string) (TaskPriority, error) {
	if s == "" {
		return TaskPriorityMedium, nil
	}

	priority := TaskPriority(strings.ToLower(s))

	switch priority {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return priority, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidTaskPriority, s)
	}
}

// TaskStatus is the lifecycle state of a task.
//
// The lifecycle is pending → in_progress → completed, with cancelled
// reachable from pending or in_progress. Transitions are driven by explicit
// user actions; there are no automatic transitions or timeouts. Completed and
// cancelled are terminal as far as the admin UI is concerned, though a direct
// edit may still set any status (acknowledged looseness, not a guarded
// invariant).
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// NewTaskStatus validates and creates a TaskStatus.
// An empty value defaults to pending.
func NewTaskStatus(s string) (TaskStatus, error) {
	if s == "" {
		return TaskStatusPending, nil
	}

	status := TaskStatus(strings.ToLower(s))

	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidTaskStatus, s)
	}
}

// Task is an aggregate root representing one housekeeping assignment for one
// room on one date.
//
// At most one task exists per (room, date, type) tuple. The database enforces
// this with a unique constraint; callers observe a violation as
// ErrDuplicateTask.
type Task struct {
	ID string

	// References into the room and user directories. Both are required.
	RoomID         string
	AssignedUserID string

	TaskDate Date
	TaskType TaskType
	Priority TaskPriority
	Status   TaskStatus

	// Notes is optional free text.
	Notes *string

	// StartedAt and CompletedAt are stamped by the store when status first
	// transitions to in_progress / completed. Clients never compute them.
	StartedAt   *time.Time
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateTaskParams contains a partial task update. Nil fields are left
// untouched, so a date-only reschedule or a status-only transition is a
// single-field patch.
type UpdateTaskParams struct {
	TaskID string

	RoomID         *string
	AssignedUserID *string
	TaskDate       *Date
	TaskType       *TaskType
	Priority       *TaskPriority
	Status         *TaskStatus
	Notes          *string

	// Timestamps stamped by the service when Status transitions into
	// in_progress / completed. Not set by API clients.
	StartedAt   *time.Time
	CompletedAt *time.Time
}

// ListTasksParams contains filters for listing tasks.
// Nil fields apply no filter.
type ListTasksParams struct {
	Date           *Date
	Status         *TaskStatus
	AssignedUserID *string
}
