package domain

import "errors"

// Domain errors returned by services and repository implementations.

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrTaskNotFound indicates the specified housekeeping task does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrRoomNotFound indicates the specified room does not exist.
	ErrRoomNotFound = errors.New("room not found")

	// ErrUserNotFound indicates the specified user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidID indicates the provided ID format is invalid.
	ErrInvalidID = errors.New("invalid ID format")

	// ErrRoomRequired indicates a task was submitted without a room reference.
	ErrRoomRequired = errors.New("room is required")

	// ErrAssigneeRequired indicates a task was submitted without an assignee.
	ErrAssigneeRequired = errors.New("assignee is required")

	// ErrInvalidTaskType indicates an unknown task type value.
	ErrInvalidTaskType = errors.New("invalid task type")

	// ErrInvalidTaskStatus indicates an unknown task status value.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrInvalidTaskPriority indicates an unknown task priority value.
	ErrInvalidTaskPriority = errors.New("invalid task priority")

	// ErrInvalidDate indicates a date value that does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date format")

	// ErrDuplicateTask indicates a task already exists for the same
	// (room, date, type) tuple. The database enforces this uniqueness.
	ErrDuplicateTask = errors.New("task already exists for this room, date and type")

	// ErrAssigneeInUse indicates a user cannot be deleted because tasks
	// still reference them (FK RESTRICT).
	ErrAssigneeInUse = errors.New("user has assigned tasks")

	// ErrNameRequired indicates a required name field was empty.
	ErrNameRequired = errors.New("name is required")

	// ErrEmailRequired indicates a required email field was empty.
	ErrEmailRequired = errors.New("email is required")

	// ErrRoomNumberRequired indicates a room was submitted without a number label.
	ErrRoomNumberRequired = errors.New("room number is required")
)
