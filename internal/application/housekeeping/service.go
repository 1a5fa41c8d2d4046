// Package housekeeping provides business logic for housekeeping task
// management: creation, filtered listing, partial updates with status
// timestamping, and deletion.
package housekeeping

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/innkeep/backoffice/internal/domain"
)

// Service orchestrates task operations through the Repository interface.
type Service struct {
	repo Repository
}

// NewService creates a housekeeping service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateTask validates and persists a new task. The caller supplies the task
// fields; id, timestamps, and defaults are applied here.
func (s *Service) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task.RoomID == "" {
		return nil, domain.ErrRoomRequired
	}
	if task.AssignedUserID == "" {
		return nil, domain.ErrAssigneeRequired
	}
	if task.TaskDate.IsZero() {
		return nil, domain.ErrInvalidDate
	}
	if _, err := domain.NewTaskType(string(task.TaskType)); err != nil {
		return nil, err
	}

	priority, err := domain.NewTaskPriority(string(task.Priority))
	if err != nil {
		return nil, err
	}
	status, err := domain.NewTaskStatus(string(task.Status))
	if err != nil {
		return nil, err
	}

	idObj, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate id: %w", err)
	}

	now := time.Now().UTC()
	task.ID = idObj.String()
	task.Priority = priority
	task.Status = status
	task.CreatedAt = now
	task.UpdatedAt = now

	created, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetTask retrieves a task by ID.
func (s *Service) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	if id == "" {
		return nil, domain.ErrTaskNotFound
	}
	return s.repo.FindTaskByID(ctx, id)
}

// FindTasks lists tasks with optional date/status/assignee filters, in store
// order.
func (s *Service) FindTasks(ctx context.Context, params domain.ListTasksParams) ([]*domain.Task, error) {
	tasks, err := s.repo.FindTasks(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies a partial update. A status transition into in_progress
// or completed stamps StartedAt / CompletedAt the first time it happens; the
// client never supplies these timestamps.
func (s *Service) UpdateTask(ctx context.Context, params domain.UpdateTaskParams) (*domain.Task, error) {
	if params.TaskID == "" {
		return nil, domain.ErrTaskNotFound
	}

	if params.Status != nil {
		if _, err := domain.NewTaskStatus(string(*params.Status)); err != nil {
			return nil, err
		}
	}
	if params.Priority != nil {
		if _, err := domain.NewTaskPriority(string(*params.Priority)); err != nil {
			return nil, err
		}
	}
	if params.TaskType != nil {
		if _, err := domain.NewTaskType(string(*params.TaskType)); err != nil {
			return nil, err
		}
	}
	if params.RoomID != nil && *params.RoomID == "" {
		return nil, domain.ErrRoomRequired
	}
	if params.AssignedUserID != nil && *params.AssignedUserID == "" {
		return nil, domain.ErrAssigneeRequired
	}

	if params.Status != nil {
		existing, err := s.repo.FindTaskByID(ctx, params.TaskID)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		switch *params.Status {
		case domain.TaskStatusInProgress:
			if existing.StartedAt == nil {
				params.StartedAt = &now
			}
		case domain.TaskStatusCompleted:
			if existing.CompletedAt == nil {
				params.CompletedAt = &now
			}
		}
	}

	return s.repo.UpdateTask(ctx, params)
}

// DeleteTask removes a task.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrTaskNotFound
	}
	return s.repo.DeleteTask(ctx, id)
}
