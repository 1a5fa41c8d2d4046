package housekeeping

import (
	"context"

	"github.com/innkeep/backoffice/internal/domain"
)

// Repository is the persistence contract for housekeeping tasks.
// The postgres store implements it; services and tests depend on nothing else.
//
// Implementations return domain sentinel errors: ErrTaskNotFound for missing
// ids, ErrDuplicateTask when the (room, date, type) unique constraint fires,
// and ErrRoomNotFound / ErrUserNotFound for dangling references.
type Repository interface {
	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindTaskByID(ctx context.Context, id string) (*domain.Task, error)
	FindTasks(ctx context.Context, params domain.ListTasksParams) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, params domain.UpdateTaskParams) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
