package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/innkeep/backoffice/internal/domain"
)

const taskColumns = `id, room_id, assigned_user_id, task_date, task_type, priority, status,
	notes, started_at, completed_at, created_at, updated_at`

// CreateTask inserts a new housekeeping task.
func (s *Store) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	const query = `
		INSERT INTO housekeeping_tasks
			(id, room_id, assigned_user_id, task_date, task_type, priority, status,
			 notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + taskColumns

	row := s.pool.QueryRow(ctx, query,
		task.ID,
		task.RoomID,
		task.AssignedUserID,
		task.TaskDate.Time(),
		string(task.TaskType),
		string(task.Priority),
		string(task.Status),
		task.Notes,
		task.CreatedAt,
		task.UpdatedAt,
	)

	created, err := scanTask(row)
	if err != nil {
		return nil, translateConstraintError(err)
	}
	return created, nil
}

// FindTaskByID retrieves a single task.
func (s *Store) FindTaskByID(ctx context.Context, id string) (*domain.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM housekeeping_tasks WHERE id = $1`

	task, err := scanTask(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to query task: %w", err)
	}
	return task, nil
}

// FindTasks lists tasks matching the optional filters, oldest first.
func (s *Store) FindTasks(ctx context.Context, params domain.ListTasksParams) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM housekeeping_tasks`

	var conditions []string
	var args []any
	if params.Date != nil {
		args = append(args, params.Date.Time())
		conditions = append(conditions, fmt.Sprintf("task_date = $%d", len(args)))
	}
	if params.Status != nil {
		args = append(args, string(*params.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if params.AssignedUserID != nil {
		args = append(args, *params.AssignedUserID)
		conditions = append(conditions, fmt.Sprintf("assigned_user_id = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at, id"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies a partial update and returns the updated task. Only the
// fields set in params are written.
func (s *Store) UpdateTask(ctx context.Context, params domain.UpdateTaskParams) (*domain.Task, error) {
	assignments := []string{"updated_at = $1"}
	args := []any{time.Now().UTC()}

	set := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.RoomID != nil {
		set("room_id", *params.RoomID)
	}
	if params.AssignedUserID != nil {
		set("assigned_user_id", *params.AssignedUserID)
	}
	if params.TaskDate != nil {
		set("task_date", params.TaskDate.Time())
	}
	if params.TaskType != nil {
		set("task_type", string(*params.TaskType))
	}
	if params.Priority != nil {
		set("priority", string(*params.Priority))
	}
	if params.Status != nil {
		set("status", string(*params.Status))
	}
	if params.Notes != nil {
		set("notes", *params.Notes)
	}
	if params.StartedAt != nil {
		set("started_at", *params.StartedAt)
	}
	if params.CompletedAt != nil {
		set("completed_at", *params.CompletedAt)
	}

	args = append(args, params.TaskID)
	query := fmt.Sprintf(
		"UPDATE housekeeping_tasks SET %s WHERE id = $%d RETURNING %s",
		strings.Join(assignments, ", "), len(args), taskColumns,
	)

	task, err := scanTask(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, translateConstraintError(err)
	}
	return task, nil
}

// DeleteTask removes a task.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM housekeeping_tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

// scanTask reads one task row in taskColumns order.
func scanTask(row pgx.Row) (*domain.Task, error) {
	var (
		task     domain.Task
		taskDate time.Time
		taskType string
		priority string
		status   string
	)
	err := row.Scan(
		&task.ID,
		&task.RoomID,
		&task.AssignedUserID,
		&taskDate,
		&taskType,
		&priority,
		&status,
		&task.Notes,
		&task.StartedAt,
		&task.CompletedAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	task.TaskDate = domain.DateOf(taskDate)
	task.TaskType = domain.TaskType(taskType)
	task.Priority = domain.TaskPriority(priority)
	task.Status = domain.TaskStatus(status)
	return &task, nil
}
