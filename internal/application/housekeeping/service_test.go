package housekeeping

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innkeep/backoffice/internal/domain"
)

// mockRepo is a minimal in-memory Repository for service tests.
type mockRepo struct {
	createdTask    *domain.Task
	existingTask   *domain.Task
	updateParams   domain.UpdateTaskParams
	updateCalled   bool
	findByIDCalled bool
}

func (m *mockRepo) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	m.createdTask = task
	return task, nil
}

func (m *mockRepo) FindTaskByID(ctx context.Context, id string) (*domain.Task, error) {
	m.findByIDCalled = true
	if m.existingTask == nil {
		return nil, domain.ErrTaskNotFound
	}
	return m.existingTask, nil
}

func (m *mockRepo) FindTasks(ctx context.Context, params domain.ListTasksParams) ([]*domain.Task, error) {
	return nil, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, params domain.UpdateTaskParams) (*domain.Task, error) {
	m.updateCalled = true
	m.updateParams = params
	return m.existingTask, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error {
	return nil
}

func validTask(t *testing.T) *domain.Task {
	t.Helper()
	date, err := domain.NewDate("2024-06-01")
	require.NoError(t, err)
	return &domain.Task{
		RoomID:         "room-1",
		AssignedUserID: "user-1",
		TaskDate:       date,
		TaskType:       domain.TaskTypeCleaning,
	}
}

func TestCreateTask_AppliesDefaultsAndID(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	created, err := svc.CreateTask(context.Background(), validTask(t))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.TaskPriorityMedium, created.Priority)
	assert.Equal(t, domain.TaskStatusPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateTask_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Task)
		wantErr error
	}{
		{name: "missing room", mutate: func(task *domain.Task) { task.RoomID = "" }, wantErr: domain.ErrRoomRequired},
		{name: "missing assignee", mutate: func(task *domain.Task) { task.AssignedUserID = "" }, wantErr: domain.ErrAssigneeRequired},
		{name: "missing date", mutate: func(task *domain.Task) { task.TaskDate = domain.Date{} }, wantErr: domain.ErrInvalidDate},
		{name: "bad type", mutate: func(task *domain.Task) { task.TaskType = "laundry" }, wantErr: domain.ErrInvalidTaskType},
		{name: "bad priority", mutate: func(task *domain.Task) { task.Priority = "critical" }, wantErr: domain.ErrInvalidTaskPriority},
		{name: "bad status", mutate: func(task *domain.Task) { task.Status = "done" }, wantErr: domain.ErrInvalidTaskStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			svc := NewService(repo)

			task := validTask(t)
			tt.mutate(task)

			_, err := svc.CreateTask(context.Background(), task)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.createdTask, "nothing may reach the repository")
		})
	}
}

func TestUpdateTask_StampsStartedAtOnFirstStart(t *testing.T) {
	existing := validTask(t)
	existing.ID = "t1"
	existing.Status = domain.TaskStatusPending

	repo := &mockRepo{existingTask: existing}
	svc := NewService(repo)

	status := domain.TaskStatusInProgress
	_, err := svc.UpdateTask(context.Background(), domain.UpdateTaskParams{TaskID: "t1", Status: &status})
	require.NoError(t, err)

	require.NotNil(t, repo.updateParams.StartedAt)
	assert.WithinDuration(t, time.Now().UTC(), *repo.updateParams.StartedAt, time.Minute)
	assert.Nil(t, repo.updateParams.CompletedAt)
}

func TestUpdateTask_DoesNotRestampStartedAt(t *testing.T) {
	started := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	existing := validTask(t)
	existing.ID = "t1"
	existing.Status = domain.TaskStatusInProgress
	existing.StartedAt = &started

	repo := &mockRepo{existingTask: existing}
	svc := NewService(repo)

	status := domain.TaskStatusInProgress
	_, err := svc.UpdateTask(context.Background(), domain.UpdateTaskParams{TaskID: "t1", Status: &status})
	require.NoError(t, err)

	assert.Nil(t, repo.updateParams.StartedAt, "existing timestamp must not be overwritten")
}

func TestUpdateTask_StampsCompletedAt(t *testing.T) {
	existing := validTask(t)
	existing.ID = "t1"
	existing.Status = domain.TaskStatusInProgress

	repo := &mockRepo{existingTask: existing}
	svc := NewService(repo)

	status := domain.TaskStatusCompleted
	_, err := svc.UpdateTask(context.Background(), domain.UpdateTaskParams{TaskID: "t1", Status: &status})
	require.NoError(t, err)

	require.NotNil(t, repo.updateParams.CompletedAt)
}

func TestUpdateTask_DateOnlyPatchSkipsLookup(t *testing.T) {
	existing := validTask(t)
	existing.ID = "t1"
	repo := &mockRepo{existingTask: existing}
	svc := NewService(repo)

	date, err := domain.NewDate("2024-06-03")
	require.NoError(t, err)

	_, err = svc.UpdateTask(context.Background(), domain.UpdateTaskParams{TaskID: "t1", TaskDate: &date})
	require.NoError(t, err)

	assert.False(t, repo.findByIDCalled, "a reschedule needs no status lookup")
	require.True(t, repo.updateCalled)
	require.NotNil(t, repo.updateParams.TaskDate)
	assert.Equal(t, "2024-06-03", repo.updateParams.TaskDate.String())
}

func TestUpdateTask_RejectsInvalidStatus(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	bad := domain.TaskStatus("done")
	_, err := svc.UpdateTask(context.Background(), domain.UpdateTaskParams{TaskID: "t1", Status: &bad})
	require.ErrorIs(t, err, domain.ErrInvalidTaskStatus)
	assert.False(t, repo.updateCalled)
}

func TestUpdateTask_RejectsEmptyRoomPatch(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	empty := ""
	_, err := svc.UpdateTask(context.Background(), domain.UpdateTaskParams{TaskID: "t1", RoomID: &empty})
	require.ErrorIs(t, err, domain.ErrRoomRequired)
}
