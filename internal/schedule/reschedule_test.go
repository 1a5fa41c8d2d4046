package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innkeep/backoffice/internal/domain"
)

// mockCommitter records CommitMove calls and optionally fails them.
type mockCommitter struct {
	calls  int
	taskID string
	to     domain.Date
	err    error
}

func (m *mockCommitter) CommitMove(ctx context.Context, taskID string, to domain.Date) error {
	m.calls++
	m.taskID = taskID
	m.to = to
	return m.err
}

func testTask(t *testing.T, id, dateStr string) (domain.Task, domain.Date) {
	t.Helper()
	date := mustDate(t, dateStr)
	return domain.Task{ID: id, RoomID: "r1", TaskDate: date, Status: domain.TaskStatusPending}, date
}

func TestDrop_SameDateIsNoOp(t *testing.T) {
	committer := &mockCommitter{}
	r := NewRescheduler(committer)
	task, from := testTask(t, "t1", "2024-06-01")

	require.NoError(t, r.BeginDrag(task, from))
	require.Equal(t, StateDragging, r.State())

	move, err := r.Drop(from)
	require.NoError(t, err)

	assert.Nil(t, move)
	assert.Equal(t, StateIdle, r.State())
	assert.Nil(t, r.Pending())
	assert.Zero(t, committer.calls)
}

func TestDrop_DifferentDateStagesMove(t *testing.T) {
	committer := &mockCommitter{}
	r := NewRescheduler(committer)
	task, from := testTask(t, "t1", "2024-06-01")
	to := mustDate(t, "2024-06-03")

	require.NoError(t, r.BeginDrag(task, from))

	move, err := r.Drop(to)
	require.NoError(t, err)
	require.NotNil(t, move)

	assert.Equal(t, StatePendingConfirmation, r.State())
	assert.Equal(t, "t1", move.Task.ID)
	assert.True(t, move.FromDate.Equal(from))
	assert.True(t, move.ToDate.Equal(to))
	assert.Zero(t, committer.calls, "staging must not touch the network")
}

func TestConfirm_CommitsExactlyOnce(t *testing.T) {
	committer := &mockCommitter{}
	r := NewRescheduler(committer)
	task, from := testTask(t, "t1", "2024-06-01")
	to := mustDate(t, "2024-06-03")

	require.NoError(t, r.BeginDrag(task, from))
	_, err := r.Drop(to)
	require.NoError(t, err)

	require.NoError(t, r.Confirm(context.Background()))

	assert.Equal(t, 1, committer.calls)
	assert.Equal(t, "t1", committer.taskID)
	assert.True(t, committer.to.Equal(to))
	assert.Equal(t, StateIdle, r.State())
	assert.Nil(t, r.Pending())
}

func TestConfirm_FailureClearsPendingMove(t *testing.T) {
	commitErr := errors.New("store rejected the move")
	committer := &mockCommitter{err: commitErr}
	r := NewRescheduler(committer)
	task, from := testTask(t, "t1", "2024-06-01")

	require.NoError(t, r.BeginDrag(task, from))
	_, err := r.Drop(mustDate(t, "2024-06-03"))
	require.NoError(t, err)

	err = r.Confirm(context.Background())
	require.ErrorIs(t, err, commitErr)

	// The staged move is gone either way; the UI is interactive again.
	assert.Equal(t, StateIdle, r.State())
	assert.Nil(t, r.Pending())
}

func TestCancel_DiscardsWithoutNetworkCall(t *testing.T) {
	committer := &mockCommitter{}
	r := NewRescheduler(committer)
	task, from := testTask(t, "t1", "2024-06-01")

	require.NoError(t, r.BeginDrag(task, from))
	_, err := r.Drop(mustDate(t, "2024-06-02"))
	require.NoError(t, err)

	require.NoError(t, r.Cancel())

	assert.Equal(t, StateIdle, r.State())
	assert.Nil(t, r.Pending())
	assert.Zero(t, committer.calls)
}

func TestBeginDrag_RejectedWhileMovePending(t *testing.T) {
	r := NewRescheduler(&mockCommitter{})
	task, from := testTask(t, "t1", "2024-06-01")
	other, otherFrom := testTask(t, "t2", "2024-06-02")

	require.NoError(t, r.BeginDrag(task, from))
	_, err := r.Drop(mustDate(t, "2024-06-05"))
	require.NoError(t, err)

	err = r.BeginDrag(other, otherFrom)
	require.ErrorIs(t, err, ErrMovePending)

	// The original staged move is untouched.
	require.NotNil(t, r.Pending())
	assert.Equal(t, "t1", r.Pending().Task.ID)
}

func TestBeginDrag_RejectedDuringDrag(t *testing.T) {
	r := NewRescheduler(&mockCommitter{})
	task, from := testTask(t, "t1", "2024-06-01")

	require.NoError(t, r.BeginDrag(task, from))
	require.ErrorIs(t, r.BeginDrag(task, from), ErrDragActive)
}

func TestTransitionGuards(t *testing.T) {
	r := NewRescheduler(&mockCommitter{})

	_, err := r.Drop(mustDate(t, "2024-06-01"))
	require.ErrorIs(t, err, ErrNoActiveDrag)
	require.ErrorIs(t, r.Confirm(context.Background()), ErrNoPendingMove)
	require.ErrorIs(t, r.Cancel(), ErrNoPendingMove)
}

func TestStagedTasks_RendersAtTargetCell(t *testing.T) {
	from := mustDate(t, "2024-06-01")
	to := mustDate(t, "2024-06-03")
	tasks := []domain.Task{
		{ID: "t1", RoomID: "r1", TaskDate: from},
		{ID: "t2", RoomID: "r1", TaskDate: from},
	}
	pending := &PendingMove{Task: tasks[0], FromDate: from, ToDate: to}

	staged := StagedTasks(tasks, pending)
	grid := BuildGrid(GridParams{Start: from, Days: 5, Tasks: staged, Today: from})

	origin := grid.TasksAt("r1", from)
	require.Len(t, origin, 1)
	assert.Equal(t, "t2", origin[0].ID)

	target := grid.TasksAt("r1", to)
	require.Len(t, target, 1)
	assert.Equal(t, "t1", target[0].ID)

	// Input list is untouched.
	assert.True(t, tasks[0].TaskDate.Equal(from))
}

func TestStagedTasks_NilPendingReturnsInput(t *testing.T) {
	tasks := []domain.Task{{ID: "t1"}}
	assert.Equal(t, tasks, StagedTasks(tasks, nil))
}
