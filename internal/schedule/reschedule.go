package schedule

import (
	"context"
	"errors"

	"github.com/innkeep/backoffice/internal/domain"
)

// Errors returned by the drag-reschedule state machine.
var (
	// ErrNoActiveDrag indicates Drop was called outside a drag.
	ErrNoActiveDrag = errors.New("no active drag")

	// ErrDragActive indicates BeginDrag was called while a drag is already
	// in flight.
	ErrDragActive = errors.New("a drag is already active")

	// ErrMovePending indicates BeginDrag was called while a staged move is
	// awaiting confirmation. A second drag would silently discard the first
	// staged move, so it is rejected.
	ErrMovePending = errors.New("a pending move awaits confirmation")

	// ErrNoPendingMove indicates Confirm or Cancel was called with nothing staged.
	ErrNoPendingMove = errors.New("no pending move")
)

// DragState is the state of the reschedule interaction.
type DragState int

const (
	// StateIdle means no drag or staged move exists.
	StateIdle DragState = iota

	// StateDragging means a task block is being dragged; the machine holds
	// the task and its origin date.
	StateDragging

	// StatePendingConfirmation means a move is staged and awaits an explicit
	// confirm or cancel.
	StatePendingConfirmation
)

// PendingMove is a staged, unconfirmed date change for a task. At most one
// exists at a time; it is destroyed on confirm (after the commit resolves) or
// on cancel.
type PendingMove struct {
	// Task is a snapshot of the task taken at drag start.
	Task domain.Task

	FromDate domain.Date
	ToDate   domain.Date
}

// MoveCommitter commits a confirmed move: one date-only update against the
// task store followed by one refresh of the task list. The board controller
// implements this against the REST client.
type MoveCommitter interface {
	CommitMove(ctx context.Context, taskID string, to domain.Date) error
}

// Rescheduler is the drag-reschedule state machine:
//
//	Idle → Dragging → PendingConfirmation → Idle
//
// A drop on the origin date short-circuits back to Idle with nothing staged.
// The machine is driven from a single UI event loop and is not safe for
// concurrent use.
type Rescheduler struct {
	state     DragState
	dragTask  domain.Task
	dragFrom  domain.Date
	pending   *PendingMove
	committer MoveCommitter
}

// NewRescheduler creates an idle state machine committing through c.
func NewRescheduler(c MoveCommitter) *Rescheduler {
	return &Rescheduler{committer: c}
}

// State returns the current interaction state.
func (r *Rescheduler) State() DragState {
	return r.state
}

// Pending returns the staged move, or nil outside PendingConfirmation.
func (r *Rescheduler) Pending() *PendingMove {
	return r.pending
}

// BeginDrag starts dragging a task block from its current date cell.
// Rejected while another drag is active or while a staged move awaits
// confirmation, so an unresolved PendingMove can never be silently discarded.
func (r *Rescheduler) BeginDrag(task domain.Task, from domain.Date) error {
	switch r.state {
	case StateDragging:
		return ErrDragActive
	case StatePendingConfirmation:
		return ErrMovePending
	}

	r.state = StateDragging
	r.dragTask = task
	r.dragFrom = from
	return nil
}

// Drop ends the drag on the given date cell.
//
// A drop on the origin date is a no-op: the machine resets to Idle and
// returns nil. A drop on any other date stages a PendingMove and clears the
// drag-origin record; nothing touches the network until Confirm.
func (r *Rescheduler) Drop(to domain.Date) (*PendingMove, error) {
	if r.state != StateDragging {
		return nil, ErrNoActiveDrag
	}

	task, from := r.dragTask, r.dragFrom
	r.dragTask = domain.Task{}
	r.dragFrom = domain.Date{}

	if to.Equal(from) {
		r.state = StateIdle
		return nil, nil
	}

	r.pending = &PendingMove{Task: task, FromDate: from, ToDate: to}
	r.state = StatePendingConfirmation
	return r.pending, nil
}

// Confirm commits the staged move. The committer issues exactly one date-only
// update and, on success, one refresh of the task list. The staged move is
// cleared on both success and failure: after a failed commit the refreshed
// list was never applied, so the task's displayed date reverts to its
// pre-drag value on the next render.
func (r *Rescheduler) Confirm(ctx context.Context) error {
	if r.state != StatePendingConfirmation {
		return ErrNoPendingMove
	}

	move := r.pending
	r.pending = nil
	r.state = StateIdle

	return r.committer.CommitMove(ctx, move.Task.ID, move.ToDate)
}

// Cancel discards the staged move without any network call.
func (r *Rescheduler) Cancel() error {
	if r.state != StatePendingConfirmation {
		return ErrNoPendingMove
	}

	r.pending = nil
	r.state = StateIdle
	return nil
}

// StagedTasks rewrites the task list for rendering while a move is staged:
// the staged task appears at its target date and its origin cell renders
// empty. With no staged move the input is returned unchanged.
func StagedTasks(tasks []domain.Task, pending *PendingMove) []domain.Task {
	if pending == nil {
		return tasks
	}

	staged := make([]domain.Task, len(tasks))
	copy(staged, tasks)
	for i := range staged {
		if staged[i].ID == pending.Task.ID {
			staged[i].TaskDate = pending.ToDate
		}
	}
	return staged
}
