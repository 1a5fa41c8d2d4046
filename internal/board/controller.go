// Package board wires the scheduling-board pieces together: it holds the
// fetched task/room/user projections, drives the drag-reschedule state
// machine, and derives the calendar grid for rendering.
package board

import (
	"context"
	"errors"
	"sync"

	"github.com/innkeep/backoffice/internal/domain"
	"github.com/innkeep/backoffice/internal/ptr"
	"github.com/innkeep/backoffice/internal/schedule"
	"github.com/innkeep/backoffice/pkg/opsclient"
)

// ErrBusy indicates an operation was rejected because another one is still
// in flight. The busy flag is advisory: it guards against double-submission
// from the same user, nothing more.
var ErrBusy = errors.New("an operation is already in progress")

// LoadErrorMessage is the single message surfaced when any part of the
// three-way initial fetch fails. The failures are deliberately not
// distinguished.
const LoadErrorMessage = "failed to load board data"

// Controller owns the client-side board state. All entity state is a
// read-only projection of the store; every mutation awaits a re-fetch before
// the busy flag clears, so subsequent actions always observe post-mutation
// truth.
type Controller struct {
	client *opsclient.Client

	mu      sync.Mutex
	tasks   []domain.Task
	rooms   []domain.Room
	users   []domain.User
	busy    bool
	lastErr string

	resched *schedule.Rescheduler
}

// New creates a board controller talking to the given API client.
func New(client *opsclient.Client) *Controller {
	c := &Controller{client: client}
	c.resched = schedule.NewRescheduler(c)
	return c
}

// Load fetches rooms, tasks, and users in parallel and replaces the board
// projections. Any one failing surfaces the generic load message.
func (c *Controller) Load(ctx context.Context) error {
	if err := c.beginOp(); err != nil {
		return err
	}
	defer c.endOp()

	var (
		wg      sync.WaitGroup
		tasks   []domain.Task
		rooms   []domain.Room
		users   []domain.User
		taskErr error
		roomErr error
		userErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		tasks, taskErr = c.client.ListTasks(ctx, domain.ListTasksParams{})
	}()
	go func() {
		defer wg.Done()
		rooms, roomErr = c.client.ListRooms(ctx)
	}()
	go func() {
		defer wg.Done()
		users, userErr = c.client.ListUsers(ctx)
	}()
	wg.Wait()

	if err := errors.Join(taskErr, roomErr, userErr); err != nil {
		c.setError(LoadErrorMessage)
		return err
	}

	c.mu.Lock()
	c.tasks, c.rooms, c.users = tasks, rooms, users
	c.mu.Unlock()
	return nil
}

// AddTask validates and creates a housekeeping task, then refreshes the task
// list. Validation failures are caught before any request is sent: the error
// message is set and the busy flag never goes up.
func (c *Controller) AddTask(ctx context.Context, params opsclient.CreateTaskParams) error {
	if err := c.validateNewTask(params); err != nil {
		c.setError(err.Error())
		return err
	}

	return c.mutate(ctx, func(ctx context.Context) error {
		_, err := c.client.CreateTask(ctx, params)
		return err
	})
}

// validateNewTask enforces the client-side required fields.
func (c *Controller) validateNewTask(params opsclient.CreateTaskParams) error {
	if params.RoomID == "" {
		return domain.ErrRoomRequired
	}
	if params.AssignedUserID == "" {
		return domain.ErrAssigneeRequired
	}
	if params.TaskDate.IsZero() {
		return domain.ErrInvalidDate
	}
	if _, err := domain.NewTaskType(string(params.TaskType)); err != nil {
		return err
	}
	return nil
}

// StartTask transitions a task to in_progress with a status-only patch.
func (c *Controller) StartTask(ctx context.Context, taskID string) error {
	return c.patchStatus(ctx, taskID, domain.TaskStatusInProgress)
}

// CompleteTask transitions a task to completed with a status-only patch.
func (c *Controller) CompleteTask(ctx context.Context, taskID string) error {
	return c.patchStatus(ctx, taskID, domain.TaskStatusCompleted)
}

// CancelTask transitions a task to cancelled with a status-only patch.
func (c *Controller) CancelTask(ctx context.Context, taskID string) error {
	return c.patchStatus(ctx, taskID, domain.TaskStatusCancelled)
}

func (c *Controller) patchStatus(ctx context.Context, taskID string, status domain.TaskStatus) error {
	return c.mutate(ctx, func(ctx context.Context) error {
		_, err := c.client.UpdateTask(ctx, taskID, opsclient.TaskPatch{Status: ptr.To(status)})
		return err
	})
}

// DeleteTask removes a task and refreshes the list.
func (c *Controller) DeleteTask(ctx context.Context, taskID string) error {
	return c.mutate(ctx, func(ctx context.Context) error {
		return c.client.DeleteTask(ctx, taskID)
	})
}

// BeginDrag starts dragging the identified task block. The snapshot handed to
// the state machine is taken from the current projection.
func (c *Controller) BeginDrag(taskID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, task := range c.tasks {
		if task.ID == taskID {
			return c.resched.BeginDrag(task, task.TaskDate)
		}
	}
	return domain.ErrTaskNotFound
}

// Drop ends the drag on the given date cell. Returns the staged move, or nil
// for a same-date drop.
func (c *Controller) Drop(to domain.Date) (*schedule.PendingMove, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resched.Drop(to)
}

// ConfirmMove commits the staged move: one date-only PUT, then one refresh.
// On failure the staged move is still cleared and the error surfaced; the
// displayed date reverts because the refresh was never applied.
func (c *Controller) ConfirmMove(ctx context.Context) error {
	if err := c.beginOp(); err != nil {
		return err
	}
	defer c.endOp()

	if err := c.resched.Confirm(ctx); err != nil {
		c.setError(err.Error())
		return err
	}
	return nil
}

// CancelMove discards the staged move without any network call.
func (c *Controller) CancelMove() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resched.Cancel()
}

// CommitMove implements schedule.MoveCommitter. Exactly one PUT with only the
// task date, then exactly one re-fetch. The refresh is awaited before the
// surrounding operation clears the busy flag.
func (c *Controller) CommitMove(ctx context.Context, taskID string, to domain.Date) error {
	if _, err := c.client.RescheduleTask(ctx, taskID, to); err != nil {
		return err
	}
	return c.refreshTasks(ctx)
}

// Grid derives the calendar grid from the current projections. While a move
// is staged the affected task renders at its target cell.
func (c *Controller) Grid(start domain.Date, days int, statusFilter *domain.TaskStatus) schedule.Grid {
	c.mu.Lock()
	tasks := schedule.StagedTasks(c.tasks, c.resched.Pending())
	rooms := c.rooms
	c.mu.Unlock()

	return schedule.BuildGrid(schedule.GridParams{
		Start:  start,
		Days:   days,
		Rooms:  rooms,
		Tasks:  tasks,
		Status: statusFilter,
	})
}

// Tasks returns the current task projection.
func (c *Controller) Tasks() []domain.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tasks
}

// Rooms returns the current room projection.
func (c *Controller) Rooms() []domain.Room {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rooms
}

// Users returns the current user projection.
func (c *Controller) Users() []domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.users
}

// Busy reports whether an operation is in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// DragState exposes the reschedule interaction state.
func (c *Controller) DragState() schedule.DragState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resched.State()
}

// PendingMove returns the staged move, or nil.
func (c *Controller) PendingMove() *schedule.PendingMove {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resched.Pending()
}

// LastError returns the current inline error message, empty when none.
func (c *Controller) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// DismissError clears the inline error message.
func (c *Controller) DismissError() {
	c.setError("")
}

// mutate runs a store mutation under the busy flag and awaits the task
// refresh before clearing it. Every failure path leaves the controller
// interactive with an error message set.
func (c *Controller) mutate(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := c.beginOp(); err != nil {
		return err
	}
	defer c.endOp()

	if err := fn(ctx); err != nil {
		c.setError(err.Error())
		return err
	}
	if err := c.refreshTasks(ctx); err != nil {
		c.setError(err.Error())
		return err
	}
	return nil
}

// refreshTasks re-derives the task projection from the store.
func (c *Controller) refreshTasks(ctx context.Context) error {
	tasks, err := c.client.ListTasks(ctx, domain.ListTasksParams{})
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.tasks = tasks
	c.mu.Unlock()
	return nil
}

func (c *Controller) beginOp() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return ErrBusy
	}
	c.busy = true
	c.lastErr = ""
	return nil
}

func (c *Controller) endOp() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

func (c *Controller) setError(msg string) {
	c.mu.Lock()
	c.lastErr = msg
	c.mu.Unlock()
}
