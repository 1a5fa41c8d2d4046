// Package schedule holds the pure scheduling-board logic: building the
// rooms × dates calendar grid, sizing the visible date range, and the
// drag-reschedule state machine that stages a task move for confirmation.
package schedule

import (
	"sort"

	"github.com/innkeep/backoffice/internal/domain"
)

// Bounds for the visible date range. The board never renders fewer than
// MinVisibleDays columns, even on degenerate widths, and never more than
// MaxVisibleDays.
const (
	MinVisibleDays = 3
	MaxVisibleDays = 30
)

// GridDate is one date column of the grid.
type GridDate struct {
	Date    domain.Date
	IsToday bool
}

// GridParams are the inputs to BuildGrid.
type GridParams struct {
	Start domain.Date
	Days  int // clamped to [MinVisibleDays, MaxVisibleDays]

	Rooms []domain.Room
	Tasks []domain.Task

	// Status filters cells to tasks with this status. Nil means no filter.
	Status *domain.TaskStatus

	// Today overrides the "is today" reference date. Zero means the current
	// UTC date. Tests pin it for determinism.
	Today domain.Date
}

// Grid is the derived rooms × dates matrix. It is recomputed on every render
// and holds no authoritative state; the task list it was built from is the
// only source of truth.
type Grid struct {
	Rooms []domain.Room
	Dates []GridDate

	cells map[cellKey][]domain.Task
}

type cellKey struct {
	roomID string
	date   string
}

// BuildGrid maps a date range and room list into the calendar grid.
//
// Rooms are sorted ascending by the numeric value of their number label
// (non-numeric labels sort as zero, see Room.SortValue); the sort is stable so
// ties keep directory order. Tasks within a cell keep the order the store
// returned them in.
func BuildGrid(params GridParams) Grid {
	days := clampDays(params.Days)

	today := params.Today
	if today.IsZero() {
		today = domain.Today()
	}

	dates := make([]GridDate, days)
	for i := range days {
		date := params.Start.AddDays(i)
		dates[i] = GridDate{Date: date, IsToday: date.Equal(today)}
	}

	rooms := make([]domain.Room, len(params.Rooms))
	copy(rooms, params.Rooms)
	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].SortValue() < rooms[j].SortValue()
	})

	cells := make(map[cellKey][]domain.Task)
	for _, task := range params.Tasks {
		if params.Status != nil && task.Status != *params.Status {
			continue
		}
		key := cellKey{roomID: task.RoomID, date: task.TaskDate.String()}
		cells[key] = append(cells[key], task)
	}

	return Grid{Rooms: rooms, Dates: dates, cells: cells}
}

// TasksAt returns the tasks in the (room, date) cell, in store order.
func (g Grid) TasksAt(roomID string, date domain.Date) []domain.Task {
	return g.cells[cellKey{roomID: roomID, date: date.String()}]
}

func clampDays(days int) int {
	if days < MinVisibleDays {
		return MinVisibleDays
	}
	if days > MaxVisibleDays {
		return MaxVisibleDays
	}
	return days
}
