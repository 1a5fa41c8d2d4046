package domain

import (
	"strconv"
	"time"
)

// Room is a catalog entry in the room directory. Read-mostly reference data
// joined into task display.
type Room struct {
	ID string

	// Number is the room's display label ("101", "2", "9A"). Sorting treats
	// it numerically, see SortValue.
	Number string

	Floor    int
	RoomType string
	Status   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SortValue returns the numeric value of the room-number label for ordering.
// Labels that do not parse as an integer sort as zero. That puts "9A" before
// "2" — a documented quirk of the room directory, kept as-is.
func (r Room) SortValue() int {
	n, err := strconv.Atoi(r.Number)
	if err != nil {
		return 0
	}
	return n
}

// User is a staff member in the user directory.
type User struct {
	ID    string
	Name  string
	Email string
	Role  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateRoomParams contains a partial room update. Nil fields are left untouched.
type UpdateRoomParams struct {
	RoomID string

	Number   *string
	Floor    *int
	RoomType *string
	Status   *string
}

// UpdateUserParams contains a partial user update. Nil fields are left untouched.
type UpdateUserParams struct {
	UserID string

	Name  *string
	Email *string
	Role  *string
}
