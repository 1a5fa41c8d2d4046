package directory

import (
	"context"

	"github.com/innkeep/backoffice/internal/domain"
)

// Repository is the persistence contract for the room and user directories.
//
// DeleteUser returns ErrAssigneeInUse while housekeeping tasks still
// reference the user (FK RESTRICT). DeleteRoom cascades to the room's tasks.
type Repository interface {
	FindRooms(ctx context.Context) ([]*domain.Room, error)
	CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error)
	UpdateRoom(ctx context.Context, params domain.UpdateRoomParams) (*domain.Room, error)
	DeleteRoom(ctx context.Context, id string) error

	FindUsers(ctx context.Context) ([]*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, params domain.UpdateUserParams) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}
