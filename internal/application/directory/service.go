// Package directory provides business logic for the room and staff
// directories, the read-mostly reference data the scheduling board joins
// tasks against.
package directory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/innkeep/backoffice/internal/domain"
)

// Service orchestrates directory operations through the Repository interface.
type Service struct {
	repo Repository
}

// NewService creates a directory service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// FindRooms lists the room directory.
func (s *Service) FindRooms(ctx context.Context) ([]*domain.Room, error) {
	rooms, err := s.repo.FindRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// CreateRoom validates and persists a new room.
func (s *Service) CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	room.Number = strings.TrimSpace(room.Number)
	if room.Number == "" {
		return nil, domain.ErrRoomNumberRequired
	}

	idObj, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate id: %w", err)
	}

	now := time.Now().UTC()
	room.ID = idObj.String()
	room.CreatedAt = now
	room.UpdatedAt = now

	return s.repo.CreateRoom(ctx, room)
}

// UpdateRoom applies a partial room update.
func (s *Service) UpdateRoom(ctx context.Context, params domain.UpdateRoomParams) (*domain.Room, error) {
	if params.RoomID == "" {
		return nil, domain.ErrRoomNotFound
	}
	if params.Number != nil && strings.TrimSpace(*params.Number) == "" {
		return nil, domain.ErrRoomNumberRequired
	}
	return s.repo.UpdateRoom(ctx, params)
}

// DeleteRoom removes a room. The room's tasks are cascade-deleted by the
// database.
func (s *Service) DeleteRoom(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrRoomNotFound
	}
	return s.repo.DeleteRoom(ctx, id)
}

// FindUsers lists the staff directory.
func (s *Service) FindUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateUser validates and persists a new staff account.
func (s *Service) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)
	if user.Name == "" {
		return nil, domain.ErrNameRequired
	}
	if user.Email == "" {
		return nil, domain.ErrEmailRequired
	}

	idObj, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate id: %w", err)
	}

	now := time.Now().UTC()
	user.ID = idObj.String()
	user.CreatedAt = now
	user.UpdatedAt = now

	return s.repo.CreateUser(ctx, user)
}

// UpdateUser applies a partial user update.
func (s *Service) UpdateUser(ctx context.Context, params domain.UpdateUserParams) (*domain.User, error) {
	if params.UserID == "" {
		return nil, domain.ErrUserNotFound
	}
	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return nil, domain.ErrNameRequired
	}
	if params.Email != nil && strings.TrimSpace(*params.Email) == "" {
		return nil, domain.ErrEmailRequired
	}
	return s.repo.UpdateUser(ctx, params)
}

// DeleteUser removes a staff account. Fails with ErrAssigneeInUse while tasks
// still reference the user.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrUserNotFound
	}
	return s.repo.DeleteUser(ctx, id)
}
