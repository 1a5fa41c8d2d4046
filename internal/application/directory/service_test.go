package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innkeep/backoffice/internal/domain"
)

type mockRepo struct {
	createdRoom *domain.Room
	createdUser *domain.User
}

func (m *mockRepo) FindRooms(ctx context.Context) ([]*domain.Room, error) { return nil, nil }

func (m *mockRepo) CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	m.createdRoom = room
	return room, nil
}

func (m *mockRepo) UpdateRoom(ctx context.Context, params domain.UpdateRoomParams) (*domain.Room, error) {
	return &domain.Room{}, nil
}

func (m *mockRepo) DeleteRoom(ctx context.Context, id string) error { return nil }

func (m *mockRepo) FindUsers(ctx context.Context) ([]*domain.User, error) { return nil, nil }

func (m *mockRepo) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	m.createdUser = user
	return user, nil
}

func (m *mockRepo) UpdateUser(ctx context.Context, params domain.UpdateUserParams) (*domain.User, error) {
	return &domain.User{}, nil
}

func (m *mockRepo) DeleteUser(ctx context.Context, id string) error { return nil }

func TestCreateRoom_RequiresNumber(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	_, err := svc.CreateRoom(context.Background(), &domain.Room{Number: "   "})
	require.ErrorIs(t, err, domain.ErrRoomNumberRequired)
	assert.Nil(t, repo.createdRoom)
}

func TestCreateRoom_AssignsIDAndTimestamps(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	room, err := svc.CreateRoom(context.Background(), &domain.Room{Number: "101", Floor: 1})
	require.NoError(t, err)

	assert.NotEmpty(t, room.ID)
	assert.False(t, room.CreatedAt.IsZero())
}

func TestCreateUser_Validation(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	_, err := svc.CreateUser(context.Background(), &domain.User{Email: "d@example.com"})
	require.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = svc.CreateUser(context.Background(), &domain.User{Name: "Dana"})
	require.ErrorIs(t, err, domain.ErrEmailRequired)

	user, err := svc.CreateUser(context.Background(), &domain.User{Name: " Dana ", Email: " d@example.com "})
	require.NoError(t, err)
	assert.Equal(t, "Dana", user.Name)
	assert.Equal(t, "d@example.com", user.Email)
	assert.NotEmpty(t, user.ID)
}

func TestUpdateUser_RejectsBlankPatches(t *testing.T) {
	svc := NewService(&mockRepo{})

	blank := "  "
	_, err := svc.UpdateUser(context.Background(), domain.UpdateUserParams{UserID: "u1", Name: &blank})
	require.ErrorIs(t, err, domain.ErrNameRequired)

	_, err = svc.UpdateUser(context.Background(), domain.UpdateUserParams{UserID: "u1", Email: &blank})
	require.ErrorIs(t, err, domain.ErrEmailRequired)
}

func TestDeleteUser_RequiresID(t *testing.T) {
	svc := NewService(&mockRepo{})
	require.ErrorIs(t, svc.DeleteUser(context.Background(), ""), domain.ErrUserNotFound)
}
