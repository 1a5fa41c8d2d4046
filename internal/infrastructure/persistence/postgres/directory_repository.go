package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/innkeep/backoffice/internal/domain"
)

const roomColumns = `id, number, floor, room_type, status, created_at, updated_at`

const userColumns = `id, name, email, role, created_at, updated_at`

// FindRooms lists all rooms, oldest first.
func (s *Store) FindRooms(ctx context.Context) ([]*domain.Room, error) {
	const query = `SELECT ` + roomColumns + ` FROM rooms ORDER BY created_at, id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*domain.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rooms: %w", err)
	}
	return rooms, nil
}

// CreateRoom inserts a new room.
func (s *Store) CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	const query = `
		INSERT INTO rooms (id, number, floor, room_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + roomColumns

	created, err := scanRoom(s.pool.QueryRow(ctx, query,
		room.ID, room.Number, room.Floor, room.RoomType, room.Status,
		room.CreatedAt, room.UpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return created, nil
}

// UpdateRoom applies a partial room update.
func (s *Store) UpdateRoom(ctx context.Context, params domain.UpdateRoomParams) (*domain.Room, error) {
	assignments := []string{"updated_at = $1"}
	args := []any{time.Now().UTC()}

	set := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Number != nil {
		set("number", *params.Number)
	}
	if params.Floor != nil {
		set("floor", *params.Floor)
	}
	if params.RoomType != nil {
		set("room_type", *params.RoomType)
	}
	if params.Status != nil {
		set("status", *params.Status)
	}

	args = append(args, params.RoomID)
	query := fmt.Sprintf(
		"UPDATE rooms SET %s WHERE id = $%d RETURNING %s",
		strings.Join(assignments, ", "), len(args), roomColumns,
	)

	room, err := scanRoom(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return room, nil
}

// DeleteRoom removes a room. Its tasks are cascade-deleted by the schema.
func (s *Store) DeleteRoom(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRoomNotFound
	}
	return nil
}

// FindUsers lists all staff accounts, oldest first.
func (s *Store) FindUsers(ctx context.Context) ([]*domain.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// CreateUser inserts a new staff account.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	const query = `
		INSERT INTO users (id, name, email, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	created, err := scanUser(s.pool.QueryRow(ctx, query,
		user.ID, user.Name, user.Email, user.Role,
		user.CreatedAt, user.UpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// UpdateUser applies a partial user update.
func (s *Store) UpdateUser(ctx context.Context, params domain.UpdateUserParams) (*domain.User, error) {
	assignments := []string{"updated_at = $1"}
	args := []any{time.Now().UTC()}

	set := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Name != nil {
		set("name", *params.Name)
	}
	if params.Email != nil {
		set("email", *params.Email)
	}
	if params.Role != nil {
		set("role", *params.Role)
	}

	args = append(args, params.UserID)
	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(assignments, ", "), len(args), userColumns,
	)

	user, err := scanUser(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a staff account. The FK RESTRICT on tasks surfaces as
// ErrAssigneeInUse while the user still has tasks assigned.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			pgErr.Code == pgForeignKeyViolation &&
			pgErr.ConstraintName == constraintTaskAssignee {
			return domain.ErrAssigneeInUse
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanRoom(row pgx.Row) (*domain.Room, error) {
	var room domain.Room
	err := row.Scan(
		&room.ID,
		&room.Number,
		&room.Floor,
		&room.RoomType,
		&room.Status,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
