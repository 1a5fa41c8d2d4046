// Package postgres implements the application repository interfaces on
// PostgreSQL with hand-written SQL over pgx.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/innkeep/backoffice/internal/application/directory"
	"github.com/innkeep/backoffice/internal/application/housekeeping"
	"github.com/innkeep/backoffice/internal/domain"
)

// PostgreSQL error codes relevant to our constraint mapping.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Constraint names from the schema. The error translation relies on them to
// turn constraint violations into domain errors.
const (
	constraintTaskUnique   = "uq_tasks_room_date_type"
	constraintTaskRoom     = "fk_tasks_room"
	constraintTaskAssignee = "fk_tasks_assignee"
)

// Store implements the housekeeping and directory repository interfaces on a
// pgx connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Compile-time verification that Store implements the repository interfaces.
var (
	_ housekeeping.Repository = (*Store)(nil)
	_ directory.Repository    = (*Store)(nil)
)

// NewStore creates a new PostgreSQL store with the given connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Pool returns the underlying connection pool.
func (s *Store) Pool() *pgxpool.Pool {
	return s.pool
}

// Close closes the database connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// translateConstraintError maps PostgreSQL constraint violations on the tasks
// table to domain errors. Other errors pass through unchanged.
func translateConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		if pgErr.ConstraintName == constraintTaskUnique {
			return domain.ErrDuplicateTask
		}
	case pgForeignKeyViolation:
		switch pgErr.ConstraintName {
		case constraintTaskRoom:
			return domain.ErrRoomNotFound
		case constraintTaskAssignee:
			return domain.ErrUserNotFound
		}
	}
	return err
}
