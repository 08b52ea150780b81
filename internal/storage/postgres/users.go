package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/adanyl0v/go-tasks/internal/models"
	"github.com/adanyl0v/go-tasks/internal/storage"
)

type userStore struct {
	q querier
}

func (s *userStore) CreateUser(ctx context.Context, user *models.User) error {
	const insertUserQuery = `
INSERT INTO users (email,
                   password,
                   name)
VALUES ($1, $2, $3)
RETURNING id
`
	err := s.q.QueryRow(
		ctx,
		insertUserQuery,
		user.Email,
		user.Password,
		user.Name,
	).Scan(&user.ID)
	if err != nil {
		if conflictErr := userConflict(err); conflictErr != nil {
			return conflictErr
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// userConflict maps a unique violation on the users table to
// ErrUserNameTaken or ErrUserEmailTaken. It returns nil for any other error.
func userConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case usersNameConstraint:
		return storage.ErrUserNameTaken
	case usersEmailConstraint:
		return storage.ErrUserEmailTaken
	}
	return nil
}

func (s *userStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const selectUserByIDQuery = `
SELECT id,
       email,
       password,
       name
FROM users
WHERE id = $1
`
	return s.getUser(ctx, selectUserByIDQuery, id)
}

func (s *userStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const selectUserByEmailQuery = `
SELECT id,
       email,
       password,
       name
FROM users
WHERE email = $1
`
	return s.getUser(ctx, selectUserByEmailQuery, email)
}

func (s *userStore) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	const selectUserByNameQuery = `
SELECT id,
       email,
       password,
       name
FROM users
WHERE name = $1
`
	return s.getUser(ctx, selectUserByNameQuery, name)
}

func (s *userStore) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	user := new(models.User)
	err := s.q.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return user, nil
}
