package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/adanyl0v/go-tasks/internal/models"
	"github.com/adanyl0v/go-tasks/internal/storage"
)

type userStore struct {
	q querier
}

func (s *userStore) CreateUser(ctx context.Context, user *models.User) error {
	const insertUserQuery = `
INSERT INTO users (email, password, name)
VALUES (?, ?, ?)
RETURNING id
`
	err := s.q.QueryRowxContext(
		ctx,
		insertUserQuery,
		user.Email,
		user.Password,
		user.Name,
	).Scan(&user.ID)
	if err != nil {
		switch uniqueViolationColumn(err) {
		case "users.name":
			return storage.ErrUserNameTaken
		case "users.email":
			return storage.ErrUserEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *userStore) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.getUser(ctx, "SELECT id, email, password, name FROM users WHERE id = ?", id)
}

func (s *userStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "SELECT id, email, password, name FROM users WHERE email = ?", email)
}

func (s *userStore) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	return s.getUser(ctx, "SELECT id, email, password, name FROM users WHERE name = ?", name)
}

func (s *userStore) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	user := new(models.User)
	err := s.q.GetContext(ctx, user, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return user, nil
}
