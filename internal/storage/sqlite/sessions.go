package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adanyl0v/go-tasks/internal/models"
	"github.com/adanyl0v/go-tasks/internal/storage"
)

type sessionStore struct {
	q querier
}

// sessionRow keeps timestamps as unix nanoseconds.
type sessionRow struct {
	ID        string `db:"id"`
	UserID    int64  `db:"user_id"`
	Remember  bool   `db:"remember"`
	ExpiresAt int64  `db:"expires_at"`
	CreatedAt int64  `db:"created_at"`
}

func (s *sessionStore) CreateSession(ctx context.Context, session *models.Session) error {
	const insertSessionQuery = `
INSERT INTO sessions (id, user_id, remember, expires_at, created_at)
VALUES (?, ?, ?, ?, ?)
`
	_, err := s.q.ExecContext(
		ctx,
		insertSessionQuery,
		session.ID,
		session.UserID,
		session.Remember,
		session.ExpiresAt.UnixNano(),
		session.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (s *sessionStore) GetSessionByID(ctx context.Context, id string) (*models.Session, error) {
	var row sessionRow
	err := s.q.GetContext(ctx, &row, "SELECT id, user_id, remember, expires_at, created_at FROM sessions WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select session: %w", err)
	}
	return &models.Session{
		ID:        row.ID,
		UserID:    row.UserID,
		Remember:  row.Remember,
		ExpiresAt: time.Unix(0, row.ExpiresAt),
		CreatedAt: time.Unix(0, row.CreatedAt),
	}, nil
}

func (s *sessionStore) DeleteSession(ctx context.Context, id string) error {
	result, err := s.q.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return requireAffected(result)
}
