package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/adanyl0v/go-tasks/internal/models"
	"github.com/adanyl0v/go-tasks/internal/storage"
)

type sessionStore struct {
	q querier
}

func (s *sessionStore) CreateSession(ctx context.Context, session *models.Session) error {
	const insertSessionQuery = `
INSERT INTO sessions (id,
                      user_id,
                      remember,
                      expires_at,
                      created_at)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := s.q.Exec(
		ctx,
		insertSessionQuery,
		session.ID,
		session.UserID,
		session.Remember,
		session.ExpiresAt,
		session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (s *sessionStore) GetSessionByID(ctx context.Context, id string) (*models.Session, error) {
	session := &models.Session{ID: id}

	const selectSessionByIDQuery = `
SELECT user_id,
       remember,
       expires_at,
       created_at
FROM sessions
WHERE id = $1
`
	err := s.q.QueryRow(ctx, selectSessionByIDQuery, id).Scan(
		&session.UserID,
		&session.Remember,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select session: %w", err)
	}
	return session, nil
}

func (s *sessionStore) DeleteSession(ctx context.Context, id string) error {
	const deleteSessionQuery = `
DELETE FROM sessions
WHERE id = $1
`
	tag, err := s.q.Exec(ctx, deleteSessionQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
