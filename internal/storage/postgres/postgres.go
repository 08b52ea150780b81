package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adanyl0v/go-tasks/internal/storage"
)

// querier is implemented by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Storage struct {
	pool *pgxpool.Pool
	q    querier
	inTx bool
}

var _ storage.Storage = (*Storage)(nil)

// New wraps an already connected pool. The caller owns the pool
// unless it calls Close on the returned Storage.
func New(pool *pgxpool.Pool) *Storage {
	return &Storage{
		pool: pool,
		q:    pool,
	}
}

// Migrate creates the tables if they do not exist yet.
func (s *Storage) Migrate(ctx context.Context) error {
	for i, stmt := range schema {
		_, err := s.q.Exec(ctx, stmt)
		if err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i, err)
		}
	}
	return nil
}

func (s *Storage) Users() storage.UserStore {
	return &userStore{q: s.q}
}

func (s *Storage) Tasks() storage.TaskStore {
	return &taskStore{q: s.q}
}

func (s *Storage) Sessions() storage.SessionStore {
	return &sessionStore{q: s.q}
}

func (s *Storage) InTx(ctx context.Context, fn func(s storage.Storage) error) error {
	if s.inTx {
		return fn(s)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(&Storage{
		pool: s.pool,
		q:    tx,
		inTx: true,
	})
	if err != nil {
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}
