package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/adanyl0v/go-tasks/internal/storage"
)

// querier is implemented by both *sqlx.DB and *sqlx.Tx.
type querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

type Storage struct {
	db *sqlx.DB
	q  querier
}

var _ storage.Storage = (*Storage)(nil)

// Open opens (or creates) the database at path and creates the schema.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*Storage, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// A single connection serializes writers and keeps ":memory:" databases
	// alive for the lifetime of the pool.
	db.SetMaxOpenConns(1)

	_, err = db.ExecContext(ctx, "PRAGMA foreign_keys = ON")
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Storage{db: db, q: db}
	err = s.Migrate(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Migrate creates the tables if they do not exist yet.
func (s *Storage) Migrate(ctx context.Context) error {
	for i, stmt := range schema {
		_, err := s.q.ExecContext(ctx, stmt)
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
	if _, ok := s.q.(*sqlx.Tx); ok {
		return fn(s)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	err = fn(&Storage{db: s.db, q: tx})
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

// uniqueViolationColumn returns the "table.column" named by a UNIQUE
// constraint failure, or "" if err is not one.
func uniqueViolationColumn(err error) string {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return ""
	}
	// The primary result code lives in the low byte of an extended one.
	if sqliteErr.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
		return ""
	}

	const marker = "UNIQUE constraint failed: "
	msg := sqliteErr.Error()
	i := strings.Index(msg, marker)
	if i < 0 {
		return ""
	}
	column := msg[i+len(marker):]
	if j := strings.IndexAny(column, " ,"); j >= 0 {
		column = column[:j]
	}
	return column
}
