package storage

import (
	"context"
	"errors"

	"github.com/adanyl0v/go-tasks/internal/models"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrUserNameTaken  = errors.New("user name already taken")
	ErrUserEmailTaken = errors.New("user email already taken")
)

// Storage groups the stores backed by one database.
type Storage interface {
	Users() UserStore
	Tasks() TaskStore
	Sessions() SessionStore

	// InTx runs fn against a Storage bound to a single transaction.
	// The transaction is committed if fn returns nil and rolled back otherwise.
	InTx(ctx context.Context, fn func(s Storage) error) error

	Close() error
}

type UserStore interface {
	// CreateUser inserts the user and sets its ID.
	//
	// It returns ErrUserNameTaken or ErrUserEmailTaken if
	// the name or the email is already in use.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByName(ctx context.Context, name string) (*models.User, error)
}

type TaskStore interface {
	// CreateTask inserts the task and sets its ID.
	CreateTask(ctx context.Context, task *models.Task) error
	GetTaskByID(ctx context.Context, id int64) (*models.Task, error)
	// UpdateTask overwrites every mutable field of the task with the given ID.
	UpdateTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, id int64) error
	// GetTasksByUserID returns the user's tasks ordered by ID.
	GetTasksByUserID(ctx context.Context, userID int64) ([]*models.Task, error)
}

type SessionStore interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSessionByID(ctx context.Context, id string) (*models.Session, error)
	DeleteSession(ctx context.Context, id string) error
}
