package services

import (
	"context"
	"errors"
	"time"

	"github.com/adanyl0v/go-tasks/internal/models"
)

// RememberSessionTTL is how long a "remember me" session lives.
const RememberSessionTTL = 30 * 24 * time.Hour

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmptyUserName        = errors.New("user name is empty")
	ErrUserNameTaken        = errors.New("user name already taken")
	ErrUserEmailTaken       = errors.New("user email already registered")
	ErrUserPasswordMismatch = errors.New("user password mismatch")
	ErrInvalidToken         = errors.New("invalid session token")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionExpired       = errors.New("session expired")

	ErrTaskNotFound        = errors.New("task not found")
	ErrTaskForbidden       = errors.New("task belongs to another user")
	ErrEmptyTaskText       = errors.New("task text is empty")
	ErrInvalidTimestamp    = errors.New("invalid timestamp")
	ErrIncompleteTimeRange = errors.New("start and end must be set together")
)

type AuthService interface {
	// Register creates a user with the given name, email and password
	// and logs them in within the same transaction.
	//
	// A name that is blank after trimming returns ErrEmptyUserName.
	// The name is checked first: it returns ErrUserNameTaken if the name
	// is in use, then ErrUserEmailTaken if the email is. No user is
	// created in either case.
	Register(ctx context.Context, params RegisterParams) (*LoginResult, error)

	// Login authenticates the user by email and password and
	// creates a new session.
	//
	// It returns ErrUserNotFound if no user has the given email or
	// ErrUserPasswordMismatch if the password doesn't match.
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)

	// Logout deletes the session. Deleting a missing session is not an error.
	Logout(ctx context.Context, sessionID string) error

	// Authenticate resolves a session token to the logged-in user.
	//
	// It returns ErrInvalidToken, ErrSessionNotFound or ErrSessionExpired
	// if the token doesn't identify a live session.
	Authenticate(ctx context.Context, token string) (*Principal, error)
}

type SessionService interface {
	// GetSessionByID returns ErrSessionNotFound or ErrSessionExpired
	// unless the session exists and is still valid.
	GetSessionByID(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type TaskService interface {
	CreateTask(ctx context.Context, userID int64, params CreateTaskParams) (*models.Task, error)

	// GetTasksByUserID returns every task owned by the user, oldest first.
	GetTasksByUserID(ctx context.Context, userID int64) ([]*models.Task, error)

	// ToggleTask flips the completed flag of the user's task.
	ToggleTask(ctx context.Context, userID, taskID int64) (*models.Task, error)

	// EditTask overwrites the user's task with params.
	EditTask(ctx context.Context, userID, taskID int64, params EditTaskParams) (*models.Task, error)

	DeleteTask(ctx context.Context, userID, taskID int64) error
}

type RegisterParams struct {
	Name     string
	Email    string
	Password string
}

type LoginParams struct {
	Email    string
	Password string
	Remember bool
}

type LoginResult struct {
	UserID    int64
	SessionID string
	Token     string
	ExpiresAt time.Time
	Remember  bool
}

// Principal is the user a request is made on behalf of.
type Principal struct {
	User      *models.User
	SessionID string
}

// CreateTaskParams carries raw form values. Start and End use
// models.InputTimeLayout; a task gets a time range only if both are set.
type CreateTaskParams struct {
	Text     string
	Start    string
	End      string
	Details  string
	Everyday bool
	AllDay   bool
}

// EditTaskParams carries raw form values. Start and End must be
// both set or both empty; empty clears the time range.
type EditTaskParams struct {
	Text     string
	Start    string
	End      string
	Details  string
	Everyday bool
	AllDay   bool
}
