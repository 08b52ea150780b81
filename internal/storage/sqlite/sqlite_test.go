package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-tasks/internal/models"
	"github.com/adanyl0v/go-tasks/internal/storage"
	"github.com/adanyl0v/go-tasks/internal/testutil"
)

func strPtr(s string) *string { return &s }

func createUser(t *testing.T, st storage.Storage, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Password: "hash"}
	require.NoError(t, st.Users().CreateUser(context.Background(), user))
	require.NotZero(t, user.ID)
	return user
}

func TestUserStore_CreateAndGet(t *testing.T) {
	st := testutil.NewTestStorage(t)
	ctx := context.Background()

	user := createUser(t, st, "alice", "alice@example.com")

	byID, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, byID)

	byEmail, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byName, err := st.Users().GetUserByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)

	_, err = st.Users().GetUserByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUserStore_UniqueConstraints(t *testing.T) {
	st := testutil.NewTestStorage(t)
	ctx := context.Background()

	original := createUser(t, st, "alice", "alice@example.com")

	err := st.Users().CreateUser(ctx, &models.User{Name: "alice", Email: "other@example.com", Password: "x"})
	assert.ErrorIs(t, err, storage.ErrUserNameTaken)

	err = st.Users().CreateUser(ctx, &models.User{Name: "other", Email: "alice@example.com", Password: "x"})
	assert.ErrorIs(t, err, storage.ErrUserEmailTaken)

	stored, err := st.Users().GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, original, stored, "duplicate inserts must not overwrite")

	_, err = st.Users().GetUserByName(ctx, "other")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestTaskStore_CRUD(t *testing.T) {
	st := testutil.NewTestStorage(t)
	ctx := context.Background()
	user := createUser(t, st, "alice", "alice@example.com")

	task := &models.Task{
		UserID: user.ID,
		Text:   "write report",
		Date:   "May 01, 2024",
		Start:  strPtr("May 01, 2024 | 09:00"),
		End:    strPtr("May 01, 2024 | 10:00"),
		AllDay: true,
	}
	require.NoError(t, st.Tasks().CreateTask(ctx, task))
	require.NotZero(t, task.ID)

	stored, err := st.Tasks().GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, stored)
	assert.False(t, stored.Completed)
	assert.Nil(t, stored.Details)

	stored.Completed = true
	stored.Details = strPtr("quarterly numbers")
	stored.Start, stored.End = nil, nil
	require.NoError(t, st.Tasks().UpdateTask(ctx, stored))

	updated, err := st.Tasks().GetTaskByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "quarterly numbers", *updated.Details)
	assert.False(t, updated.HasTimeRange())

	require.NoError(t, st.Tasks().DeleteTask(ctx, task.ID))
	_, err = st.Tasks().GetTaskByID(ctx, task.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, st.Tasks().DeleteTask(ctx, task.ID), storage.ErrNotFound)
	assert.ErrorIs(t, st.Tasks().UpdateTask(ctx, stored), storage.ErrNotFound)
}

func TestTaskStore_GetTasksByUserID(t *testing.T) {
	st := testutil.NewTestStorage(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice", "alice@example.com")
	bob := createUser(t, st, "bob", "bob@example.com")

	for _, text := range []string{"first", "second"} {
		require.NoError(t, st.Tasks().CreateTask(ctx, &models.Task{UserID: alice.ID, Text: text, Date: "today"}))
	}
	require.NoError(t, st.Tasks().CreateTask(ctx, &models.Task{UserID: bob.ID, Text: "bob's", Date: "today"}))

	tasks, err := st.Tasks().GetTasksByUserID(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "first", tasks[0].Text)
	assert.Equal(t, "second", tasks[1].Text)

	tasks, err = st.Tasks().GetTasksByUserID(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSessionStore_RoundTrip(t *testing.T) {
	st := testutil.NewTestStorage(t)
	ctx := context.Background()
	user := createUser(t, st, "alice", "alice@example.com")

	now := time.Now()
	session := &models.Session{
		ID:        "0190b6c4-3d6e-7b1a-9c1d-2f3e4a5b6c7d",
		UserID:    user.ID,
		Remember:  true,
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}
	require.NoError(t, st.Sessions().CreateSession(ctx, session))

	stored, err := st.Sessions().GetSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.UserID)
	assert.True(t, stored.Remember)
	assert.True(t, stored.ExpiresAt.Equal(session.ExpiresAt))

	require.NoError(t, st.Sessions().DeleteSession(ctx, session.ID))
	_, err = st.Sessions().GetSessionByID(ctx, session.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, st.Sessions().DeleteSession(ctx, session.ID), storage.ErrNotFound)
}

func TestStorage_InTxRollsBack(t *testing.T) {
	st := testutil.NewTestStorage(t)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := st.InTx(ctx, func(tx storage.Storage) error {
		createUser(t, tx, "alice", "alice@example.com")
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	_, err = st.Users().GetUserByName(ctx, "alice")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = st.InTx(ctx, func(tx storage.Storage) error {
		createUser(t, tx, "alice", "alice@example.com")
		return nil
	})
	require.NoError(t, err)

	_, err = st.Users().GetUserByName(ctx, "alice")
	assert.NoError(t, err)
}
