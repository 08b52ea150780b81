package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/adanyl0v/go-tasks/internal/models"
	"github.com/adanyl0v/go-tasks/internal/storage"
)

const taskColumns = `id, user_id, task, date, start_time, end_time, completed, details, everyday, all_day`

type taskStore struct {
	q querier
}

func (s *taskStore) CreateTask(ctx context.Context, task *models.Task) error {
	const insertTaskQuery = `
INSERT INTO tasks (user_id, task, date, start_time, end_time, completed, details, everyday, all_day)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id
`
	err := s.q.QueryRowxContext(
		ctx,
		insertTaskQuery,
		task.UserID,
		task.Text,
		task.Date,
		task.Start,
		task.End,
		task.Completed,
		task.Details,
		task.Everyday,
		task.AllDay,
	).Scan(&task.ID)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (s *taskStore) GetTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	task := new(models.Task)
	err := s.q.GetContext(ctx, task, "SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select task: %w", err)
	}
	return task, nil
}

func (s *taskStore) UpdateTask(ctx context.Context, task *models.Task) error {
	const updateTaskQuery = `
UPDATE tasks
SET task = ?, start_time = ?, end_time = ?, completed = ?, details = ?, everyday = ?, all_day = ?
WHERE id = ?
`
	result, err := s.q.ExecContext(
		ctx,
		updateTaskQuery,
		task.Text,
		task.Start,
		task.End,
		task.Completed,
		task.Details,
		task.Everyday,
		task.AllDay,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return requireAffected(result)
}

func (s *taskStore) DeleteTask(ctx context.Context, id int64) error {
	result, err := s.q.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return requireAffected(result)
}

func (s *taskStore) GetTasksByUserID(ctx context.Context, userID int64) ([]*models.Task, error) {
	var tasks []*models.Task
	err := s.q.SelectContext(ctx, &tasks, "SELECT "+taskColumns+" FROM tasks WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks by user id: %w", err)
	}
	return tasks, nil
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
