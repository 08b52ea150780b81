package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/adanyl0v/go-tasks/internal/models"
	"github.com/adanyl0v/go-tasks/internal/storage"
)

type taskStore struct {
	q querier
}

func (s *taskStore) CreateTask(ctx context.Context, task *models.Task) error {
	const insertTaskQuery = `
INSERT INTO tasks (user_id,
                   task,
                   date,
                   start_time,
                   end_time,
                   completed,
                   details,
                   everyday,
                   all_day)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`
	err := s.q.QueryRow(
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
	const selectTaskByIDQuery = `
SELECT id,
       user_id,
       task,
       date,
       start_time,
       end_time,
       completed,
       details,
       everyday,
       all_day
FROM tasks
WHERE id = $1
`
	task, err := scanTask(s.q.QueryRow(ctx, selectTaskByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select task: %w", err)
	}
	return task, nil
}

func (s *taskStore) UpdateTask(ctx context.Context, task *models.Task) error {
	const updateTaskQuery = `
UPDATE tasks
SET task = $1,
    start_time = $2,
    end_time = $3,
    completed = $4,
    details = $5,
    everyday = $6,
    all_day = $7
WHERE id = $8
`
	tag, err := s.q.Exec(
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
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *taskStore) DeleteTask(ctx context.Context, id int64) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1
`
	tag, err := s.q.Exec(ctx, deleteTaskQuery, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (s *taskStore) GetTasksByUserID(ctx context.Context, userID int64) ([]*models.Task, error) {
	const selectTasksByUserIDQuery = `
SELECT id,
       user_id,
       task,
       date,
       start_time,
       end_time,
       completed,
       details,
       everyday,
       all_day
FROM tasks
WHERE user_id = $1
ORDER BY id
`
	rows, err := s.q.Query(ctx, selectTasksByUserIDQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks by user id: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}
	return tasks, nil
}

func scanTask(row pgx.Row) (*models.Task, error) {
	task := new(models.Task)
	err := row.Scan(
		&task.ID,
		&task.UserID,
		&task.Text,
		&task.Date,
		&task.Start,
		&task.End,
		&task.Completed,
		&task.Details,
		&task.Everyday,
		&task.AllDay,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}
