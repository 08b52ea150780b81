package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasks/internal/models"
	"github.com/adanyl0v/go-tasks/internal/storage"
)

type taskServiceImpl struct {
	logger  zerolog.Logger
	storage storage.Storage
	now     func() time.Time
}

// NewTaskService returns a TaskService that dates new tasks with now,
// or time.Now if now is nil.
func NewTaskService(
	logger zerolog.Logger,
	st storage.Storage,
	now func() time.Time,
) TaskService {
	if now == nil {
		now = time.Now
	}
	return &taskServiceImpl{
		logger:  logger,
		storage: st,
		now:     now,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, userID int64, params CreateTaskParams) (*models.Task, error) {
	task := &models.Task{
		UserID:   userID,
		Text:     strings.TrimSpace(params.Text),
		Date:     s.now().Format(models.DateLayout),
		Details:  optionalString(params.Details),
		Everyday: params.Everyday,
		AllDay:   params.AllDay,
	}
	if task.Text == "" {
		return nil, ErrEmptyTaskText
	}

	var err error
	task.Start, task.End, err = formatTimeRange(params.Start, params.End, false)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Int64("user_id", userID).
			Msg("invalid time range")
		return nil, err
	}

	err = s.storage.Tasks().CreateTask(ctx, task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Msg("failed to insert task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("user_id", userID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) GetTasksByUserID(ctx context.Context, userID int64) ([]*models.Task, error) {
	tasks, err := s.storage.Tasks().GetTasksByUserID(ctx, userID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Msg("failed to select tasks by user id")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Int64("user_id", userID).
		Msg("selected tasks by user id")
	return tasks, nil
}

func (s *taskServiceImpl) ToggleTask(ctx context.Context, userID, taskID int64) (*models.Task, error) {
	var task *models.Task
	err := s.storage.InTx(ctx, func(st storage.Storage) error {
		var err error
		task, err = s.getOwnedTask(ctx, st, userID, taskID)
		if err != nil {
			return err
		}

		task.Completed = !task.Completed
		return st.Tasks().UpdateTask(ctx, task)
	})
	if err != nil {
		s.logTaskError(err, userID, taskID, "failed to toggle task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Bool("completed", task.Completed).
		Msg("toggled task")
	return task, nil
}

func (s *taskServiceImpl) EditTask(ctx context.Context, userID, taskID int64, params EditTaskParams) (*models.Task, error) {
	text := strings.TrimSpace(params.Text)
	if text == "" {
		return nil, ErrEmptyTaskText
	}

	start, end, err := formatTimeRange(params.Start, params.End, true)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Int64("task_id", taskID).
			Msg("invalid time range")
		return nil, err
	}

	var task *models.Task
	err = s.storage.InTx(ctx, func(st storage.Storage) error {
		var err error
		task, err = s.getOwnedTask(ctx, st, userID, taskID)
		if err != nil {
			return err
		}

		task.Text = text
		task.Start = start
		task.End = end
		task.Details = optionalString(params.Details)
		task.Everyday = params.Everyday
		task.AllDay = params.AllDay
		return st.Tasks().UpdateTask(ctx, task)
	})
	if err != nil {
		s.logTaskError(err, userID, taskID, "failed to edit task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("user_id", userID).
		Msg("edited task")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, taskID int64) error {
	err := s.storage.InTx(ctx, func(st storage.Storage) error {
		_, err := s.getOwnedTask(ctx, st, userID, taskID)
		if err != nil {
			return err
		}

		err = st.Tasks().DeleteTask(ctx, taskID)
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	})
	if err != nil {
		s.logTaskError(err, userID, taskID, "failed to delete task")
		return err
	}

	s.logger.Info().
		Int64("task_id", taskID).
		Int64("user_id", userID).
		Msg("deleted task")
	return nil
}

func (s *taskServiceImpl) getOwnedTask(ctx context.Context, st storage.Storage, userID, taskID int64) (*models.Task, error) {
	task, err := st.Tasks().GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	if task.UserID != userID {
		return nil, ErrTaskForbidden
	}
	return task, nil
}

func (s *taskServiceImpl) logTaskError(err error, userID, taskID int64, msg string) {
	event := s.logger.Error()
	if errors.Is(err, ErrTaskNotFound) || errors.Is(err, ErrTaskForbidden) {
		event = s.logger.Warn()
	}
	event.Err(err).
		Int64("task_id", taskID).
		Int64("user_id", userID).
		Msg(msg)
}
