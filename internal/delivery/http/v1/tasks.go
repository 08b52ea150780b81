package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-tasks/internal/services"
)

const (
	taskAddedMessage   = "You have successfully added a new Task"
	taskEditedMessage  = "Change Effected"
	taskDeletedMessage = "Task Successfully Deleted"
)

type taskRequest struct {
	Task      string `form:"task" binding:"required,max=250"`
	StartTime string `form:"start_time" binding:"omitempty,datetime=2006-01-02T15:04"`
	EndTime   string `form:"end_time" binding:"omitempty,datetime=2006-01-02T15:04"`
	Details   string `form:"details"`
	Everyday  bool   `form:"everyday"`
	AllDay    bool   `form:"all_day"`
}

func (h *handlerImpl) HandleProfile(c *gin.Context) {
	principal, _ := getPrincipal(c)

	tasks, err := h.tasks.GetTasksByUserID(c, principal.User.ID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to get tasks")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	render(c, http.StatusOK, "profile.html", gin.H{
		"Tasks":    tasks,
		"NumTasks": len(tasks),
	})
}

func (h *handlerImpl) HandleAddTask(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		h.HandleProfile(c)
		return
	}
	principal, _ := getPrincipal(c)

	var req taskRequest
	err := c.ShouldBind(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind task form")
		redirect(c, "/profile", describeBindError(err))
		return
	}

	_, err = h.tasks.CreateTask(c, principal.User.ID, services.CreateTaskParams{
		Text:     req.Task,
		Start:    req.StartTime,
		End:      req.EndTime,
		Details:  req.Details,
		Everyday: req.Everyday,
		AllDay:   req.AllDay,
	})
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	redirect(c, "/profile", taskAddedMessage)
}

func (h *handlerImpl) HandleToggleTask(c *gin.Context) {
	principal, _ := getPrincipal(c)

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	_, err := h.tasks.ToggleTask(c, principal.User.ID, taskID)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	redirect(c, "/profile")
}

// HandleEditTask persists changes only for POST requests;
// any other method just returns to the profile.
func (h *handlerImpl) HandleEditTask(c *gin.Context) {
	principal, _ := getPrincipal(c)

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	if c.Request.Method != http.MethodPost {
		redirect(c, "/profile")
		return
	}

	var req taskRequest
	err := c.ShouldBind(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind task form")
		redirect(c, "/profile", describeBindError(err))
		return
	}

	_, err = h.tasks.EditTask(c, principal.User.ID, taskID, services.EditTaskParams{
		Text:     req.Task,
		Start:    req.StartTime,
		End:      req.EndTime,
		Details:  req.Details,
		Everyday: req.Everyday,
		AllDay:   req.AllDay,
	})
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	redirect(c, "/profile", taskEditedMessage)
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	principal, _ := getPrincipal(c)

	taskID, ok := parseTaskID(c)
	if !ok {
		return
	}

	err := h.tasks.DeleteTask(c, principal.User.ID, taskID)
	if err != nil {
		h.handleTaskError(c, err)
		return
	}

	redirect(c, "/profile", taskDeletedMessage)
}

func (h *handlerImpl) handleTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		abort(c, newNotFoundError(errTaskNotFound.Error()))
	case errors.Is(err, services.ErrTaskForbidden):
		abort(c, newForbiddenError(errTaskNotAllowed.Error()))
	case errors.Is(err, services.ErrInvalidTimestamp),
		errors.Is(err, services.ErrIncompleteTimeRange),
		errors.Is(err, services.ErrEmptyTaskText):
		redirect(c, "/profile", capitalize(err.Error()))
	default:
		h.logger.Error().
			Err(err).
			Msg("failed to process task request")
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}

func parseTaskID(c *gin.Context) (int64, bool) {
	taskID, err := strconv.ParseInt(c.Param("task_id"), 10, 64)
	if err != nil || taskID <= 0 {
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return 0, false
	}
	return taskID, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
