package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-tasks/internal/services"
)

type Handler interface {
	HandleHome(c *gin.Context)
	HandleRegister(c *gin.Context)
	HandleSignIn(c *gin.Context)
	HandleLogout(c *gin.Context)
	HandleAuthMiddleware(c *gin.Context)
	HandleMetricsMiddleware(c *gin.Context)
	HandleLoggingMiddleware(c *gin.Context)

	HandleProfile(c *gin.Context)
	HandleAddTask(c *gin.Context)
	HandleToggleTask(c *gin.Context)
	HandleEditTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	auth   services.AuthService
	tasks  services.TaskService
}

func New(
	logger zerolog.Logger,
	authService services.AuthService,
	taskService services.TaskService,
) Handler {
	return &handlerImpl{
		logger: logger,
		auth:   authService,
		tasks:  taskService,
	}
}
